package sip

import "github.com/tusharlock10/sipxnu/internal/xnu"

// Status is a snapshot of the active SIP configuration.
type Status struct {
	Value     uint32            `json:"value" yaml:"value" plist:"value"`
	Kernel    xnu.KernelVersion `json:"kernel" yaml:"kernel" plist:"kernel"`
	Breakdown map[string]bool   `json:"breakdown" yaml:"breakdown" plist:"breakdown"`

	CanEditRoot           bool `json:"can_edit_root" yaml:"can_edit_root" plist:"can_edit_root"`
	CanWriteNVRAM         bool `json:"can_write_nvram" yaml:"can_write_nvram" plist:"can_write_nvram"`
	CanLoadArbitraryKexts bool `json:"can_load_arbitrary_kexts" yaml:"can_load_arbitrary_kexts" plist:"can_load_arbitrary_kexts"`
}

// Allows reports whether f is set in the raw value.
func (s Status) Allows(f Flag) bool {
	return s.Value&uint32(f) != 0
}

// Decode builds a Status from a raw CSR value. The kernel version decides
// whether an unrestricted filesystem is enough to edit the root volume.
func Decode(value uint32, kernel xnu.KernelVersion) Status {
	breakdown := make(map[string]bool, len(Flags))
	for _, f := range Flags {
		breakdown[f.String()] = value&uint32(f) != 0
	}

	return Status{
		Value:                 value,
		Kernel:                kernel,
		Breakdown:             breakdown,
		CanEditRoot:           canEditRoot(value, kernel),
		CanWriteNVRAM:         value&uint32(AllowUnrestrictedNVRAM) != 0,
		CanLoadArbitraryKexts: value&uint32(AllowUntrustedKexts) != 0,
	}
}

// Since Big Sur the root volume is sealed, so writing to it also needs
// CSR_ALLOW_UNAUTHENTICATED_ROOT.
func canEditRoot(value uint32, kernel xnu.KernelVersion) bool {
	if value&uint32(AllowUnrestrictedFS) == 0 {
		return false
	}
	if !kernel.AtLeast(xnu.BigSur) {
		return true
	}
	return value&uint32(AllowUnauthenticatedRoot) != 0
}
