package sip

import (
	"fmt"
	"strings"
)

// Flag is one bit of the CSR active configuration. A set bit relaxes the
// corresponding restriction.
type Flag uint32

const (
	AllowUntrustedKexts           Flag = 0x1
	AllowUnrestrictedFS           Flag = 0x2
	AllowTaskForPID               Flag = 0x4
	AllowKernelDebugger           Flag = 0x8
	AllowAppleInternal            Flag = 0x10
	AllowUnrestrictedDTrace       Flag = 0x20
	AllowUnrestrictedNVRAM        Flag = 0x40
	AllowDeviceConfiguration      Flag = 0x80
	AllowAnyRecoveryOS            Flag = 0x100
	AllowUnapprovedKexts          Flag = 0x200
	AllowExecutablePolicyOverride Flag = 0x400
	AllowUnauthenticatedRoot      Flag = 0x800
)

// Unrestricted is reported for kernels that predate SIP.
const Unrestricted uint32 = 65535

const flagPrefix = "CSR_ALLOW_"

// Flags lists every known flag in bit order.
var Flags = []Flag{
	AllowUntrustedKexts,
	AllowUnrestrictedFS,
	AllowTaskForPID,
	AllowKernelDebugger,
	AllowAppleInternal,
	AllowUnrestrictedDTrace,
	AllowUnrestrictedNVRAM,
	AllowDeviceConfiguration,
	AllowAnyRecoveryOS,
	AllowUnapprovedKexts,
	AllowExecutablePolicyOverride,
	AllowUnauthenticatedRoot,
}

var flagNames = map[Flag]string{
	AllowUntrustedKexts:           "CSR_ALLOW_UNTRUSTED_KEXTS",
	AllowUnrestrictedFS:           "CSR_ALLOW_UNRESTRICTED_FS",
	AllowTaskForPID:               "CSR_ALLOW_TASK_FOR_PID",
	AllowKernelDebugger:           "CSR_ALLOW_KERNEL_DEBUGGER",
	AllowAppleInternal:            "CSR_ALLOW_APPLE_INTERNAL",
	AllowUnrestrictedDTrace:       "CSR_ALLOW_UNRESTRICTED_DTRACE",
	AllowUnrestrictedNVRAM:        "CSR_ALLOW_UNRESTRICTED_NVRAM",
	AllowDeviceConfiguration:      "CSR_ALLOW_DEVICE_CONFIGURATION",
	AllowAnyRecoveryOS:            "CSR_ALLOW_ANY_RECOVERY_OS",
	AllowUnapprovedKexts:          "CSR_ALLOW_UNAPPROVED_KEXTS",
	AllowExecutablePolicyOverride: "CSR_ALLOW_EXECUTABLE_POLICY_OVERRIDE",
	AllowUnauthenticatedRoot:      "CSR_ALLOW_UNAUTHENTICATED_ROOT",
}

// String returns the kernel header name of the flag, e.g. CSR_ALLOW_TASK_FOR_PID.
func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Flag(%#x)", uint32(f))
}

// ParseFlag looks a flag up by name. The CSR_ALLOW_ prefix is optional and
// case is ignored, so "task_for_pid" resolves to AllowTaskForPID.
func ParseFlag(name string) (Flag, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(want, flagPrefix) {
		want = flagPrefix + want
	}
	for _, f := range Flags {
		if flagNames[f] == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown SIP flag %q", name)
}
