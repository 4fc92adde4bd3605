package sip

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tusharlock10/sipxnu/internal/xnu"
)

// LogTag prefixes every debug line written by a Reader.
const LogTag = "[sip_xnu] "

// Host exposes the kernel identity of the machine being queried.
type Host interface {
	// OSType returns the kernel family, "Darwin" on macOS.
	OSType() (string, error)
	// KernelRelease returns the dotted kernel release, e.g. "23.4.0".
	KernelRelease() (string, error)
}

// Accessor calls csr_get_active_config. status is the function's return
// value; err is set only when the function could not be called at all.
type Accessor interface {
	CSRGetActiveConfig() (value uint32, status int32, err error)
}

// Options configures a Reader.
type Options struct {
	Debug     bool
	LogOutput io.Writer // defaults to os.Stderr
}

// Reader queries the SIP status of a host. It keeps no state between queries
// and is safe for concurrent use.
type Reader struct {
	host     Host
	accessor Accessor
	log      *log.Logger
}

// NewReader creates a Reader. Debug lines are discarded unless opts.Debug is set.
func NewReader(host Host, accessor Accessor, opts Options) *Reader {
	out := io.Discard
	if opts.Debug {
		out = opts.LogOutput
		if out == nil {
			out = os.Stderr
		}
	}
	return &Reader{
		host:     host,
		accessor: accessor,
		log:      log.New(out, LogTag, 0),
	}
}

// Query reads the active SIP configuration and decodes it. Every failure is
// returned as is; the caller decides whether to query again.
func (r *Reader) Query() (Status, error) {
	osType, err := r.host.OSType()
	if err != nil {
		return Status{}, fmt.Errorf("read OS type: %w", err)
	}
	r.log.Printf("OS type: %s", osType)
	if osType != "Darwin" {
		return Status{}, fmt.Errorf("%w (running %s)", ErrUnsupportedPlatform, osType)
	}

	release, err := r.host.KernelRelease()
	if err != nil {
		return Status{}, fmt.Errorf("read kernel release: %w", err)
	}
	kernel, err := xnu.ParseKernelVersion(release)
	if err != nil {
		return Status{}, err
	}
	r.log.Printf("XNU version: %s", kernel)

	value, err := r.activeConfig(kernel)
	if err != nil {
		return Status{}, err
	}

	st := Decode(value, kernel)
	r.logStatus(st)
	return st, nil
}

func (r *Reader) activeConfig(kernel xnu.KernelVersion) (uint32, error) {
	if !kernel.AtLeast(xnu.ElCapitan) {
		r.log.Printf("kernel predates SIP, assuming unrestricted (%d)", Unrestricted)
		return Unrestricted, nil
	}

	value, status, err := r.accessor.CSRGetActiveConfig()
	if err != nil {
		return 0, fmt.Errorf("call csr_get_active_config: %w", err)
	}
	if status != 0 {
		r.log.Printf("csr_get_active_config returned %d", status)
		return 0, &NativeCallError{Code: status}
	}
	r.log.Printf("csr_active_config: %d", value)
	return value, nil
}

func (r *Reader) logStatus(st Status) {
	r.log.Printf("Returning SIP status:")
	r.log.Printf("   Value: %d (%#x)", st.Value, st.Value)
	r.log.Printf("   Breakdown:")
	for _, f := range Flags {
		r.log.Printf("      %s: %t", f, st.Breakdown[f.String()])
	}
	r.log.Printf("   Can edit root: %t", st.CanEditRoot)
	r.log.Printf("   Can write NVRAM: %t", st.CanWriteNVRAM)
	r.log.Printf("   Can load arbitrary kexts: %t", st.CanLoadArbitraryKexts)
}
