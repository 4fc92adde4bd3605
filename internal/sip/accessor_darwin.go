//go:build darwin

package sip

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// LibSystemPath is where csr_get_active_config lives on every macOS release.
const LibSystemPath = "/usr/lib/libSystem.dylib"

// LibSystemAccessor resolves csr_get_active_config from libSystem on each call.
type LibSystemAccessor struct {
	path string
}

// NewLibSystemAccessor returns an Accessor backed by the library at path.
// An empty path means LibSystemPath.
func NewLibSystemAccessor(path string) *LibSystemAccessor {
	if path == "" {
		path = LibSystemPath
	}
	return &LibSystemAccessor{path: path}
}

// CSRGetActiveConfig opens the library, calls csr_get_active_config and
// closes the library again. The handle is released on every path.
func (a *LibSystemAccessor) CSRGetActiveConfig() (value uint32, status int32, err error) {
	lib, err := purego.Dlopen(a.path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", a.path, err)
	}
	defer func() {
		if cerr := purego.Dlclose(lib); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", a.path, cerr)
		}
	}()

	sym, err := purego.Dlsym(lib, "csr_get_active_config")
	if err != nil {
		return 0, 0, fmt.Errorf("resolve csr_get_active_config in %s: %w", a.path, err)
	}

	var csrGetActiveConfig func(config *uint32) int32
	purego.RegisterFunc(&csrGetActiveConfig, sym)

	status = csrGetActiveConfig(&value)
	return value, status, nil
}
