//go:build !darwin

package sip

// LibSystemPath is where csr_get_active_config lives on macOS.
const LibSystemPath = "/usr/lib/libSystem.dylib"

// LibSystemAccessor is a placeholder on platforms without libSystem.
type LibSystemAccessor struct {
	path string
}

func NewLibSystemAccessor(path string) *LibSystemAccessor {
	if path == "" {
		path = LibSystemPath
	}
	return &LibSystemAccessor{path: path}
}

// CSRGetActiveConfig always fails with ErrUnsupportedPlatform.
func (a *LibSystemAccessor) CSRGetActiveConfig() (uint32, int32, error) {
	return 0, 0, ErrUnsupportedPlatform
}
