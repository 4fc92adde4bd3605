//go:build !darwin && !linux && !freebsd && !netbsd && !openbsd && !windows

package host

import (
	"fmt"
	"runtime"
)

func getOSType() (string, error) {
	return "", fmt.Errorf("no kernel identity source on %s", runtime.GOOS)
}

func getKernelRelease() (string, error) {
	return "", fmt.Errorf("no kernel identity source on %s", runtime.GOOS)
}
