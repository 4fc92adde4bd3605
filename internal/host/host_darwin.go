//go:build darwin

package host

import (
	"strings"

	"golang.org/x/sys/unix"
)

func getOSType() (string, error) {
	t, err := unix.Sysctl("kern.ostype")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(t), nil
}

func getKernelRelease() (string, error) {
	r, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(r), nil
}
