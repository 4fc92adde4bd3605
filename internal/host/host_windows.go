//go:build windows

package host

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func getOSType() (string, error) {
	return "Windows_NT", nil
}

// RtlGetVersion is not subject to the manifest-based version lie of GetVersionEx.
func getKernelRelease() (string, error) {
	v := windows.RtlGetVersion()
	return fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber), nil
}
