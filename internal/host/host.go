package host

import (
	"fmt"

	psutil "github.com/shirou/gopsutil/v4/host"
)

// System reads kernel facts from the machine the process runs on. It
// satisfies sip.Host.
type System struct{}

// OSType returns the kernel family as uname -s reports it, e.g. "Darwin".
func (System) OSType() (string, error) {
	t, err := getOSType()
	if err != nil {
		return "", fmt.Errorf("collect OS type: %w", err)
	}
	return t, nil
}

// KernelRelease returns the kernel release as uname -r reports it, e.g. "23.4.0".
func (System) KernelRelease() (string, error) {
	r, err := getKernelRelease()
	if err != nil {
		return "", fmt.Errorf("collect kernel release: %w", err)
	}
	return r, nil
}

// Product describes the installed operating system.
type Product struct {
	Platform string // "darwin"
	Family   string // "Standalone Workstation"
	Version  string // "14.4.1"
}

// GetProduct reports the operating system product version.
func GetProduct() (Product, error) {
	platform, family, version, err := psutil.PlatformInformation()
	if err != nil {
		return Product{}, fmt.Errorf("collect platform information: %w", err)
	}
	return Product{Platform: platform, Family: family, Version: version}, nil
}
