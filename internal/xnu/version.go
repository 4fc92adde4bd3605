package xnu

import (
	"fmt"
	"strconv"
	"strings"
)

// KernelVersion is the major.minor.patch triple of a Darwin kernel release,
// e.g. 20.6.0 for macOS 11.5.
type KernelVersion struct {
	Major uint64 `json:"major" yaml:"major" plist:"major"`
	Minor uint64 `json:"minor" yaml:"minor" plist:"minor"`
	Patch uint64 `json:"patch" yaml:"patch" plist:"patch"`
}

func (v KernelVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether the kernel is release r or newer.
func (v KernelVersion) AtLeast(r Release) bool {
	return v.Major >= uint64(r)
}

// VersionParseError is returned when a kernel release string does not hold
// three numeric dot-separated components.
type VersionParseError struct {
	Release string
	Reason  string
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("parse kernel release %q: %s", e.Release, e.Reason)
}

// ParseKernelVersion parses the first three components of a release string
// such as "23.4.0". Anything after the third component is ignored.
func ParseKernelVersion(release string) (KernelVersion, error) {
	parts := strings.Split(strings.TrimSpace(release), ".")
	if len(parts) < 3 {
		return KernelVersion{}, &VersionParseError{
			Release: release,
			Reason:  fmt.Sprintf("expected 3 components, got %d", len(parts)),
		}
	}

	var nums [3]uint64
	for i := range nums {
		n, err := strconv.ParseUint(parts[i], 10, 64)
		if err != nil {
			return KernelVersion{}, &VersionParseError{
				Release: release,
				Reason:  fmt.Sprintf("component %d (%q) is not a number", i+1, parts[i]),
			}
		}
		nums[i] = n
	}

	return KernelVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
