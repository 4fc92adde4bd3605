//go:build darwin

package host

import (
	"testing"

	"github.com/tusharlock10/sipxnu/internal/xnu"
)

func TestDarwinKernelReleaseParses(t *testing.T) {
	release, err := System{}.KernelRelease()
	if err != nil {
		t.Fatalf("KernelRelease: %v", err)
	}
	v, err := xnu.ParseKernelVersion(release)
	if err != nil {
		t.Fatalf("ParseKernelVersion(%q): %v", release, err)
	}
	t.Logf("kernel %s (%s)", v, xnu.ReleaseName(v.Major))
}
