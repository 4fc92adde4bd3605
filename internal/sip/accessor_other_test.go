//go:build !darwin

package sip

import (
	"errors"
	"testing"
)

func TestLibSystemAccessorUnsupported(t *testing.T) {
	_, _, err := NewLibSystemAccessor("").CSRGetActiveConfig()
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
}
