package sip

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned when the host is not running a Darwin kernel.
var ErrUnsupportedPlatform = errors.New("unsupported platform: SIP status is only available on Darwin")

// NativeCallError carries the nonzero status returned by csr_get_active_config.
type NativeCallError struct {
	Code int32
}

func (e *NativeCallError) Error() string {
	return fmt.Sprintf("csr_get_active_config failed with status %d", e.Code)
}
