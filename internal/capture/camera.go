package capture

import (
	"context"
	"errors"
	"fmt"
)

// FailureKind classifies why a capture flow could not produce a photo.
type FailureKind string

const (
	FailurePermission   FailureKind = "permission"
	FailureNotFound     FailureKind = "not-found"
	FailureNotSupported FailureKind = "not-supported"
	FailureTimeout      FailureKind = "timeout"
	FailureCapture      FailureKind = "capture-failed"
	FailureUnknown      FailureKind = "unknown"
)

// ParseFailureKind maps a client-reported kind string onto the taxonomy,
// defaulting to unknown.
func ParseFailureKind(s string) FailureKind {
	switch FailureKind(s) {
	case FailurePermission, FailureNotFound, FailureNotSupported,
		FailureTimeout, FailureCapture:
		return FailureKind(s)
	}
	return FailureUnknown
}

// StartError reports why camera acquisition failed.
type StartError struct {
	Kind   FailureKind
	Reason string
}

func (e *StartError) Error() string {
	return fmt.Sprintf("camera start failed (%s): %s", e.Kind, e.Reason)
}

// ErrNotReady signals a transient grab failure: the device is running but
// not delivering frames yet. The flow retries these until its timeout; any
// other Capture error aborts the flow.
var ErrNotReady = errors.New("capture: frame not ready")

// Camera is the capability boundary to the device-media subsystem.
type Camera interface {
	// Start acquires the device. It blocks until the camera is delivering,
	// a failure is known, or ctx expires.
	Start(ctx context.Context, facing string) error
	// Capture grabs one frame. ErrNotReady is transient; other errors are
	// fatal for the current flow.
	Capture() ([]byte, error)
	// Stop releases the device. Safe to call in any state.
	Stop()
	// SwitchFacing flips between the user and environment cameras.
	SwitchFacing() error
}
