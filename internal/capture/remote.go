package capture

import (
	"context"
	"errors"
	"sync"
)

// RemoteCamera is the production Camera: the browser page owns the physical
// device and feeds this process over the API. Attach marks the device live,
// PushFrame delivers frames, Fail reports a client-side acquisition error.
// Until the first frame arrives Capture reports ErrNotReady, which gives the
// flow its transient-retry behavior for free.
type RemoteCamera struct {
	mu       sync.Mutex
	waiters  []chan error
	attached bool
	failure  *StartError
	frame    []byte
	facing   string
}

func NewRemoteCamera() *RemoteCamera {
	return &RemoteCamera{}
}

// Start waits until the remote device attaches, reports a failure, or the
// context expires.
func (r *RemoteCamera) Start(ctx context.Context, facing string) error {
	r.mu.Lock()
	r.facing = facing
	if r.failure != nil {
		failure := r.failure
		r.mu.Unlock()
		return failure
	}
	if r.attached {
		r.mu.Unlock()
		return nil
	}
	ready := make(chan error, 1)
	r.waiters = append(r.waiters, ready)
	r.mu.Unlock()

	select {
	case err := <-ready:
		return err
	case <-ctx.Done():
		return &StartError{Kind: FailureNotFound, Reason: "no camera attached in time"}
	}
}

// Attach marks the remote device as live and releases pending Start calls.
func (r *RemoteCamera) Attach(facing string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attached = true
	r.failure = nil
	if facing != "" {
		r.facing = facing
	}
	r.notifyLocked(nil)
}

// Fail records a client-reported acquisition failure and releases pending
// Start calls with it.
func (r *RemoteCamera) Fail(kind FailureKind, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attached = false
	r.frame = nil
	r.failure = &StartError{Kind: kind, Reason: reason}
	r.notifyLocked(r.failure)
}

// PushFrame stores the most recent frame from the remote device.
func (r *RemoteCamera) PushFrame(frame []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.attached || len(frame) == 0 {
		return
	}
	r.frame = append([]byte(nil), frame...)
}

func (r *RemoteCamera) Capture() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return nil, r.failure
	}
	if !r.attached {
		return nil, errors.New("capture: no capture surface")
	}
	if len(r.frame) == 0 {
		return nil, ErrNotReady
	}
	return append([]byte(nil), r.frame...), nil
}

func (r *RemoteCamera) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attached = false
	r.frame = nil
	r.failure = nil
	r.notifyLocked(&StartError{Kind: FailureUnknown, Reason: "camera stopped"})
}

func (r *RemoteCamera) SwitchFacing() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.attached {
		return errors.New("capture: camera not running")
	}
	if r.facing == "environment" {
		r.facing = "user"
	} else {
		r.facing = "environment"
	}
	// The remote stream restarts on the new device; old frames are stale.
	r.frame = nil
	return nil
}

// Facing returns the currently requested facing mode.
func (r *RemoteCamera) Facing() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.facing
}

func (r *RemoteCamera) notifyLocked(err error) {
	for _, ready := range r.waiters {
		ready <- err
	}
	r.waiters = nil
}
