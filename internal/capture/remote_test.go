package capture

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRemoteStartAfterAttach(t *testing.T) {
	cam := NewRemoteCamera()
	cam.Attach("user")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := cam.Start(ctx, "user"); err != nil {
		t.Fatalf("Start after Attach = %v, want nil", err)
	}
}

func TestRemoteStartWaitsForAttach(t *testing.T) {
	cam := NewRemoteCamera()

	go func() {
		time.Sleep(5 * time.Millisecond)
		cam.Attach("environment")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := cam.Start(ctx, "user"); err != nil {
		t.Fatalf("Start = %v, want nil once attached", err)
	}
	if cam.Facing() != "environment" {
		t.Errorf("facing = %q, want environment from attach", cam.Facing())
	}
}

func TestRemoteStartTimesOutWithoutDevice(t *testing.T) {
	cam := NewRemoteCamera()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := cam.Start(ctx, "user")

	var startErr *StartError
	if !errors.As(err, &startErr) || startErr.Kind != FailureNotFound {
		t.Fatalf("Start = %v, want not-found StartError", err)
	}
}

func TestRemoteStartSeesReportedFailure(t *testing.T) {
	cam := NewRemoteCamera()
	cam.Fail(FailurePermission, "user denied getUserMedia")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := cam.Start(ctx, "user")

	var startErr *StartError
	if !errors.As(err, &startErr) || startErr.Kind != FailurePermission {
		t.Fatalf("Start = %v, want permission StartError", err)
	}
}

func TestRemoteCaptureLifecycle(t *testing.T) {
	cam := NewRemoteCamera()

	// Detached: fatal, not transient.
	if _, err := cam.Capture(); err == nil || errors.Is(err, ErrNotReady) {
		t.Fatalf("detached Capture = %v, want fatal error", err)
	}

	cam.Attach("user")
	if _, err := cam.Capture(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Capture before first frame = %v, want ErrNotReady", err)
	}

	cam.PushFrame([]byte("jpeg-bytes"))
	frame, err := cam.Capture()
	if err != nil || string(frame) != "jpeg-bytes" {
		t.Fatalf("Capture = %q, %v; want pushed frame", frame, err)
	}

	cam.Stop()
	if _, err := cam.Capture(); err == nil || errors.Is(err, ErrNotReady) {
		t.Fatalf("Capture after Stop = %v, want fatal error", err)
	}
}

func TestRemoteFramesIgnoredWhileDetached(t *testing.T) {
	cam := NewRemoteCamera()
	cam.PushFrame([]byte("stray"))
	cam.Attach("user")

	if _, err := cam.Capture(); !errors.Is(err, ErrNotReady) {
		t.Fatal("frame pushed before attach should have been dropped")
	}
}

func TestRemoteSwitchFacing(t *testing.T) {
	cam := NewRemoteCamera()
	if err := cam.SwitchFacing(); err == nil {
		t.Fatal("SwitchFacing on a stopped camera should fail")
	}

	cam.Attach("user")
	cam.PushFrame([]byte("front"))
	if err := cam.SwitchFacing(); err != nil {
		t.Fatalf("SwitchFacing: %v", err)
	}
	if cam.Facing() != "environment" {
		t.Errorf("facing = %q, want environment", cam.Facing())
	}
	// Frames from the old facing are stale.
	if _, err := cam.Capture(); !errors.Is(err, ErrNotReady) {
		t.Error("old-facing frame survived the switch")
	}
}
