// Package capture coordinates the celebration photo flow: camera
// acquisition, countdown, frame grab with retry, compositing, and the
// save-or-retake decision. The flow is a single state machine guarded by a
// generation counter: every timer callback and asynchronous continuation
// carries the generation it was issued under and is discarded when a newer
// flow has superseded it.
package capture

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/caffeinepub/my-goals-2026/internal/log"
	"github.com/caffeinepub/my-goals-2026/internal/models"
)

// State is the current phase of the capture flow.
type State string

const (
	StateIdle           State = "idle"
	StateStartingCamera State = "starting_camera"
	StateCountdown      State = "countdown"
	StateCapturing      State = "capturing"
	StateProcessing     State = "processing"
	StatePreview        State = "preview"
	StateSaved          State = "saved"
	StateError          State = "error"
	StateClosed         State = "closed"
)

// Event types published by the flow.
const (
	EventCaptureState = "capture_state"
	EventMemorySaved  = "memory_saved"
)

var (
	// ErrFlowActive is returned when a flow is started while one is running.
	ErrFlowActive = errors.New("capture: a flow is already active")
	// ErrNoPreview is returned when Save is called outside the preview phase.
	ErrNoPreview = errors.New("capture: nothing to save")
	// ErrNoFlow is returned when Retake is called with no flow to restart.
	ErrNoFlow = errors.New("capture: no active flow")
)

// Config carries the flow timings. All of them are fixed at startup.
type Config struct {
	CountdownFrom  int
	CountdownTick  time.Duration
	RetryInterval  time.Duration
	CaptureTimeout time.Duration
	StartWindow    time.Duration
	FacingMode     string
}

// MemorySaver commits a finished photo for a month.
type MemorySaver interface {
	SaveMemory(month models.Month, imageData string)
}

// EventSink receives flow events.
type EventSink interface {
	Publish(eventType string, data interface{})
}

// Snapshot is the externally visible flow state.
type Snapshot struct {
	State     State        `json:"state"`
	Month     models.Month `json:"month,omitempty"`
	Countdown int          `json:"countdown,omitempty"`
	Failure   FailureKind  `json:"failure,omitempty"`
	Preview   string       `json:"preview,omitempty"`
}

type Flow struct {
	cfg        Config
	camera     Camera
	compositor Compositor
	saver      MemorySaver
	sink       EventSink
	logger     *log.Logger

	mu          sync.Mutex
	generation  uint64
	state       State
	month       models.Month
	countdown   int
	failure     FailureKind
	preview     []byte
	timers      []*time.Timer
	deadline    time.Time
	cancelStart context.CancelFunc
}

func NewFlow(cfg Config, camera Camera, compositor Compositor, saver MemorySaver, sink EventSink, logger *log.Logger) *Flow {
	return &Flow{
		cfg:        cfg,
		camera:     camera,
		compositor: compositor,
		saver:      saver,
		sink:       sink,
		logger:     logger,
		state:      StateIdle,
	}
}

// Begin starts a capture flow for the given month. Only one flow may be
// active at a time; a second Begin is rejected until the first reaches a
// terminal state or is closed.
func (f *Flow) Begin(month models.Month) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.activeLocked() {
		return ErrFlowActive
	}
	f.generation++
	f.month = month
	f.failure = ""
	f.preview = nil
	f.startCameraLocked()
	return nil
}

// Upload bypasses the camera path entirely: a user-selected file goes
// straight to processing. Any running flow is superseded.
func (f *Flow) Upload(month models.Month, raw []byte) error {
	if len(raw) == 0 {
		return errors.New("capture: empty upload")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation++
	f.cancelTimersLocked()
	f.releaseCameraLocked()
	f.month = month
	f.failure = ""
	f.preview = nil
	f.beginProcessingLocked(raw)
	return nil
}

// Save commits the previewed photo to storage under the active month.
func (f *Flow) Save() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StatePreview || len(f.preview) == 0 {
		return ErrNoPreview
	}
	memory := models.MonthlyMemory{Month: f.month, ImageData: dataURL(f.preview)}
	f.saver.SaveMemory(memory.Month, memory.ImageData)
	f.setStateLocked(StateSaved)
	f.logger.Info("memory saved", "month", f.month)
	if f.sink != nil {
		f.sink.Publish(EventMemorySaved, memory)
	}
	return nil
}

// Retake discards the current attempt and restarts at camera acquisition.
// Valid from any non-terminal phase, including mid-retry; the generation
// bump makes every outstanding timer of the old attempt stale.
func (f *Flow) Retake() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateIdle || f.state == StateClosed {
		return ErrNoFlow
	}
	f.generation++
	f.cancelTimersLocked()
	f.releaseCameraLocked()
	f.failure = ""
	f.preview = nil
	f.startCameraLocked()
	return nil
}

// Close tears the flow down from any state: all timers cancelled, the
// camera released. Safe to call repeatedly.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateClosed {
		return
	}
	f.generation++
	f.cancelTimersLocked()
	f.releaseCameraLocked()
	f.preview = nil
	f.setStateLocked(StateClosed)
}

// Snapshot returns the externally visible state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// State returns the current phase.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) activeLocked() bool {
	switch f.state {
	case StateStartingCamera, StateCountdown, StateCapturing, StateProcessing, StatePreview:
		return true
	}
	return false
}

func (f *Flow) startCameraLocked() {
	f.setStateLocked(StateStartingCamera)
	gen := f.generation
	ctx, cancel := context.WithTimeout(context.Background(), f.cfg.StartWindow)
	f.cancelStart = cancel

	go func() {
		err := f.camera.Start(ctx, f.cfg.FacingMode)
		cancel()

		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.generation {
			return
		}
		if err != nil {
			f.logger.Warn("camera start failed", "error", err)
			f.failLocked(startFailureKind(err))
			return
		}
		f.beginCountdownLocked()
	}()
}

func (f *Flow) beginCountdownLocked() {
	f.countdown = f.cfg.CountdownFrom
	f.setStateLocked(StateCountdown)
	f.scheduleLocked(f.cfg.CountdownTick, f.tickLocked)
}

func (f *Flow) tickLocked() {
	f.countdown--
	if f.countdown > 0 {
		f.publishLocked()
		f.scheduleLocked(f.cfg.CountdownTick, f.tickLocked)
		return
	}
	f.beginCapturingLocked()
}

func (f *Flow) beginCapturingLocked() {
	f.cancelTimersLocked()
	f.countdown = 0
	f.setStateLocked(StateCapturing)
	f.deadline = time.Now().Add(f.cfg.CaptureTimeout)
	f.scheduleLocked(0, f.attemptLocked)
}

func (f *Flow) attemptLocked() {
	frame, err := f.camera.Capture()
	switch {
	case err == nil && len(frame) > 0:
		f.beginProcessingLocked(frame)
	case errors.Is(err, ErrNotReady) || (err == nil && len(frame) == 0):
		if time.Now().After(f.deadline) {
			f.logger.Warn("capture timed out", "month", f.month)
			f.failLocked(FailureTimeout)
			return
		}
		f.scheduleLocked(f.cfg.RetryInterval, f.attemptLocked)
	default:
		f.logger.Warn("frame grab failed", "error", err)
		f.failLocked(FailureCapture)
	}
}

func (f *Flow) beginProcessingLocked(frame []byte) {
	f.cancelTimersLocked()
	f.releaseCameraLocked()
	f.setStateLocked(StateProcessing)

	gen := f.generation
	month := f.month
	go func() {
		composed, err := f.compositor.Compose(frame, month)

		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.generation {
			return
		}
		if err != nil {
			// Degrade to the raw capture rather than aborting.
			f.logger.Warn("compositing failed, keeping raw capture", "error", err)
			composed = frame
		}
		f.preview = composed
		f.setStateLocked(StatePreview)
	}()
}

func (f *Flow) failLocked(kind FailureKind) {
	f.cancelTimersLocked()
	f.releaseCameraLocked()
	f.failure = kind
	f.setStateLocked(StateError)
}

func (f *Flow) releaseCameraLocked() {
	if f.cancelStart != nil {
		f.cancelStart()
		f.cancelStart = nil
	}
	f.camera.Stop()
}

// scheduleLocked arms a timer whose callback is dropped if the flow has
// moved to a newer generation by the time it fires.
func (f *Flow) scheduleLocked(d time.Duration, fn func()) {
	gen := f.generation
	t := time.AfterFunc(d, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.generation {
			return
		}
		fn()
	})
	f.timers = append(f.timers, t)
}

func (f *Flow) cancelTimersLocked() {
	for _, t := range f.timers {
		t.Stop()
	}
	f.timers = nil
}

func (f *Flow) setStateLocked(state State) {
	f.state = state
	f.publishLocked()
}

func (f *Flow) publishLocked() {
	if f.sink == nil {
		return
	}
	f.sink.Publish(EventCaptureState, f.snapshotLocked())
}

func (f *Flow) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:     f.state,
		Month:     f.month,
		Countdown: f.countdown,
		Failure:   f.failure,
	}
	if (f.state == StatePreview || f.state == StateSaved) && len(f.preview) > 0 {
		snap.Preview = dataURL(f.preview)
	}
	return snap
}

func startFailureKind(err error) FailureKind {
	var startErr *StartError
	if errors.As(err, &startErr) {
		return startErr.Kind
	}
	return FailureUnknown
}

func dataURL(b []byte) string {
	return "data:" + http.DetectContentType(b) + ";base64," + base64.StdEncoding.EncodeToString(b)
}
