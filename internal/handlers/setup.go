package handlers

import (
	"sync"

	"github.com/caffeinepub/my-goals-2026/internal/capture"
	"github.com/caffeinepub/my-goals-2026/internal/log"
	"github.com/caffeinepub/my-goals-2026/internal/storage"
	"github.com/caffeinepub/my-goals-2026/internal/summary"
)

var (
	store      *storage.Store
	summarySvc *summary.Service
	flow       *capture.Flow
	camera     *capture.RemoteCamera
	logger     *log.Logger

	// mutationMu serializes goal collection read-modify-write cycles.
	mutationMu sync.Mutex
)

// Setup wires the handler package's collaborators. Must run before routes
// are served.
func Setup(s *storage.Store, svc *summary.Service, f *capture.Flow, cam *capture.RemoteCamera, l *log.Logger) {
	store = s
	summarySvc = svc
	flow = f
	camera = cam
	logger = l
}
