// Package app wires capture, detection, the gesture pipeline, and the card
// selector into a running tracking session.
package app

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lmorel/arcana/internal/capture"
	"github.com/lmorel/arcana/internal/deck"
	"github.com/lmorel/arcana/internal/detector"
	"github.com/lmorel/arcana/internal/gesture"
	"github.com/lmorel/arcana/internal/hook"
	"github.com/lmorel/arcana/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while waiting for a hand to show up.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeout is how long without motion before dropping back to idle.
	IdleTimeout = 2 * time.Second
)

// cooldownSetting is the settings key that overrides the debounce cooldown.
const cooldownSetting = "cooldown_ms"

// Config holds configuration options for the application.
type Config struct {
	Store              *store.Store
	CameraID           int
	MotionThreshold    float64
	Cooldown           time.Duration
	Interpreter        string
	InterpreterTimeout time.Duration
}

// Event is one debounced gesture event together with the selection state it
// produced.
type Event struct {
	SessionID string          `json:"sessionId"`
	Gesture   gesture.Gesture `json:"gesture"`
	Hovered   deck.Card       `json:"hovered"`
	Confirmed *deck.Card      `json:"confirmed,omitempty"`
	At        time.Time       `json:"at"`
}

// App owns one tracking session end to end: camera, detector, gesture
// engine, card selector, and persistence.
type App struct {
	config      Config
	camera      capture.Camera
	motion      *capture.MotionDetector
	detector    detector.Detector
	engine      *gesture.Engine
	selector    *deck.Selector
	interpreter *hook.Runner

	mu        sync.RWMutex
	enabled   bool
	stopCh    chan struct{}
	sessionID string
	listeners []func(Event)
}

// New creates an App with the given configuration. The debounce cooldown can
// be overridden by the cooldown_ms setting when a store is configured.
func New(config Config) *App {
	motionThreshold := config.MotionThreshold
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	cooldown := config.Cooldown
	if config.Store != nil {
		if v, err := config.Store.Settings().Get(cooldownSetting); err == nil {
			if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
				cooldown = time.Duration(ms) * time.Millisecond
			}
		}
	}

	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		motion:   capture.NewMotionDetector(motionThreshold),
		engine:   gesture.NewEngine(cooldown),
		selector: deck.NewSelector(nil),
		enabled:  true,
	}

	if config.Interpreter != "" {
		timeout := config.InterpreterTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		a.interpreter = hook.NewRunner(config.Interpreter, timeout)
	}

	// Prefer MediaPipe, fall back to the mock detector so the rest of the
	// system stays usable without the Python service.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture detection.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled reports whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetCamera replaces the camera implementation. Must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetDetector replaces the hand detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnEvent registers a callback invoked for every debounced gesture event.
// Callbacks run on the pipeline goroutine and must not block.
func (a *App) OnEvent(fn func(Event)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// Hovered returns the currently hovered card.
func (a *App) Hovered() deck.Card {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.selector.Hovered()
}

// Cards returns the spread the session selects from.
func (a *App) Cards() []deck.Card {
	return a.selector.Cards()
}

// SessionID returns the id of the running session, or "" when stopped.
func (a *App) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sessionID
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// StartSession begins a session without opening the camera, for callers
// that feed landmark frames themselves via Feed. Returns the session id.
func (a *App) StartSession() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sessionID = uuid.NewString()
	if a.config.Store != nil {
		if err := a.config.Store.Sessions().Create(&store.Session{ID: a.sessionID}); err != nil {
			log.Printf("Failed to record session: %v", err)
		}
	}

	a.engine.Reset()
	a.selector.Reset()
	return a.sessionID
}

// Feed injects one landmark frame into the gesture pipeline, bypassing the
// camera. A nil or short frame counts as no hand in view.
func (a *App) Feed(landmarks detector.Frame, now time.Time) {
	a.step(landmarks, now)
}

// Start opens the camera and begins a new tracking session.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	a.sessionID = uuid.NewString()
	if a.config.Store != nil {
		if err := a.config.Store.Sessions().Create(&store.Session{ID: a.sessionID}); err != nil {
			log.Printf("Failed to record session: %v", err)
		}
	}

	a.engine.Reset()
	a.selector.Reset()

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Printf("Session %s started", a.sessionID)
	return nil
}

// Stop halts the pipeline, ends the session, and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh == nil {
		return
	}
	close(a.stopCh)
	a.stopCh = nil

	if a.config.Store != nil && a.sessionID != "" {
		if err := a.config.Store.Sessions().End(a.sessionID, time.Now()); err != nil {
			log.Printf("Failed to end session: %v", err)
		}
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Printf("Session %s stopped", a.sessionID)
	a.sessionID = ""
}
