package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/google/uuid"

	"github.com/lmorel/arcana/internal/detector"
	"github.com/lmorel/arcana/internal/gesture"
	"github.com/lmorel/arcana/internal/hook"
	"github.com/lmorel/arcana/internal/store"
)

// runPipeline is the main capture loop. It runs at IdleFPS until motion is
// seen, then at ActiveFPS while a hand is being tracked, dropping back to
// idle after IdleTimeout without motion.
func (a *App) runPipeline(stopCh chan struct{}) {
	active := false
	lastMotion := time.Now()

	ticker := time.NewTicker(time.Second / IdleFPS)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}

		if !a.IsEnabled() {
			continue
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			continue
		}
		a.processFrame(frame, &active, &lastMotion, ticker)
		frame.Close()
	}
}

func (a *App) processFrame(frame *gocv.Mat, active *bool, lastMotion *time.Time, ticker *time.Ticker) {
	now := time.Now()
	if moved, _ := a.motion.Detect(frame); moved {
		*lastMotion = now
		if !*active {
			*active = true
			a.camera.SetFPS(ActiveFPS)
			ticker.Reset(time.Second / ActiveFPS)
		}
	} else if *active && now.Sub(*lastMotion) > IdleTimeout {
		*active = false
		a.camera.SetFPS(IdleFPS)
		ticker.Reset(time.Second / IdleFPS)
		a.step(nil, now)
		return
	}

	if !*active {
		return
	}

	hands, err := a.detector.Detect(frame)
	if err != nil {
		log.Printf("Detection error: %v", err)
		return
	}

	var landmarks detector.Frame
	if len(hands) > 0 {
		landmarks = hands[0].Frame
	}
	a.step(landmarks, now)
}

// step feeds one landmark frame to the gesture engine and handles whatever
// event it emits.
func (a *App) step(landmarks detector.Frame, now time.Time) {
	g := a.engine.Step(landmarks, now)
	if g == gesture.None {
		return
	}
	a.handleGesture(g, now)
}

func (a *App) handleGesture(g gesture.Gesture, now time.Time) {
	a.mu.Lock()
	sessionID := a.sessionID
	confirmed := a.selector.Apply(g)
	hovered := a.selector.Hovered()
	listeners := make([]func(Event), len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	log.Printf("Gesture: %s (hovering %s)", g, hovered.Name)

	if a.config.Store != nil && sessionID != "" {
		if err := a.config.Store.Events().Create(&store.Event{
			SessionID: sessionID,
			Gesture:   string(g),
			CreatedAt: now,
		}); err != nil {
			log.Printf("Failed to record gesture event: %v", err)
		}
	}

	ev := Event{
		SessionID: sessionID,
		Gesture:   g,
		Hovered:   hovered,
		Confirmed: confirmed,
		At:        now,
	}

	if confirmed != nil {
		a.recordReading(ev)
	}

	for _, fn := range listeners {
		fn(ev)
	}
}

// recordReading persists a confirmed card and kicks off the interpreter
// hook, if one is configured.
func (a *App) recordReading(ev Event) {
	log.Printf("Card confirmed: %s", ev.Confirmed.Name)

	if a.config.Store == nil || ev.SessionID == "" {
		return
	}

	reading := &store.Reading{
		ID:        uuid.NewString(),
		SessionID: ev.SessionID,
		CardIndex: ev.Confirmed.Index,
		CardName:  ev.Confirmed.Name,
		Gesture:   string(ev.Gesture),
		CreatedAt: ev.At,
	}
	if err := a.config.Store.Readings().Create(reading); err != nil {
		log.Printf("Failed to record reading: %v", err)
		return
	}

	if a.interpreter == nil {
		return
	}
	go func() {
		resp, err := a.interpreter.Run(&hook.Request{
			Card:      reading.CardName,
			CardIndex: reading.CardIndex,
			Gesture:   reading.Gesture,
			SessionID: reading.SessionID,
		})
		if err != nil {
			log.Printf("Interpreter failed: %v", err)
			return
		}
		if err := a.config.Store.Readings().SetInterpretation(reading.ID, resp.Interpretation); err != nil {
			log.Printf("Failed to store interpretation: %v", err)
		}
	}()
}
