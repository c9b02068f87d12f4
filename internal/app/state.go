// Package app provides application state, events, theme, and developer
// conveniences around the sketch engine.
package app

import (
	"sync"

	"github.com/sirupsen/logrus"

	"inkpad/internal/sketch"
	"inkpad/pkg/geometry"
)

// EventType identifies application events.
type EventType int

const (
	EventStrokeCommitted EventType = iota
	EventStrokeDiscarded
	EventCurvesErased
	EventCanvasCleared
	EventModified
)

// EventListener is called when an event occurs. Listeners run synchronously
// on the goroutine that triggered the event.
type EventListener func(data interface{})

// State wraps the sketch canvas with the event fan-out the UI hangs off of.
// The canvas itself is single-threaded; the mutex serializes access so
// background callers (the bench tool, tests) get the same serial view the
// input loop does.
type State struct {
	mu sync.RWMutex

	canvas   *sketch.Canvas
	modified bool

	listeners map[EventType][]EventListener
}

// NewState creates application state with an empty canvas.
func NewState() *State {
	return &State{
		canvas:    sketch.NewCanvas(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Modified reports whether the canvas changed since startup.
func (s *State) Modified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// BeginStroke starts a new stroke at p.
func (s *State) BeginStroke(p geometry.Point2D) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.BeginStroke(p)
}

// ContinueStroke extends the in-progress stroke to p.
func (s *State) ContinueStroke(p geometry.Point2D) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.ContinueStroke(p)
}

// EndStroke finishes the in-progress stroke, committing it if it has at
// least two points.
func (s *State) EndStroke() error {
	s.mu.Lock()
	curve, err := s.canvas.EndStroke()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if curve == nil {
		logrus.Debug("stroke discarded: fewer than two points")
		s.Emit(EventStrokeDiscarded, nil)
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"curve":  curve.ID(),
		"points": curve.Len(),
	}).Debug("stroke committed")
	s.setModified()
	s.Emit(EventStrokeCommitted, curve)
	return nil
}

// StrokeInProgress reports whether a stroke is being drawn.
func (s *State) StrokeInProgress() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas.StrokeInProgress()
}

// BeginErasure starts an erase session at p.
func (s *State) BeginErasure(p geometry.Point2D) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.BeginErasure(p)
}

// ContinueErasure sweeps the eraser to p, deleting intersected curves.
func (s *State) ContinueErasure(p geometry.Point2D) error {
	s.mu.Lock()
	erased, err := s.canvas.ContinueErasure(p)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if len(erased) > 0 {
		logrus.WithField("count", len(erased)).Debug("curves erased")
		s.setModified()
		s.Emit(EventCurvesErased, erased)
	}
	return nil
}

// EndErasure finishes the erase session.
func (s *State) EndErasure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.EndErasure()
}

// ErasureInProgress reports whether an erase session is active.
func (s *State) ErasureInProgress() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas.ErasureInProgress()
}

// Render hands the visible curves to the renderer under the read lock.
func (s *State) Render(r sketch.Renderer) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.canvas.Render(r)
}

// CurveCount returns the number of committed curves.
func (s *State) CurveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas.CurveCount()
}

// Curves returns the committed curves in insertion order.
func (s *State) Curves() []*sketch.Curve {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas.Curves()
}

// Clear removes all committed curves.
func (s *State) Clear() {
	s.mu.Lock()
	s.canvas.Clear()
	s.mu.Unlock()

	logrus.Debug("canvas cleared")
	s.setModified()
	s.Emit(EventCanvasCleared, nil)
}

func (s *State) setModified() {
	s.mu.Lock()
	s.modified = true
	s.mu.Unlock()
	s.Emit(EventModified, true)
}
