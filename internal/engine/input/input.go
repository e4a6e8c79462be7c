// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/cometlab/observatory/internal/engine/player"
	"github.com/cometlab/observatory/pkg/math"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// mouseScale converts raw pixel deltas to the normalized look units
// the controller's sensitivity is tuned against.
const mouseScale = 0.001

// Handler polls SDL events and tracks which keys are currently held,
// so movement reads as level state while jump/reset read as edges.
type Handler struct {
	events  []Event
	held    map[sdl.Scancode]bool
	mouseDX float32
	mouseDY float32
}

// New creates an input handler and locks the mouse for relative look.
func New() *Handler {
	sdl.SetRelativeMouseMode(true)
	return &Handler{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Poll drains SDL events for this frame. Returns true if the game
// should quit.
func (h *Handler) Poll() bool {
	h.events = h.events[:0]
	h.mouseDX = 0
	h.mouseDY = 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			h.events = append(h.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				h.events = append(h.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				// Key repeats would retrigger edge-detected actions.
				if e.Repeat == 0 {
					h.events = append(h.events, Event{
						Type: EventKeyDown,
						Key:  e.Keysym.Scancode,
					})
				}
				h.held[e.Keysym.Scancode] = true
			} else if e.Type == sdl.KEYUP {
				h.events = append(h.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
				h.held[e.Keysym.Scancode] = false
			}

		case *sdl.MouseMotionEvent:
			h.mouseDX += float32(e.XRel)
			h.mouseDY += float32(e.YRel)
		}
	}

	return false
}

// Events returns the events from the last Poll.
func (h *Handler) Events() []Event {
	return h.events
}

// IsKeyPressed checks if a key went down this frame (edge, no repeats).
func (h *Handler) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range h.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld checks if a key is currently held.
func (h *Handler) IsKeyHeld(scancode sdl.Scancode) bool {
	return h.held[scancode]
}

// Snapshot builds the controller's per-frame input from the current
// key state and accumulated mouse motion.
func (h *Handler) Snapshot() player.InputSnapshot {
	return player.InputSnapshot{
		MoveX: axis(h.held[sdl.SCANCODE_D]) - axis(h.held[sdl.SCANCODE_A]),
		MoveZ: axis(h.held[sdl.SCANCODE_W]) - axis(h.held[sdl.SCANCODE_S]),
		Jump:  h.IsKeyPressed(sdl.SCANCODE_SPACE),
		MouseDelta: math.Vec2{
			X: h.mouseDX * mouseScale,
			Y: h.mouseDY * mouseScale,
		},
	}
}

func axis(held bool) float32 {
	if held {
		return 1
	}
	return 0
}
