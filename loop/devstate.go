package loop

import (
	"sync"

	"github.com/veselink1/SGL/canvas"
)

// deviceState is the input device snapshot: which keys and mouse
// buttons are currently held. Writes come from UI-goroutine event
// handling only; reads come from any caller goroutine. A single mutex
// guards the whole snapshot.
type deviceState struct {
	mu      sync.Mutex
	keys    map[canvas.Key]bool
	buttons map[canvas.Button]bool
}

func newDeviceState() *deviceState {
	return &deviceState{
		keys:    make(map[canvas.Key]bool),
		buttons: make(map[canvas.Button]bool),
	}
}

func (s *deviceState) setKey(k canvas.Key, down bool) {
	s.mu.Lock()
	if down {
		s.keys[k] = true
	} else {
		delete(s.keys, k)
	}
	s.mu.Unlock()
}

func (s *deviceState) setButton(b canvas.Button, down bool) {
	s.mu.Lock()
	if down {
		s.buttons[b] = true
	} else {
		delete(s.buttons, b)
	}
	s.mu.Unlock()
}

// reset clears every entry in one lock-held pass. Called when the
// window loses focus: any half-pressed state is assumed released, so
// keys cannot stick.
func (s *deviceState) reset() {
	s.mu.Lock()
	clear(s.keys)
	clear(s.buttons)
	s.mu.Unlock()
}

// keyDown reports whether k is held.
func (s *deviceState) keyDown(k canvas.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[k]
}

// buttonDown reports whether b is held.
func (s *deviceState) buttonDown(b canvas.Button) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons[b]
}
