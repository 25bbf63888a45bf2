package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   sdl.Event
		want Event
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"window moved", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_W},
			true,
		},
		{
			"key repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			Event{},
			false,
		},
		{
			"drag",
			&sdl.MouseMotionEvent{X: 10, Y: 20, XRel: 3, YRel: -2, State: sdl.ButtonLMask()},
			Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: 3, DeltaY: -2, Button: sdl.BUTTON_LEFT},
			true,
		},
		{
			"click",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 5, Y: 6, Button: sdl.BUTTON_LEFT},
			Event{Type: EventMouseDown, MouseX: 5, MouseY: 6, Button: sdl.BUTTON_LEFT},
			true,
		},
		{"wheel", &sdl.MouseWheelEvent{Y: -1}, Event{Type: EventMouseWheel, Wheel: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeldKeys(t *testing.T) {
	in := New()
	in.push(Event{Type: EventKeyDown, Key: sdl.SCANCODE_A})
	assert.True(t, in.IsKeyDown(sdl.SCANCODE_A))
	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_A))

	in.push(Event{Type: EventKeyUp, Key: sdl.SCANCODE_A})
	assert.False(t, in.IsKeyDown(sdl.SCANCODE_A))
}
