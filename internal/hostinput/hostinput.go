// Package hostinput polls a pixelgl window for key events and turns them
// into keyboard.Events, generalized from the teacher's
// internal/pixel.Window.KeyMap / JustPressed polling idiom (chippy's
// 16-key hex pad) up to the full ASCII-producing keyboard spec.md section
// 6 describes, plus the Quit/Reset control events
// original_source/input.rs splits out of the ASCII stream.
package hostinput

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/mwhittaker/apple2emu/internal/keyboard"
)

var keyMap = map[pixelgl.Button]keyboard.Code{
	pixelgl.KeyA: keyboard.A, pixelgl.KeyB: keyboard.B, pixelgl.KeyC: keyboard.C,
	pixelgl.KeyD: keyboard.D, pixelgl.KeyE: keyboard.E, pixelgl.KeyF: keyboard.F,
	pixelgl.KeyG: keyboard.G, pixelgl.KeyH: keyboard.H, pixelgl.KeyI: keyboard.I,
	pixelgl.KeyJ: keyboard.J, pixelgl.KeyK: keyboard.K, pixelgl.KeyL: keyboard.L,
	pixelgl.KeyM: keyboard.M, pixelgl.KeyN: keyboard.N, pixelgl.KeyO: keyboard.O,
	pixelgl.KeyP: keyboard.P, pixelgl.KeyQ: keyboard.Q, pixelgl.KeyR: keyboard.R,
	pixelgl.KeyS: keyboard.S, pixelgl.KeyT: keyboard.T, pixelgl.KeyU: keyboard.U,
	pixelgl.KeyV: keyboard.V, pixelgl.KeyW: keyboard.W, pixelgl.KeyX: keyboard.X,
	pixelgl.KeyY: keyboard.Y, pixelgl.KeyZ: keyboard.Z,

	pixelgl.Key0: keyboard.Num0, pixelgl.Key1: keyboard.Num1, pixelgl.Key2: keyboard.Num2,
	pixelgl.Key3: keyboard.Num3, pixelgl.Key4: keyboard.Num4, pixelgl.Key5: keyboard.Num5,
	pixelgl.Key6: keyboard.Num6, pixelgl.Key7: keyboard.Num7, pixelgl.Key8: keyboard.Num8,
	pixelgl.Key9: keyboard.Num9,

	pixelgl.KeyRightBracket: keyboard.RightBracket,
	pixelgl.KeySpace:        keyboard.Space,
	pixelgl.KeyApostrophe:   keyboard.Quote,
	pixelgl.KeyComma:        keyboard.Comma,
	pixelgl.KeyMinus:        keyboard.Minus,
	pixelgl.KeyPeriod:       keyboard.Period,
	pixelgl.KeySlash:        keyboard.Slash,
	pixelgl.KeySemicolon:    keyboard.Semicolon,
	pixelgl.KeyEqual:        keyboard.Equals,
	pixelgl.KeyEnter:        keyboard.Return,
	pixelgl.KeyLeft:         keyboard.Left,
	pixelgl.KeyBackspace:    keyboard.Backspace,
	pixelgl.KeyRight:        keyboard.Right,
	pixelgl.KeyEscape:       keyboard.Escape,
}

// Window is the subset of *pixelgl.Window this package needs, narrow
// enough that the host display.Window (or a test double) satisfies it.
type Window interface {
	JustPressed(button pixelgl.Button) bool
	Pressed(button pixelgl.Button) bool
	Closed() bool
}

// Poll surfaces at most one keyboard.Event per call: a Quit if the
// window's close button was pressed, a Reset on F2, a Pause on F1, or one
// newly-pressed key translated through keyboard.Map. keyMap is scanned in
// Go map order, so when several keys are pressed in the same frame, which
// one is returned is not defined. Apple II software reads the latch one
// key at a time, so collapsing a frame's presses to one key matches
// spec.md section 6's single-byte keyboard latch.
func Poll(w Window) keyboard.Event {
	if w.Closed() {
		return keyboard.Event{Quit: true}
	}
	if w.JustPressed(pixelgl.KeyF2) {
		return keyboard.Event{Reset: true}
	}
	if w.JustPressed(pixelgl.KeyF1) {
		return keyboard.Event{Pause: true}
	}

	mods := keyboard.Mods{
		Shift: w.Pressed(pixelgl.KeyLeftShift) || w.Pressed(pixelgl.KeyRightShift),
		Ctrl:  w.Pressed(pixelgl.KeyLeftControl) || w.Pressed(pixelgl.KeyRightControl),
	}

	for button, code := range keyMap {
		if w.JustPressed(button) {
			if ch, ok := keyboard.Map(code, mods); ok {
				return keyboard.Event{HasKey: true, Key: ch}
			}
		}
	}

	return keyboard.Event{}
}
