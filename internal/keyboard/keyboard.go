// Package keyboard maps host key codes to the 7-bit ASCII codes (with
// modifier semantics) the Apple II keyboard latch expects. It is pure
// logic: it knows nothing about any particular windowing toolkit's event
// types, so it can be tested without one.
//
// Grounded on original_source/input.rs.
package keyboard

// Code identifies a physical key, independent of any host windowing
// library's own key-code type.
type Code int

const (
	A Code = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	RightBracket
	Space
	Quote
	Comma
	Minus
	Period
	Slash
	Semicolon
	Equals
	Return
	Left
	Backspace
	Right
	Escape
	F1
	F2
)

// Mods reports which modifier keys were held when the key event fired.
type Mods struct {
	Shift bool
	Ctrl  bool
}

// Event is one keyboard event surfaced by a host key source: a quit
// request, a reset request (F2 on the real keyboard), a pause-toggle
// request (F1), or a 7-bit ASCII key code bound for the Apple II's
// keyboard latch.
type Event struct {
	Quit   bool
	Reset  bool
	Pause  bool
	HasKey bool
	Key    byte
}

var plainMap = map[Code]byte{
	A: 'A', B: 'B', C: 'C', D: 'D', E: 'E', F: 'F', G: 'G', H: 'H', I: 'I',
	J: 'J', K: 'K', L: 'L', M: 'M', N: 'N', O: 'O', P: 'P', Q: 'Q', R: 'R',
	S: 'S', T: 'T', U: 'U', V: 'V', W: 'W', X: 'X', Y: 'Y', Z: 'Z',
	RightBracket: ']', Space: ' ', Quote: '\'', Comma: ',', Minus: '-',
	Period: '.', Slash: '/',
	Num0: '0', Num1: '1', Num2: '2', Num3: '3', Num4: '4',
	Num5: '5', Num6: '6', Num7: '7', Num8: '8', Num9: '9',
	Semicolon: ';', Equals: '=',
	Return:    0x0D,
	Left:      0x08,
	Backspace: 0x08,
	Right:     0x15,
	Escape:    0x1B,
}

var shiftMap = map[Code]byte{
	Num1: '!', Num2: '@', Num3: '#', Num4: '$', Num5: '%',
	Num6: '^', Num7: '&', Num8: '*', Num9: '(', Num0: ')',
	Equals: '+', Semicolon: ':', Quote: '"', Comma: '<', Period: '>', Slash: '?',
}

var ctrlMap = map[Code]byte{
	A: 0x81, B: 0x82, C: 0x83, D: 0x84, E: 0x85, F: 0x86, G: 0x87, H: 0x88,
	I: 0x89, J: 0x8A, K: 0x8B, L: 0x8C, M: 0x8D, N: 0x8E, O: 0x8F, P: 0x90,
	Q: 0x91, R: 0x92, S: 0x93, T: 0x94, U: 0x95, V: 0x96, W: 0x97, X: 0x98,
	Y: 0x99, Z: 0x9A,
}

var ctrlShiftMap = map[Code]byte{
	M: 0x9D, N: 0x9E, P: 0x80,
}

// Map translates a key code and modifier state into the 7-bit ASCII value
// (with bit 7 set, marking "key available") the keyboard latch expects.
// The second return value is false for keys with no Apple II mapping.
func Map(code Code, mods Mods) (byte, bool) {
	ch, ok := plainMap[code]
	if !ok {
		return 0, false
	}

	if mods.Shift {
		if sh, ok := shiftMap[code]; ok {
			ch = sh
		}
	}
	if mods.Ctrl {
		if cc, ok := ctrlMap[code]; ok {
			ch = cc
		}
		if mods.Shift {
			if cs, ok := ctrlShiftMap[code]; ok {
				ch = cs
			}
		}
	}

	return ch | 0x80, true
}
