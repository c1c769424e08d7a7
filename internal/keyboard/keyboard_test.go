package keyboard

import "testing"

func TestPlainLetterSetsBit7(t *testing.T) {
	ch, ok := Map(A, Mods{})
	if !ok {
		t.Fatalf("A should map to a key")
	}
	if ch != ('A' | 0x80) {
		t.Fatalf("Map(A) = %#x, want %#x", ch, 'A'|0x80)
	}
}

func TestShiftDigitProducesSymbol(t *testing.T) {
	ch, ok := Map(Num1, Mods{Shift: true})
	if !ok || ch != ('!'|0x80) {
		t.Fatalf("Map(Num1, shift) = %#x, ok=%v, want %#x", ch, ok, '!'|0x80)
	}
}

func TestCtrlLetterProducesControlCode(t *testing.T) {
	ch, ok := Map(A, Mods{Ctrl: true})
	if !ok || ch != (0x81|0x80) {
		t.Fatalf("Map(A, ctrl) = %#x, ok=%v, want %#x", ch, ok, 0x81|0x80)
	}
}

func TestCtrlShiftOverridesCtrlOnly(t *testing.T) {
	ch, ok := Map(M, Mods{Ctrl: true, Shift: true})
	if !ok || ch != (0x9D|0x80) {
		t.Fatalf("Map(M, ctrl+shift) = %#x, ok=%v, want %#x", ch, ok, 0x9D|0x80)
	}
}

func TestUnmappedKeyReturnsFalse(t *testing.T) {
	if _, ok := Map(F2, Mods{}); ok {
		t.Fatalf("F2 has no Apple II key mapping; it is reset, handled separately")
	}
}

func TestReturnKeyMapsToCR(t *testing.T) {
	ch, ok := Map(Return, Mods{})
	if !ok || ch != (0x0D|0x80) {
		t.Fatalf("Map(Return) = %#x, ok=%v, want %#x", ch, ok, 0x0D|0x80)
	}
}
