package bus

import "testing"

type stubCard struct {
	switchReads  map[uint8]uint8
	romByte      uint8
	isLang       bool
	langROM      map[uint16]uint8
	lastSwWrite  [2]uint8
	lastRomWrite [2]uint16 // addr, val widened
}

func (s *stubCard) ReadSwitch(sw uint8) uint8 {
	if s.switchReads == nil {
		return 0
	}
	return s.switchReads[sw]
}
func (s *stubCard) WriteSwitch(sw uint8, val uint8) { s.lastSwWrite = [2]uint8{sw, val} }
func (s *stubCard) ReadROM(addr uint16) uint8       { return s.romByte }
func (s *stubCard) IsLanguageCard() bool            { return s.isLang }
func (s *stubCard) ReadLanguageROM(addr uint16) uint8 {
	if s.langROM == nil {
		return 0
	}
	return s.langROM[addr]
}
func (s *stubCard) WriteLanguageROM(addr uint16, val uint8) {
	if s.langROM == nil {
		s.langROM = make(map[uint16]uint8)
	}
	s.langROM[addr] = val
}

func TestRAMReadWrite(t *testing.T) {
	m := New([romSize]byte{})
	m.Write(0x1234, 0x42)
	if got := m.Read(0x1234); got != 0x42 {
		t.Fatalf("Read(0x1234) = %#x, want 0x42", got)
	}
}

func TestROMFallsThroughWithoutLanguageCard(t *testing.T) {
	var rom [romSize]byte
	rom[0x0100] = 0x77 // $D100 - $D000
	m := New(rom)

	if got := m.Read(0xD100); got != 0x77 {
		t.Fatalf("Read(0xD100) = %#x, want 0x77", got)
	}
	m.Write(0xD100, 0x99) // should be a no-op, no language card
	if got := m.Read(0xD100); got != 0x77 {
		t.Fatalf("ROM write without language card should be discarded, got %#x", got)
	}
}

func TestKeyboardLatchClearsOnRead(t *testing.T) {
	m := New([romSize]byte{})
	m.SetKey(0xC1) // 'A' with bit 7 set

	if got := m.Read(0xC000); got != 0xC1 {
		t.Fatalf("Read(0xC000) = %#x, want 0xC1", got)
	}
	m.Read(0xC010)
	if got := m.Read(0xC000); got != 0x41 {
		t.Fatalf("Read(0xC000) after $C010 = %#x, want 0x41 (bit 7 cleared)", got)
	}
}

func TestScreenModeFlagsDefaults(t *testing.T) {
	m := New([romSize]byte{})
	s := m.Screen()
	if s.Graphics || !s.All || !s.Primary || !s.LowRes {
		t.Fatalf("unexpected default screen state: %+v", s)
	}
}

func TestScreenModeSwitchesLatch(t *testing.T) {
	m := New([romSize]byte{})
	m.Read(0xC050)
	m.Read(0xC053)
	m.Read(0xC055)
	m.Read(0xC057)

	s := m.Screen()
	if !s.Graphics {
		t.Fatalf("graphics should be set after $C050")
	}
	if s.All {
		t.Fatalf("all should be cleared after $C053")
	}
	if s.Primary {
		t.Fatalf("primary should be cleared after $C055")
	}
	if s.LowRes {
		t.Fatalf("low_res should be cleared after $C057")
	}
}

func TestEmptySlotSoftSwitchReadsFF(t *testing.T) {
	m := New([romSize]byte{})
	if got := m.Read(0xC0E0); got != 0xFF {
		t.Fatalf("Read(0xC0E0) with empty slot 6 = %#x, want 0xFF", got)
	}
}

func TestEmptySlotROMReadsFF(t *testing.T) {
	m := New([romSize]byte{})
	if got := m.Read(0xC600); got != 0xFF {
		t.Fatalf("Read(0xC600) with empty slot 6 ROM = %#x, want 0xFF", got)
	}
}

func TestCardSoftSwitchDecodesSlotAndOffset(t *testing.T) {
	m := New([romSize]byte{})
	card := &stubCard{switchReads: map[uint8]uint8{0xC: 0x55}}
	m.InsertCard(6, card)

	// slot 6: $C0E0-$C0EF. $C0EC & $F = $C.
	if got := m.Read(0xC0EC); got != 0x55 {
		t.Fatalf("Read(0xC0EC) = %#x, want 0x55", got)
	}
	m.Write(0xC0E3, 0x11)
	if card.lastSwWrite != [2]uint8{0x3, 0x11} {
		t.Fatalf("WriteSwitch not routed correctly: got %v", card.lastSwWrite)
	}
}

func TestCardROMDecodesSlot(t *testing.T) {
	m := New([romSize]byte{})
	card := &stubCard{romByte: 0xAB}
	m.InsertCard(6, card)

	if got := m.Read(0xC600); got != 0xAB {
		t.Fatalf("Read(0xC600) = %#x, want 0xAB", got)
	}
	if got := m.Read(0xC6FF); got != 0xAB {
		t.Fatalf("Read(0xC6FF) = %#x, want 0xAB", got)
	}
}

func TestLanguageCardOverlayDelegation(t *testing.T) {
	m := New([romSize]byte{})
	card := &stubCard{isLang: true}
	m.InsertCard(0, card)

	m.Write(0xD000, 0x66)
	if got := m.Read(0xD000); got != 0x66 {
		t.Fatalf("language card overlay read = %#x, want 0x66", got)
	}
}

func TestRemoveCardClearsLanguageCardFlag(t *testing.T) {
	m := New([romSize]byte{0xEE})
	card := &stubCard{isLang: true, langROM: map[uint16]uint8{0xD000: 0x66}}
	m.InsertCard(0, card)
	m.RemoveCard(0)

	if got := m.Read(0xD000); got != 0xEE {
		t.Fatalf("after RemoveCard, Read(0xD000) = %#x, want system ROM byte 0xEE", got)
	}
}

func TestUndefinedIOAddressReturnsZero(t *testing.T) {
	m := New([romSize]byte{})
	if got := m.Read(0xC060); got != 0x00 {
		t.Fatalf("Read(0xC060) = %#x, want 0x00", got)
	}
}
