// Package bus implements the Bus Mapper: the Apple II's central address
// decoder. It owns the 48 KiB main RAM, the 12 KiB system ROM image, the
// keyboard latch, the four screen-mode flags, and the eight-slot
// peripheral.Card table, and implements the narrow cpu6502.Memory
// interface the CPU engine consumes.
//
// Grounded on original_source/mapper.rs.
package bus

import "github.com/mwhittaker/apple2emu/internal/peripheral"

const (
	ramSize = 0xC000
	romSize = 0x3000
	numSlots = 8

	langCardSlot = 0
)

// Screen holds the four screen-mode flags a bus access to $C050-$C057
// latches, read once per frame by the video scan-out.
type Screen struct {
	Graphics bool
	All      bool
	Primary  bool
	LowRes   bool
}

// Mapper is the Bus Mapper described in section 4.1: it decodes every CPU
// address into RAM, ROM, a soft-switch, a card's ROM window, a card's
// soft-switch window, or the slot-0 language-card overlay.
type Mapper struct {
	ram [ramSize]byte
	rom [romSize]byte

	key    byte
	screen Screen

	cards       [numSlots]peripheral.Card
	hasLangCard bool
}

// New returns a Mapper with zeroed RAM, the given 12 KiB system ROM image
// mapped to $D000-$FFFF, no cards installed, and the screen-mode flags at
// their power-on defaults (text mode, full screen, page 1).
func New(rom [romSize]byte) *Mapper {
	return &Mapper{
		rom: rom,
		screen: Screen{
			Graphics: false,
			All:      true,
			Primary:  true,
			LowRes:   true,
		},
	}
}

// SetKey latches a key press from an external key source; bit 7 marks
// "key pressed" and is cleared by a read or write of $C010.
func (m *Mapper) SetKey(key byte) {
	m.key = key
}

// Screen returns the current screen-mode flags for the video scan-out to
// read once per frame.
func (m *Mapper) Screen() Screen {
	return m.screen
}

// ScreenMode implements video.Bus's screen-mode accessor without that
// package needing to import the bus package's Screen type.
func (m *Mapper) ScreenMode() (graphics, all, primary, lowRes bool) {
	return m.screen.Graphics, m.screen.All, m.screen.Primary, m.screen.LowRes
}

// InsertCard installs a card in the given slot (0..7). Slot 0 is checked
// for the language-card capability so $D000-$FFFF reads and writes know
// whether to delegate to it.
func (m *Mapper) InsertCard(slot int, card peripheral.Card) {
	if slot == langCardSlot {
		m.hasLangCard = card.IsLanguageCard()
	}
	m.cards[slot] = card
}

// RemoveCard clears a slot.
func (m *Mapper) RemoveCard(slot int) {
	if slot == langCardSlot {
		m.hasLangCard = false
	}
	m.cards[slot] = nil
}

// Read implements the CPU-facing read half of the decoding table in
// section 4.1.
func (m *Mapper) Read(addr uint16) uint8 {
	switch {
	case addr <= 0xBFFF:
		return m.ram[addr]
	case addr == 0xC000:
		return m.key
	case addr == 0xC010:
		m.key &^= 0x80
		return 0x00
	case addr == 0xC050:
		m.screen.Graphics = true
		return 0x00
	case addr == 0xC051:
		m.screen.Graphics = false
		return 0x00
	case addr == 0xC052:
		m.screen.All = true
		return 0x00
	case addr == 0xC053:
		m.screen.All = false
		return 0x00
	case addr == 0xC054:
		m.screen.Primary = true
		return 0x00
	case addr == 0xC055:
		m.screen.Primary = false
		return 0x00
	case addr == 0xC056:
		m.screen.LowRes = true
		return 0x00
	case addr == 0xC057:
		m.screen.LowRes = false
		return 0x00
	case addr >= 0xC080 && addr <= 0xC0FF:
		slot := int(((addr-0xC000)>>4)&0xF) - 8
		card := m.cards[slot]
		if card == nil {
			return 0xFF
		}
		return card.ReadSwitch(uint8(addr & 0xF))
	case addr >= 0xC100 && addr <= 0xC7FF:
		slot := int((addr - 0xC000) >> 8)
		card := m.cards[slot]
		if card == nil {
			return 0xFF
		}
		return card.ReadROM(addr)
	case addr >= 0xD000:
		if m.hasLangCard {
			return m.cards[langCardSlot].ReadLanguageROM(addr)
		}
		return m.rom[addr-0xD000]
	default:
		return 0x00
	}
}

// Write implements the CPU-facing write half of the decoding table in
// section 4.1.
func (m *Mapper) Write(addr uint16, val uint8) {
	switch {
	case addr <= 0xBFFF:
		m.ram[addr] = val
	case addr == 0xC010:
		m.key &^= 0x80
	case addr == 0xC050:
		m.screen.Graphics = true
	case addr == 0xC051:
		m.screen.Graphics = false
	case addr == 0xC052:
		m.screen.All = true
	case addr == 0xC053:
		m.screen.All = false
	case addr == 0xC054:
		m.screen.Primary = true
	case addr == 0xC055:
		m.screen.Primary = false
	case addr == 0xC056:
		m.screen.LowRes = true
	case addr == 0xC057:
		m.screen.LowRes = false
	case addr >= 0xC080 && addr <= 0xC0FF:
		slot := int(((addr-0xC000)>>4)&0xF) - 8
		if card := m.cards[slot]; card != nil {
			card.WriteSwitch(uint8(addr&0xF), val)
		}
	case addr >= 0xD000:
		if m.hasLangCard {
			m.cards[langCardSlot].WriteLanguageROM(addr, val)
		}
	}
}
