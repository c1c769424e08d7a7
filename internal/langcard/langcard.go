// Package langcard implements the Language Card: a peripheral.Card that
// shadows the system ROM at $D000-$FFFF with one of two 4 KiB low banks
// plus one shared 8 KiB high bank of RAM, driven by the soft-switch state
// machine described in spec.md section 4.2.
//
// Grounded on original_source/peripheral_card/language_card.rs.
package langcard

import "github.com/mwhittaker/apple2emu/internal/peripheral"

const (
	writeSwitch = 0x01
	readSwitch  = 0x02
	bankSwitch  = 0x08

	highBankSize = 0x2000
	lowBankSize  = 0x1000
	romSize      = 0x3000
)

// Card is the Language Card. The zero value is not usable; use New.
type Card struct {
	peripheral.BaseCard

	rom      [romSize]byte
	highBank [highBankSize]byte
	lowBank  [2][lowBankSize]byte

	lastWrite bool
	write     bool
	read      bool
	bank      int
}

// New returns a Language Card that falls back to rom (a copy of the
// system's $D000-$FFFF image) whenever the card's RAM overlay is disabled.
func New(rom [romSize]byte) *Card {
	return &Card{rom: rom}
}

// ReadSwitch implements the two-read latch described in spec.md section
// 4.2: bit 0 selects write-enable, bit 1 equal to that write bit marks a
// read-enable candidate access, and a read-enable flag is only promoted
// to true after two consecutive qualifying accesses. Preserve this
// exactly — software detection loops on real hardware depend on it.
func (c *Card) ReadSwitch(swtch uint8) uint8 {
	c.write = swtch&writeSwitch != 0

	if (swtch&readSwitch != 0) == c.write {
		if c.lastWrite {
			c.read = true
		}
		c.lastWrite = true
	} else {
		c.read = false
		c.lastWrite = false
	}

	if swtch&bankSwitch != 0 {
		c.bank = 0
	} else {
		c.bank = 1
	}

	return 0
}

// WriteSwitch performs the identical state transition as ReadSwitch; the
// soft-switch is sensitive to the address being touched, not to whether
// that touch was a CPU read or write.
func (c *Card) WriteSwitch(swtch uint8, _ uint8) {
	c.ReadSwitch(swtch)
}

// ReadROM is never called on the language card: it occupies slot 0, whose
// $Cs00-$CsFF window no program addresses because the card has no
// dedicated card ROM of its own.
func (c *Card) ReadROM(_ uint16) uint8 {
	return 0xFF
}

func (c *Card) IsLanguageCard() bool { return true }

// ReadLanguageROM serves $D000-$FFFF: RAM banks when the read-enable
// latch is set, otherwise the shadowed system ROM.
func (c *Card) ReadLanguageROM(addr uint16) uint8 {
	if !c.read {
		return c.rom[addr-0xD000]
	}
	if addr >= 0xE000 {
		return c.highBank[addr-0xE000]
	}
	return c.lowBank[c.bank][addr-0xD000]
}

// WriteLanguageROM writes to the RAM overlay only when the write-enable
// flag is set; otherwise the write is silently discarded (the system ROM
// is immutable).
func (c *Card) WriteLanguageROM(addr uint16, val uint8) {
	if !c.write {
		return
	}
	if addr >= 0xE000 {
		c.highBank[addr-0xE000] = val
	} else {
		c.lowBank[c.bank][addr-0xD000] = val
	}
}
