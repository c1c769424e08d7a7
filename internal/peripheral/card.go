// Package peripheral defines the capability every expansion-slot occupant
// implements: soft-switch reads/writes in a card's $C0s0-$C0sF window, card
// ROM reads in $Cs00-$CsFF, and (language card only) the $D000-$FFFF
// overlay. The set is intentionally flat — a plain interface plus an
// embeddable default, not a type hierarchy.
package peripheral

// Card is the capability a Bus slot occupant exposes. Most cards never see
// the language-card overlay methods; BaseCard supplies harmless defaults
// for those so concrete cards only implement what they actually use.
type Card interface {
	// ReadSwitch handles a read of the card's soft-switch window,
	// $C0s0-$C0sF, where switch is the low nibble of the address.
	ReadSwitch(swtch uint8) uint8
	// WriteSwitch handles a write to the same window. Most cards perform
	// the identical state transition and discard the value.
	WriteSwitch(swtch uint8, val uint8)
	// ReadROM handles a read anywhere in the card's $Cs00-$CsFF window.
	ReadROM(addr uint16) uint8
	// IsLanguageCard reports whether this card intercepts $D000-$FFFF.
	// At most one card, and only in slot 0, may answer true.
	IsLanguageCard() bool
	// ReadLanguageROM and WriteLanguageROM are only ever called on the
	// slot-0 card when IsLanguageCard reports true.
	ReadLanguageROM(addr uint16) uint8
	WriteLanguageROM(addr uint16, val uint8)
}

// BaseCard supplies no-op defaults for the language-card overlay methods.
// Embed it in a concrete card type that isn't a language card so that type
// only needs to implement ReadSwitch/WriteSwitch/ReadROM.
type BaseCard struct{}

func (BaseCard) IsLanguageCard() bool                    { return false }
func (BaseCard) ReadLanguageROM(addr uint16) uint8       { return 0 }
func (BaseCard) WriteLanguageROM(addr uint16, val uint8) {}
