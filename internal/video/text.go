package video

// drawTextRow renders one 40-character text row. Character type (the top
// two bits of the byte) selects inverse, blinking, or normal display;
// blink state is driven by the CPU cycle counter, not the host frame
// count, so it stays correct regardless of display frame rate.
func drawTextRow(bus Bus, sink PixelSink, base uint16, y int, cycles uint64) {
	rowBase := base + uint16(textRowMap[y])

	for x := 0; x < TextWidth; x++ {
		ch := bus.Read(rowBase + uint16(x))
		switch ch >> 6 {
		case 0:
			ch |= 0x40
		case 1:
			if cycles%1000000 < 500000 {
				ch |= 0x40
			} else {
				ch &= 0x3F
			}
		default:
			ch &= 0x3F
		}

		row := ch & 0x07
		col := (ch & 0x78) >> 3
		sink.BlitGlyph(int(col), int(row), x*GlyphW, y*GlyphH)
	}
}
