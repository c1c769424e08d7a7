package video

// drawHiResRow renders one 280-dot hi-res scan line. Each of the row's 40
// bytes carries 7 data bits (LSB first) and a palette-select bit (bit 7).
// Color is decided by a 3-bit sliding window (prev, curr, next) of
// consecutive data bits that runs continuously across the whole row, not
// reset at byte boundaries — an isolated bit shows its palette color,
// a bit neighboring another set bit shows white, and two set bits
// straddling a clear one bleed together.
func drawHiResRow(bus Bus, sink PixelSink, base uint16, y int) {
	rowBase := base + uint16(hiresRowOffset(y))

	var prev, curr byte
	// Preloading next with the row's first data bit (rather than leaving
	// it zero) means the very first dot is drawn from real data instead
	// of being swallowed by the window's start-up state.
	next := bus.Read(rowBase) & 0x01

	x := 0
	for byteIdx := 0; byteIdx < ScreenW/GlyphW; byteIdx++ {
		data := bus.Read(rowBase + uint16(byteIdx))
		colorset := data & 0x80

		for bit := uint(0); bit < 7; bit++ {
			prev = curr
			curr = next
			next = data & (1 << bit)

			var c RGB
			switch {
			case curr != 0:
				switch {
				case prev != 0 || next != 0:
					c = colorWhite
				case colorset != 0:
					if x&1 != 0 {
						c = colorBlue
					} else {
						c = colorRed
					}
				default:
					if x&1 != 0 {
						c = colorViolet
					} else {
						c = colorGreen
					}
				}
			case prev != 0 && next != 0:
				if colorset != 0 {
					if x&1 != 0 {
						c = colorRed
					} else {
						c = colorBlue
					}
				} else {
					if x&1 != 0 {
						c = colorGreen
					} else {
						c = colorViolet
					}
				}
			default:
				c = colorBlack
			}

			sink.SetPixel(x, y, c)
			x++
		}
	}
}
