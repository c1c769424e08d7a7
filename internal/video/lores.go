package video

// drawLoResRow renders one lo-res text row: each byte is two stacked 7x4
// (7 wide, 4 tall) color cells, low nibble on top, high nibble on bottom.
func drawLoResRow(bus Bus, sink PixelSink, base uint16, y int) {
	rowBase := base + uint16(textRowMap[y])

	for x := 0; x < TextWidth; x++ {
		colors := bus.Read(rowBase + uint16(x))
		top := loResColorMap[colors&0x0F]
		bottom := loResColorMap[colors>>4]

		sink.FillRect(x*GlyphW, y*GlyphH, GlyphW, 4, top)
		sink.FillRect(x*GlyphW, y*GlyphH+4, GlyphW, 4, bottom)
	}
}
