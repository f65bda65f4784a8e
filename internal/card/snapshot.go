package card

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Snapshot dimensions, in pixels.
const (
	SnapshotWidth  = 420
	SnapshotHeight = 600

	margin     = 20
	headerH    = 90
	lineHeight = 16
)

var (
	cardBackground = color.RGBA{R: 0xFA, G: 0xF7, B: 0xF0, A: 0xFF}
	cardHeader     = color.RGBA{R: 0xEC, G: 0x1D, B: 0x24, A: 0xFF}
	cardText       = color.RGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xFF}
	cardMuted      = color.RGBA{R: 0x76, G: 0x76, B: 0x76, A: 0xFF}
)

// Snapshot rasterizes l into an image suitable for upload.
func Snapshot(l Layout) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, SnapshotWidth, SnapshotHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, SnapshotWidth, headerH), image.NewUniform(cardHeader), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	cols := (SnapshotWidth - 2*margin) / face.Advance

	y := margin + lineHeight
	for _, line := range wrapText(strings.ToUpper(l.Title), cols, 4) {
		drawText(img, face, color.White, margin, y, line)
		y += lineHeight
	}

	y = headerH + margin + lineHeight
	drawText(img, face, cardMuted, margin, y, l.Date)
	y += 2 * lineHeight

	bottom := SnapshotHeight - margin - 4*lineHeight
	maxDesc := (bottom - y) / lineHeight
	for _, line := range wrapText(l.Description, cols, maxDesc) {
		drawText(img, face, cardText, margin, y, line)
		y += lineHeight
	}

	y = bottom + lineHeight
	drawText(img, face, cardMuted, margin, y, "CHARACTERS")
	y += lineHeight
	for _, line := range wrapText(strings.ReplaceAll(l.Characters, ",", ", "), cols, 2) {
		drawText(img, face, cardText, margin, y, line)
		y += lineHeight
	}
	return img
}

func drawText(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// wrapText breaks s into at most maxLines lines of at most cols runes,
// splitting on spaces where possible. A truncated final line ends in "...".
func wrapText(s string, cols, maxLines int) []string {
	if cols <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	flush := func() {
		lines = append(lines, string(cur))
		cur = cur[:0]
	}
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > cols {
			if len(cur) > 0 {
				flush()
			}
			lines = append(lines, string(w[:cols]))
			w = w[cols:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= cols:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			flush()
			cur = append(cur, w...)
		}
	}
	if len(cur) > 0 {
		flush()
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if n := max(cols-3, 0); len(last) > n {
			last = last[:n]
		}
		lines[maxLines-1] = string(last) + "..."
	}
	return lines
}
