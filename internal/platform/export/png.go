// Package export renders screen buffers to PNG images, for screenshots
// taken from the terminal UI.
package export

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/trio-arcade/trio/internal/core"
)

// Pixel size of one screen cell, matching the basicfont glyph box.
const (
	cellPxW = 7
	cellPxH = 13
)

// palette maps screen colors to the xterm default RGB values.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorRed:          {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	core.ColorGreen:        {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorYellow:       {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	core.ColorBlue:         {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	core.ColorMagenta:      {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	core.ColorCyan:         {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	core.ColorWhite:        {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorGray:         {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorBrightRed:    {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	core.ColorBrightGreen:  {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBrightBlue:   {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	core.ColorBrightWhite:  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Image renders the screen to an image on a dark background, one glyph
// per cell.
func Image(s *core.Screen) image.Image {
	dc := gg.NewContext(s.Width()*cellPxW, s.Height()*cellPxH)
	dc.SetRGB(0.07, 0.07, 0.07)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			rgba, ok := palette[cell.Color]
			if !ok {
				rgba = palette[core.ColorDefault]
			}
			dc.SetColor(rgba)
			dc.DrawStringAnchored(string(cell.Rune),
				float64(x*cellPxW)+float64(cellPxW)/2,
				float64(y*cellPxH)+float64(cellPxH)/2,
				0.5, 0.5)
		}
	}
	return dc.Image()
}

// Thumbnail returns a copy scaled to the given width, keeping the
// aspect ratio.
func Thumbnail(img image.Image, width int) image.Image {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// WritePNG writes the image to path. The format follows the file
// extension, so path should end in .png.
func WritePNG(img image.Image, path string) error {
	return imaging.Save(img, path)
}
