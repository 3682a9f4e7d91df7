package imageio

import (
	"image"

	"github.com/fogleman/gg"
)

const captionPadding = 4

// Caption draws text on a dark strip along the bottom edge of img, in place.
// Text wider than the image is drawn anyway and clipped.
func Caption(img *image.RGBA, text string) *image.RGBA {
	if text == "" {
		return img
	}

	dc := gg.NewContextForRGBA(img)
	w := float64(dc.Width())
	h := float64(dc.Height())

	_, textHeight := dc.MeasureString(text)
	barHeight := textHeight + 2*captionPadding

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, h-barHeight, w, barHeight)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, captionPadding, h-barHeight/2, 0, 0.5)
	return img
}
