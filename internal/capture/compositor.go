package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/caffeinepub/my-goals-2026/internal/models"
)

// Compositor turns a raw capture into the framed celebration photo. A
// failing compositor degrades the flow to the raw capture, it never aborts.
type Compositor interface {
	Compose(raw []byte, month models.Month) ([]byte, error)
}

// monthAccents colors the frame ribbon per month, calendar order.
var monthAccents = [12]color.RGBA{
	{96, 165, 250, 255},  // january
	{244, 114, 182, 255}, // february
	{52, 211, 153, 255},  // march
	{251, 191, 36, 255},  // april
	{167, 139, 250, 255}, // may
	{45, 212, 191, 255},  // june
	{248, 113, 113, 255}, // july
	{251, 146, 60, 255},  // august
	{163, 230, 53, 255},  // september
	{232, 121, 249, 255}, // october
	{148, 163, 184, 255}, // november
	{56, 189, 248, 255},  // december
}

// PolaroidCompositor draws the capture onto a white polaroid-style card
// with a wider bottom margin and a month-colored ribbon.
type PolaroidCompositor struct{}

func (PolaroidCompositor) Compose(raw []byte, month models.Month) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	photo := src.Bounds()
	border := photo.Dx() / 20
	if border < 16 {
		border = 16
	}
	footer := photo.Dy()/5 + border

	card := image.NewRGBA(image.Rect(0, 0, photo.Dx()+2*border, photo.Dy()+border+footer))
	draw.Draw(card, card.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(card, image.Rect(border, border, border+photo.Dx(), border+photo.Dy()), src, photo.Min, draw.Src)

	accent := monthAccents[0]
	if i := month.Index(); i >= 0 {
		accent = monthAccents[i]
	}
	ribbonTop := border + photo.Dy() + footer/2 - border/4
	ribbon := image.Rect(border, ribbonTop, border+photo.Dx(), ribbonTop+border/2)
	draw.Draw(card, ribbon, image.NewUniform(accent), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, card); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
