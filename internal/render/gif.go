package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/wavelab/internal/wave"
)

// MovieOptions controls GIF rendering. Zero values fall back to 10 fps
// and 4x pixel scaling.
type MovieOptions struct {
	FPS        int
	PixelScale int
}

// divergingPalette blends blue through white to red over 256 entries,
// centering zero displacement on white.
func divergingPalette() color.Palette {
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	pal := make(color.Palette, 256)
	for i := range pal {
		t := float64(i) / 255
		var r, g, b uint8
		if t < 0.5 {
			u := t * 2
			r, g, b = lerp(40, 255, u), lerp(60, 255, u), lerp(190, 255, u)
		} else {
			u := (t - 0.5) * 2
			r, g, b = lerp(255, 190, u), lerp(255, 40, u), lerp(255, 50, u)
		}
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return pal
}

// EncodeGIF renders every recorded snapshot as one animation frame at a
// fixed playback rate, with the color scale shared across frames and the
// grid origin at the lower-left corner.
func EncodeGIF(w io.Writer, coll *wave.Collection, opts MovieOptions) error {
	if coll.Len() == 0 {
		return fmt.Errorf("render: empty snapshot collection")
	}
	if opts.FPS <= 0 {
		opts.FPS = 10
	}
	if opts.PixelScale <= 0 {
		opts.PixelScale = 4
	}

	sc := SharedScale(coll)
	pal := divergingPalette()
	delay := 100 / opts.FPS // GIF delay unit is 1/100 s
	if delay < 1 {
		delay = 1
	}

	steps := coll.Steps()
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(steps)),
		Delay: make([]int, 0, len(steps)),
	}
	for _, step := range steps {
		f, _ := coll.At(step)
		anim.Image = append(anim.Image, frameImage(f, sc, pal, opts.PixelScale))
		anim.Delay = append(anim.Delay, delay)
	}

	return gif.EncodeAll(w, anim)
}

// frameImage rasterizes one field with x running right and y running up,
// so the grid origin lands at the lower-left corner.
func frameImage(f *wave.Field, sc Scale, pal color.Palette, scale int) *image.Paletted {
	pts := f.Points()
	side := pts * scale
	img := image.NewPaletted(image.Rect(0, 0, side, side), pal)
	for py := 0; py < side; py++ {
		j := pts - 1 - py/scale
		for px := 0; px < side; px++ {
			i := px / scale
			idx := uint8(sc.Normalize(f.At(i, j)) * 255)
			img.SetColorIndex(px, py, idx)
		}
	}
	return img
}
