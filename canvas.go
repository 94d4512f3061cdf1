package main

import (
	"fmt"

	"github.com/joshvictor1024/sdl-mandelbrot/pkg/fractal"
	"github.com/veandco/go-sdl2/sdl"
)

// canvasLayout matches PIXELFORMAT_RGBA8888 on little-endian hosts.
var canvasLayout = fractal.LayoutRGBA8888

type canvas struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	w        int
	h        int
}

func newCanvas(r *sdl.Renderer, w, h int) (*canvas, error) {
	t, err := r.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		int32(w),
		int32(h),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create canvas texture: %w", err)
	}
	return &canvas{renderer: r, texture: t, w: w, h: h}, nil
}

func (c *canvas) close() {
	c.texture.Destroy()
}

// draw copies a frame into the texture and presents it. The frame is not
// kept afterwards.
func (c *canvas) draw(buf *fractal.PixelBuffer) error {
	if buf.Width != c.w || buf.Height != c.h {
		return fmt.Errorf("frame is %dx%d, canvas is %dx%d", buf.Width, buf.Height, c.w, c.h)
	}
	data, pitch, err := c.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("unable to load texture: %w", err)
	}
	for y := 0; y < buf.Height; y += 1 {
		copy(data[y*pitch:y*pitch+buf.Stride], buf.Pix[y*buf.Stride:(y+1)*buf.Stride])
	}
	c.texture.Unlock()

	if err := c.renderer.Copy(c.texture, nil, nil); err != nil {
		return fmt.Errorf("unable to render texture: %w", err)
	}
	c.renderer.Present()
	return nil
}
