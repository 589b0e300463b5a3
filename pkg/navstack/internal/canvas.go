package internal

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// FontSizes are point sizes for each render.FontSize.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

var DefaultFontSizes = FontSizes{
	Small:  14,
	Medium: 17,
	Large:  24,
}

// Fallback fonts tried when the theme has no font path.
var fallbackFonts = []string{
	"/mnt/SDCARD/System/fonts/Cannoli.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// Canvas is the SDL renderer-backed render.Canvas.
type Canvas struct {
	renderer *sdl.Renderer
	fonts    map[render.FontSize]*ttf.Font
	text     *TextureCache
	images   *TextureCache
	clips    []render.Rect
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas opens the theme font at every size.
func NewCanvas(renderer *sdl.Renderer, fontPath string, sizes FontSizes) (*Canvas, error) {
	c := &Canvas{
		renderer: renderer,
		fonts:    make(map[render.FontSize]*ttf.Font, 3),
		text:     NewTextureCache(),
		images:   NewTextureCacheWithSize(8),
	}

	candidates := fallbackFonts
	if fontPath != "" {
		candidates = append([]string{fontPath}, fallbackFonts...)
	}

	var lastErr error
	for _, path := range candidates {
		lastErr = c.openFonts(path, sizes)
		if lastErr == nil {
			GetInternalLogger().Debug("Fonts loaded", "path", path)
			return c, nil
		}
	}
	return nil, NewInfrastructureError("open_font", lastErr)
}

func (c *Canvas) openFonts(path string, sizes FontSizes) error {
	for size, pt := range map[render.FontSize]int{
		render.FontSmall:  sizes.Small,
		render.FontMedium: sizes.Medium,
		render.FontLarge:  sizes.Large,
	} {
		font, err := ttf.OpenFont(path, pt)
		if err != nil {
			c.closeFonts()
			return fmt.Errorf("%s at %dpt: %w", path, pt, err)
		}
		c.fonts[size] = font
	}
	return nil
}

func (c *Canvas) closeFonts() {
	for k, f := range c.fonts {
		f.Close()
		delete(c.fonts, k)
	}
}

func (c *Canvas) font(size render.FontSize) *ttf.Font {
	if f, ok := c.fonts[size]; ok {
		return f
	}
	return c.fonts[render.FontMedium]
}

// Clear fills the whole target with col and resets the clip stack.
func (c *Canvas) Clear(col color.RGBA) {
	c.clips = c.clips[:0]
	c.renderer.SetClipRect(nil)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.Clear()
}

func (c *Canvas) FillRect(r render.Rect, col color.RGBA) {
	c.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	rect := toSDLRect(r)
	c.renderer.FillRect(&rect)
}

func (c *Canvas) DrawText(text string, x, y float64, size render.FontSize, col color.RGBA) {
	if text == "" {
		return
	}
	key := fmt.Sprintf("%d|%02x%02x%02x%02x|%s", size, col.R, col.G, col.B, col.A, text)
	tex, w, h := c.text.Get(key)
	if tex == nil {
		surface, err := c.font(size).RenderUTF8Blended(text, toSDLColor(col))
		if err != nil {
			GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
			return
		}
		tex, err = c.renderer.CreateTextureFromSurface(surface)
		w, h = surface.W, surface.H
		surface.Free()
		if err != nil {
			GetInternalLogger().Error("Failed to create text texture", "error", err)
			return
		}
		c.text.Set(key, tex, w, h)
	}
	dst := sdl.Rect{X: int32(math.Round(x)), Y: int32(math.Round(y)), W: w, H: h}
	c.renderer.Copy(tex, nil, &dst)
}

func (c *Canvas) MeasureText(text string, size render.FontSize) (float64, float64) {
	font := c.font(size)
	if text == "" {
		return 0, float64(font.Height())
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, float64(font.Height())
	}
	return float64(w), float64(h)
}

// DrawImage uploads img once per key and size, then draws it tinted with a
// color mod. Images are expected to be white where they should take the tint.
func (c *Canvas) DrawImage(key string, img image.Image, r render.Rect, tint color.RGBA) {
	b := img.Bounds()
	cacheKey := fmt.Sprintf("%s@%dx%d", key, b.Dx(), b.Dy())
	tex, _, _ := c.images.Get(cacheKey)
	if tex == nil {
		var err error
		tex, err = c.uploadImage(img)
		if err != nil {
			GetInternalLogger().Error("Failed to upload image", "key", key, "error", err)
			return
		}
		c.images.Set(cacheKey, tex, int32(b.Dx()), int32(b.Dy()))
	}
	tex.SetColorMod(tint.R, tint.G, tint.B)
	tex.SetAlphaMod(tint.A)
	dst := toSDLRect(r)
	c.renderer.Copy(tex, nil, &dst)
}

func (c *Canvas) uploadImage(img image.Image) (*sdl.Texture, error) {
	b := img.Bounds()
	// SDL blends straight alpha
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, err
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+rowBytes])
	}
	surface.Unlock()

	tex, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

func (c *Canvas) PushClip(r render.Rect) {
	if n := len(c.clips); n > 0 {
		r = intersect(c.clips[n-1], r)
	}
	c.clips = append(c.clips, r)
	rect := toSDLRect(r)
	c.renderer.SetClipRect(&rect)
}

func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	if n := len(c.clips); n > 0 {
		rect := toSDLRect(c.clips[n-1])
		c.renderer.SetClipRect(&rect)
		return
	}
	c.renderer.SetClipRect(nil)
}

// Destroy releases fonts and cached textures.
func (c *Canvas) Destroy() {
	c.text.Destroy()
	c.images.Destroy()
	c.closeFonts()
}

func toSDLRect(r render.Rect) sdl.Rect {
	x0, y0 := math.Round(r.X), math.Round(r.Y)
	return sdl.Rect{
		X: int32(x0),
		Y: int32(y0),
		W: int32(math.Round(r.X+r.W) - x0),
		H: int32(math.Round(r.Y+r.H) - y0),
	}
}

func intersect(a, b render.Rect) render.Rect {
	x0, y0 := math.Max(a.X, b.X), math.Max(a.Y, b.Y)
	x1, y1 := math.Min(a.X+a.W, b.X+b.W), math.Min(a.Y+a.H, b.Y+b.H)
	return render.Rect{X: x0, Y: y0, W: math.Max(0, x1-x0), H: math.Max(0, y1-y0)}
}
