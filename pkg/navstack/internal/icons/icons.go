// Package icons rasterizes the SVG glyphs navstack draws.
package icons

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
)

var sources = map[string]string{
	constants.IconChevronLeft: constants.ChevronLeftSVG,
}

type cacheKey struct {
	name string
	size int
}

var (
	mu    sync.Mutex
	cache = map[cacheKey]*image.RGBA{}
)

// Get returns the named icon rasterized to a size x size square. Results are
// cached; callers must not modify the returned image.
func Get(name string, size int) (*image.RGBA, error) {
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("icons: unknown icon %q", name)
	}

	mu.Lock()
	defer mu.Unlock()
	k := cacheKey{name, size}
	if img, ok := cache[k]; ok {
		return img, nil
	}
	img, err := Rasterize(src, size)
	if err != nil {
		return nil, fmt.Errorf("icons: %s: %w", name, err)
	}
	cache[k] = img
	return img, nil
}

// Rasterize renders svg scaled to a size x size square.
func Rasterize(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := float64(size), float64(size)
	icon.SetTarget(0, 0, w, h)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
