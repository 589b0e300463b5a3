package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

// TextureCache keeps the most recently used textures and destroys the rest.
type TextureCache struct {
	entries map[string]*list.Element
	order   *list.List // front is most recently used
	maxSize int
}

type cachedTexture struct {
	key     string
	texture *sdl.Texture
	w, h    int32
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		entries: make(map[string]*list.Element, maxSize),
		order:   list.New(),
		maxSize: maxSize,
	}
}

// Get returns the texture stored under key and its size, or nil.
func (c *TextureCache) Get(key string) (*sdl.Texture, int32, int32) {
	el, ok := c.entries[key]
	if !ok {
		return nil, 0, 0
	}
	c.order.MoveToFront(el)
	ct := el.Value.(*cachedTexture)
	return ct.texture, ct.w, ct.h
}

// Set stores texture under key, evicting the least recently used entry when full.
func (c *TextureCache) Set(key string, texture *sdl.Texture, w, h int32) {
	if el, ok := c.entries[key]; ok {
		ct := el.Value.(*cachedTexture)
		if ct.texture != texture {
			ct.texture.Destroy()
		}
		ct.texture, ct.w, ct.h = texture, w, h
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = c.order.PushFront(&cachedTexture{key: key, texture: texture, w: w, h: h})
}

func (c *TextureCache) Len() int {
	return c.order.Len()
}

func (c *TextureCache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	ct := c.order.Remove(el).(*cachedTexture)
	delete(c.entries, ct.key)
	ct.texture.Destroy()
}

func (c *TextureCache) Destroy() {
	for el := c.order.Front(); el != nil; el = el.Next() {
		el.Value.(*cachedTexture).texture.Destroy()
	}
	clear(c.entries)
	c.order.Init()
}
