package raster

import (
	"image"
	"sync"
)

// pool reuses layer buffers of identical size across canvases.
// All methods are safe for concurrent use.
type pool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.RGBA
	maxSize int
}

func newPool(maxPerBucket int) *pool {
	return &pool{
		buckets: make(map[image.Point][]*image.RGBA),
		maxSize: maxPerBucket,
	}
}

// get returns a transparent buffer covering r.
func (p *pool) get(r image.Rectangle) *image.RGBA {
	key := r.Size()
	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		img := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		clear(img.Pix)
		img.Rect = r
		return img
	}
	p.mu.Unlock()
	return image.NewRGBA(r)
}

// put returns img for reuse. Buffers beyond the bucket limit are dropped.
func (p *pool) put(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.Size()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.maxSize > 0 && len(p.buckets[key]) >= p.maxSize {
		return
	}
	p.buckets[key] = append(p.buckets[key], img)
}
