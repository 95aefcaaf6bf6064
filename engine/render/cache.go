package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
)

// Loader supplies decoded bitmaps keyed by asset path
type Loader interface {
	Load(path string) (image.Image, error)
}

// DirLoader reads asset paths relative to a root directory
type DirLoader struct {
	Root string
}

// Load opens and decodes one asset file
func (l DirLoader) Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Join(l.Root, filepath.FromSlash(path)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Cache memoizes bitmap decodes for the session. The same few dozen
// assets are repainted on every mutation, so each path decodes once.
type Cache struct {
	loader Loader

	mu     sync.Mutex
	images map[string]image.Image
	failed map[string]error
}

// NewCache wraps a loader with process-wide memoization
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader: loader,
		images: make(map[string]image.Image),
		failed: make(map[string]error),
	}
}

// Load returns the decoded bitmap for a path, decoding at most once.
// Failures are memoized too so a missing asset is not re-stat'd on
// every repaint.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.Lock()
	if img, ok := c.images[path]; ok {
		c.mu.Unlock()
		return img, nil
	}
	if err, ok := c.failed[path]; ok {
		c.mu.Unlock()
		return nil, err
	}
	c.mu.Unlock()

	img, err := c.loader.Load(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.failed[path] = err
		return nil, err
	}
	c.images[path] = img
	return img, nil
}
