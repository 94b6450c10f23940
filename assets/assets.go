// Package assets provides the read-only resource bundle shared by all
// requests: background rasters and font files, loaded once and cached.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"
)

// AssetError reports a missing or unreadable asset. It is fatal for the
// request: there is no fallback rendering.
type AssetError struct {
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("assets: %s: %v", e.Name, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Options configures a bundle. Injected Fonts/Images take precedence over
// files in Dir and are how tests supply synthetic assets.
type Options struct {
	Dir    string
	Fonts  map[string]Resource
	Images map[string]Resource
}

// Bundle resolves asset names to bytes and decoded images. All loads are
// cached; the cached values are immutable and safe to share across
// concurrent requests.
type Bundle struct {
	dir string

	mu     sync.Mutex
	fonts  map[string][]byte
	images map[string]image.Image
}

// Open creates a bundle rooted at dir.
func Open(dir string) *Bundle { return OpenWithOptions(Options{Dir: dir}) }

// OpenWithOptions creates a bundle with injected resources and optional dir.
func OpenWithOptions(opts Options) *Bundle {
	b := &Bundle{
		dir:    opts.Dir,
		fonts:  map[string][]byte{},
		images: map[string]image.Image{},
	}
	for name, res := range opts.Fonts {
		if data := resourceBytes(res); len(data) > 0 {
			b.fonts[name] = data
		}
	}
	for name, res := range opts.Images {
		data := resourceBytes(res)
		if len(data) == 0 {
			continue
		}
		if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
			b.images[name] = img
		}
	}
	return b
}

func resourceBytes(res Resource) []byte {
	if len(res.Bytes) > 0 {
		return res.Bytes
	}
	if res.Path != "" {
		data, err := os.ReadFile(res.Path)
		if err == nil {
			return data
		}
	}
	return nil
}

// Font returns the raw bytes of a font file by name.
func (b *Bundle) Font(name string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if data, ok := b.fonts[name]; ok {
		return data, nil
	}
	data, err := b.readFile(name)
	if err != nil {
		return nil, &AssetError{Name: name, Err: err}
	}
	b.fonts[name] = data
	return data, nil
}

// Background returns a decoded background raster by name.
func (b *Bundle) Background(name string) (image.Image, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if img, ok := b.images[name]; ok {
		return img, nil
	}
	data, err := b.readFile(name)
	if err != nil {
		return nil, &AssetError{Name: name, Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetError{Name: name, Err: err}
	}
	b.images[name] = img
	return img, nil
}

func (b *Bundle) readFile(name string) ([]byte, error) {
	if b.dir == "" {
		return nil, fmt.Errorf("no asset directory configured")
	}
	return os.ReadFile(filepath.Join(b.dir, name))
}
