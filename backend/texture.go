// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// NameTexture is the conventional registry name of the GPU texture backend.
const NameTexture = "texture"

// ErrNilCreator is returned when a texture factory has no TextureCreator.
var ErrNilCreator = errors.New("backend: nil TextureCreator")

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Texture is a GPU texture resource with a CPU staging pixmap.
//
// Painting happens on the staging pixmap; Upload copies it to the GPU,
// creating the texture on first use. Texture is NOT safe for concurrent use.
type Texture struct {
	*Pixmap
	creator gpucontext.TextureCreator
	texture gpucontext.Texture
	stale   bool
}

// NewTexture creates a texture resource. The GPU texture itself is
// created lazily by Upload.
func NewTexture(creator gpucontext.TextureCreator, opts Options) (*Texture, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	pm, err := NewPixmap(opts)
	if err != nil {
		return nil, err
	}
	return &Texture{Pixmap: pm, creator: creator, stale: true}, nil
}

// NewTextureFactory returns a Factory creating Texture resources with creator.
//
//	backend.Register(backend.NameTexture, backend.PriorityTexture, backend.NewTextureFactory(creator), nil)
func NewTextureFactory(creator gpucontext.TextureCreator) Factory {
	return func(opts Options) (Resource, error) {
		return NewTexture(creator, opts)
	}
}

// Fill fills the staging pixmap and marks the texture for upload.
func (t *Texture) Fill(argb uint32) {
	t.Pixmap.Fill(argb)
	t.stale = true
}

// Invalidate marks the staging pixmap as modified outside Fill.
func (t *Texture) Invalidate() {
	t.stale = true
}

// Upload flushes the staging pixmap to the GPU and returns the texture.
func (t *Texture) Upload() (gpucontext.Texture, error) {
	if t.destroyed {
		return nil, ErrDestroyed
	}
	if t.texture != nil && !t.stale {
		return t.texture, nil
	}
	if t.texture != nil {
		if u, ok := t.texture.(gpucontext.TextureUpdater); ok {
			if err := u.UpdateData(t.img.Pix); err != nil {
				return nil, fmt.Errorf("backend: texture update failed: %w", err)
			}
			t.stale = false
			return t.texture, nil
		}
		t.releaseTexture()
	}
	tex, err := t.creator.NewTextureFromRGBA(t.Width(), t.Height(), t.img.Pix)
	if err != nil {
		return nil, fmt.Errorf("backend: NewTextureFromRGBA failed: %w", err)
	}
	t.texture = tex
	t.stale = false
	return tex, nil
}

// DrawTexture uploads pending changes and draws the texture at (x, y).
func (t *Texture) DrawTexture(dc gpucontext.TextureDrawer, x, y float32) error {
	tex, err := t.Upload()
	if err != nil {
		return err
	}
	return dc.DrawTexture(tex, x, y)
}

// Destroy releases the GPU texture and the staging pixmap.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.releaseTexture()
	t.Pixmap.Destroy()
}

func (t *Texture) releaseTexture() {
	if t.texture == nil {
		return
	}
	if d, ok := t.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	t.texture = nil
}

var (
	_ Resource = (*Texture)(nil)
	_ Drawable = (*Texture)(nil)
)
