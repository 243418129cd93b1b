// Package backend provides the paint resources that back surfaces.
//
// A resource is an opaque, exclusively owned paint target. The surface
// tree only creates and destroys resources; drawing into them is the
// painter's business. Each resource is either opaque (ContentColor) or
// translucent (ContentColorAlpha), and the two kinds are not
// interchangeable.
//
// # Backend Registration
//
// Backends are registered with a priority and selected at runtime. The
// CPU pixmap backend is registered on import:
//
//	f := backend.Default()           // best available
//	f := backend.ByName("pixmap")    // a specific backend
//
// A GPU backend is registered by the host once it has a
// gpucontext.TextureCreator:
//
//	backend.Register(backend.NameTexture, backend.PriorityTexture, backend.NewTextureFactory(creator), nil)
//
// # Thread Safety
//
// The registry is safe for concurrent use. Resources are NOT.
package backend
