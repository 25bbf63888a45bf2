package gpu

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

var (
	// ErrReleased is returned when using a mesh whose storage was released.
	ErrReleased = errors.New("mesh released")

	// ErrNotUploaded is returned when a GPU operation needs an uploaded mesh.
	ErrNotUploaded = errors.New("mesh not uploaded")

	// ErrNotOwner is returned when uploading storage that no Mesh is
	// responsible for releasing.
	ErrNotOwner = errors.New("mesh has no owner to release it")
)

// Ownership says whether a Mesh releases its storage on Close.
type Ownership int

const (
	// Owned meshes release GPU buffers and drop CPU buffers on Close.
	Owned Ownership = iota
	// Borrowed meshes never release anything and cannot upload, since
	// nothing would free the buffers.
	Borrowed
)

// resource is the storage shared between an owner and its views.
type resource struct {
	cpu      *geometry.Mesh
	handle   Handle
	uploader Uploader
	owned    bool // an owning Mesh exists and will release on Close
	released bool
}

// Mesh is a CPU mesh with optional GPU buffers attached.
type Mesh struct {
	res    *resource
	owned  bool
	closed bool
	log    *zap.Logger
}

// NewMesh wraps mesh. The mesh must be valid; with Owned the returned
// value becomes responsible for releasing it. up may be nil for meshes
// that stay on the CPU.
func NewMesh(mesh *geometry.Mesh, up Uploader, own Ownership) (*Mesh, error) {
	if mesh == nil {
		return nil, fmt.Errorf("%w: nil mesh", geometry.ErrInvalidMesh)
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return &Mesh{
		res:   &resource{cpu: mesh, uploader: up, owned: own == Owned},
		owned: own == Owned,
		log:   logger.Named("gpu"),
	}, nil
}

// View returns a borrowed Mesh over the same buffers. Closing the view
// leaves the storage alone.
func (m *Mesh) View() *Mesh {
	return &Mesh{res: m.res, log: m.log}
}

// Owned reports whether Close releases the storage.
func (m *Mesh) Owned() bool {
	return m.owned
}

// CPU returns the CPU-side buffers, or nil once released.
func (m *Mesh) CPU() *geometry.Mesh {
	if m.res.released {
		return nil
	}
	return m.res.cpu
}

// Handle returns the GPU handle; it is the zero Handle until uploaded.
func (m *Mesh) Handle() Handle {
	return m.res.handle
}

// Uploaded reports whether GPU buffers are attached.
func (m *Mesh) Uploaded() bool {
	return m.res.handle.Valid()
}

// Upload copies the CPU buffers to the GPU. Uploading twice is a no-op.
// Views of an owned mesh may upload on the owner's behalf; meshes created
// Borrowed may not.
func (m *Mesh) Upload(dynamic bool) error {
	if err := m.check(); err != nil {
		return err
	}
	if m.Uploaded() {
		return nil
	}
	if !m.res.owned {
		return fmt.Errorf("upload mesh: %w", ErrNotOwner)
	}
	if m.res.uploader == nil {
		return fmt.Errorf("upload mesh: no uploader")
	}

	h, err := m.res.uploader.Upload(m.res.cpu, dynamic)
	if err != nil {
		return fmt.Errorf("upload mesh: %w", err)
	}
	m.res.handle = h

	m.log.Debug("mesh uploaded",
		zap.Uint32("vao", h.VAO),
		zap.Int32("vertices", h.VertexCount),
		zap.Int32("indices", h.IndexCount),
		zap.Bool("dynamic", dynamic),
	)
	return nil
}

// UpdateBuffer overwrites part of one uploaded vertex buffer, starting
// offset floats in.
func (m *Mesh) UpdateBuffer(attr Attribute, data []float32, offset int) error {
	if err := m.check(); err != nil {
		return err
	}
	if !m.Uploaded() {
		return ErrNotUploaded
	}
	return m.res.uploader.UpdateBuffer(m.res.handle, attr, data, offset)
}

// Bounds returns the mesh bounds under transform. A released mesh has the
// zero box.
func (m *Mesh) Bounds(transform math.Mat4) geometry.BoundingBox {
	return geometry.ComputeBounds(m.CPU(), transform)
}

// Close releases owned storage. It is safe to call more than once; only
// the first call on an owner does any work.
func (m *Mesh) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	if !m.owned || m.res.released {
		return nil
	}

	var err error
	if m.res.handle.Valid() {
		err = m.res.uploader.Release(m.res.handle)
		m.log.Debug("mesh released", zap.Uint32("vao", m.res.handle.VAO), zap.Error(err))
	}
	m.res.handle = Handle{}
	m.res.cpu = nil
	m.res.released = true
	return err
}

func (m *Mesh) check() error {
	if m.closed || m.res.released {
		return ErrReleased
	}
	return nil
}

// WithMesh uploads mesh, calls fn with it and releases it on every exit
// path, including errors and panics in fn.
func WithMesh(mesh *geometry.Mesh, up Uploader, dynamic bool, fn func(*Mesh) error) (err error) {
	m, err := NewMesh(mesh, up, Owned)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, m.Close())
	}()

	if err := m.Upload(dynamic); err != nil {
		return err
	}
	return fn(m)
}
