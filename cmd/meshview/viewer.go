package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/engine/camera"
	"github.com/Faultbox/midgard-geom/internal/engine/debug"
	"github.com/Faultbox/midgard-geom/internal/engine/gpu"
	"github.com/Faultbox/midgard-geom/internal/engine/input"
	"github.com/Faultbox/midgard-geom/internal/engine/model"
	"github.com/Faultbox/midgard-geom/internal/engine/picking"
	"github.com/Faultbox/midgard-geom/internal/engine/renderer"
	"github.com/Faultbox/midgard-geom/internal/engine/window"
	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/pkg/geometry"
	"github.com/Faultbox/midgard-geom/pkg/math"
)

var (
	meshColor     = math.Vec3{X: 0.55, Y: 0.7, Z: 0.85}
	selectedColor = math.Vec3{X: 0.95, Y: 0.75, Z: 0.35}
	boundsColor   = math.Vec3{X: 0.2, Y: 1, Z: 0.3}
	submeshColor  = math.Vec3{X: 1, Y: 0.4, Z: 0.2}
)

type viewer struct {
	cfg    *config.Config
	win    *window.Window
	render *renderer.Renderer
	input  *input.Input
	cam    *camera.OrbitCamera
	model  *model.Model

	bounds   geometry.BoundingBox
	boxes    []geometry.BoundingBox
	selected int

	shots    *debug.Screenshots
	wantShot bool

	// Ripple animation, only available for dynamic uploads
	ripple     bool
	rippleBase [][]float32
	start      time.Time

	log *zap.Logger
}

func newViewer(cfg *config.Config) (*viewer, error) {
	v := &viewer{
		cfg:      cfg,
		input:    input.New(),
		cam:      camera.NewOrbitCamera(),
		selected: -1,
		shots:    debug.NewScreenshots("screenshots", "meshview"),
		start:    time.Now(),
		log:      logger.Named("viewer"),
	}

	var err error
	if v.win, err = window.New(cfg.Window); err != nil {
		return nil, err
	}

	width, height := v.win.GetSize()
	if v.render, err = renderer.New(width, height); err != nil {
		v.win.Close()
		return nil, err
	}

	if v.model, err = model.FromConfig(cfg.Model, gpu.NewGLUploader()); err != nil {
		v.render.Close()
		v.win.Close()
		return nil, fmt.Errorf("build model: %w", err)
	}
	if err := v.model.Upload(cfg.Model.Dynamic); err != nil {
		return nil, errors.Join(fmt.Errorf("upload model: %w", err), v.Close())
	}

	if cfg.Model.Dynamic {
		for _, mesh := range v.model.Meshes {
			v.rippleBase = append(v.rippleBase, append([]float32(nil), mesh.CPU().Vertices...))
		}
	}

	v.refreshBounds()
	v.cam.FitToBounds(v.bounds)

	v.log.Info("model ready",
		zap.Int("submeshes", len(v.model.Meshes)),
		zap.Int("vertices", v.model.VertexCount()),
		zap.Int("triangles", v.model.TriangleCount()),
		zap.Bool("dynamic", cfg.Model.Dynamic),
	)
	return v, nil
}

// Close releases the model buffers before tearing down the context.
func (v *viewer) Close() error {
	err := v.model.Close()
	v.render.Close()
	v.win.Close()
	return err
}

// Run drives the event and draw loop until the window closes.
func (v *viewer) Run() error {
	last := time.Now()
	for {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if v.input.Update() {
			return nil
		}
		if quit := v.handleEvents(); quit {
			return nil
		}
		v.handleMovement(dt)

		if v.ripple {
			if err := v.animate(float32(now.Sub(v.start).Seconds())); err != nil {
				return err
			}
		}

		v.draw()
		if v.wantShot {
			v.screenshot()
		}
		v.win.SwapBuffers()
	}
}

func (v *viewer) handleEvents() (quit bool) {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.render.Resize(e.Width, e.Height)
		case input.EventMouseWheel:
			v.cam.HandleZoom(e.Wheel)
		case input.EventMouseMove:
			if e.Button == sdl.BUTTON_LEFT {
				v.cam.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}
		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_RIGHT {
				v.pick(e.MouseX, e.MouseY)
			}
		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				return true
			case sdl.SCANCODE_F:
				v.cam.FitToBounds(v.bounds)
			case sdl.SCANCODE_T:
				v.render.Wireframe = !v.render.Wireframe
			case sdl.SCANCODE_R:
				v.toggleRipple()
			case sdl.SCANCODE_P:
				v.wantShot = true
			case sdl.SCANCODE_V:
				v.cfg.Window.VSync = !v.cfg.Window.VSync
				v.win.SetVSync(v.cfg.Window.VSync)
			}
		}
	}
	return false
}

func (v *viewer) handleMovement(dt float32) {
	var forward, right, up float32
	if v.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_E) {
		up++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_Q) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		scale := dt * 60
		v.cam.HandleMovement(forward*scale, right*scale, up*scale)
	}
}

func (v *viewer) viewProj() math.Mat4 {
	return v.cam.ProjectionMatrix(v.render.Aspect()).Mul(v.cam.ViewMatrix())
}

func (v *viewer) pick(x, y int) {
	width, height := v.win.GetSize()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(width), float32(height), v.viewProj().Inverse())

	idx, dist := picking.PickNearest(ray, v.boxes)
	v.selected = idx
	if idx < 0 {
		v.log.Info("pick missed", zap.Int("x", x), zap.Int("y", y))
		return
	}

	lo, hi := v.boxes[idx].Min.Array(), v.boxes[idx].Max.Array()
	hit := ray.At(dist).Array()
	v.log.Info("submesh picked",
		zap.Int("index", idx),
		zap.Float32("distance", dist),
		zap.Float32s("hit", hit[:]),
		zap.Float32s("min", lo[:]),
		zap.Float32s("max", hi[:]),
	)
}

func (v *viewer) toggleRipple() {
	if !v.cfg.Model.Dynamic {
		v.log.Warn("ripple needs model.dynamic: true")
		return
	}
	v.ripple = !v.ripple
	v.log.Debug("ripple toggled", zap.Bool("enabled", v.ripple))
}

// animate displaces every submesh on the CPU, streams the positions into
// the dynamic buffers and recomputes the bounds.
func (v *viewer) animate(t float32) error {
	for i, mesh := range v.model.Meshes {
		cpu := mesh.CPU()
		rippleHeights(cpu.Vertices, v.rippleBase[i], t, 0.25)
		if err := mesh.UpdateBuffer(gpu.AttribPosition, cpu.Vertices, 0); err != nil {
			return fmt.Errorf("submesh %d: %w", i, err)
		}
	}
	v.refreshBounds()
	return nil
}

func (v *viewer) screenshot() {
	v.wantShot = false
	pixels, width, height := v.render.ReadPixels()
	path, err := v.shots.SaveRGBA(pixels, width, height)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *viewer) refreshBounds() {
	v.bounds = v.model.Bounds()
	v.boxes = v.model.SubmeshBounds()
}

func (v *viewer) draw() {
	viewProj := v.viewProj()

	v.render.Begin()
	for i, mesh := range v.model.Meshes {
		color := meshColor
		if i == v.selected {
			color = selectedColor
		}
		v.render.DrawMesh(mesh.Handle(), v.model.Transform, viewProj, color)
	}

	v.render.DrawLines(debug.BBoxWireframePadded(v.bounds, 0.01), viewProj, boundsColor)
	if v.selected >= 0 {
		v.render.DrawLines(debug.BBoxWireframe(v.boxes[v.selected]), viewProj, submeshColor)
	}
	v.render.End()
}
