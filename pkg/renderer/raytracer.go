package renderer

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/OB11TO/Computer-Graphics/pkg/core"
)

// Shading constants of the Phong-style lighting model
const (
	surfaceBias      = 0.01 // Offset along the normal for secondary ray origins
	lightConstant    = 10   // Numerator of the inverse-square light falloff
	ambientLightness = 0.2
	shininess        = 30
	localWeight      = 0.6 // Weight of local shading when mixing with a reflection
	reflectionWeight = 0.4
)

var (
	skyColor   = core.NewVec3(0.3, 0.3, 1)
	whiteColor = core.NewVec3(1, 1, 1)
	eyePoint   = core.NewVec3(0, 0, -1)
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width    int // Image width
	Height   int // Image height
	MaxDepth int // Reflection bounces per primary ray
	Workers  int // Parallel row workers (1 renders on the calling goroutine, <= 0 uses one per CPU)
}

// DefaultRenderConfig returns the reference render settings
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:    512,
		Height:   512,
		MaxDepth: 2,
		Workers:  1,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene    core.Scene
	camera   *Camera
	config   RenderConfig
	logger   core.Logger
	counters rayCounters
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene core.Scene, config RenderConfig) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(eyePoint, config.Width, config.Height),
		config: config,
	}
}

// SetLogger sets the logger used for render progress; nil disables logging
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// trace queries the scene and counts the ray
func (rt *Raytracer) trace(ray core.Ray) (core.HitRecord, bool) {
	rt.counters.raysTraced.Add(1)
	return rt.scene.Trace(ray)
}

// Shade returns the color seen along ray, following up to remainingBounces
// mirror reflections
func (rt *Raytracer) Shade(ray core.Ray, remainingBounces int) core.Vec3 {
	hit, isHit := rt.trace(ray)
	if !isHit {
		return skyColor
	}
	rt.counters.hits.Add(1)

	point := ray.At(hit.T).Add(hit.Normal.Multiply(surfaceBias))
	reflected := ray.Direction.Subtract(hit.Normal.Multiply(2 * hit.Normal.Dot(ray.Direction)))

	toLight := rt.scene.LightPosition().Subtract(point)
	intensity := lightConstant / toLight.Dot(toLight)
	lightDistance := toLight.Length()
	lightDir := toLight.Normalize()

	lightness := float32(ambientLightness)
	var specular float32

	if rt.inShadow(point, lightDir, lightDistance) {
		rt.counters.shadowedHits.Add(1)
	} else {
		lightness += math32.Max(0, lightDir.Dot(hit.Normal)) * intensity
		specular += math32.Pow(math32.Max(0, reflected.Dot(lightDir)), shininess) * intensity
	}

	color := hit.Color.Multiply(lightness).Add(whiteColor.Multiply(specular))

	if remainingBounces > 0 {
		bounce := rt.Shade(core.NewRay(point, reflected), remainingBounces-1)
		color = color.Multiply(localWeight).Add(bounce.Multiply(reflectionWeight))
	}

	return color
}

// inShadow reports whether something lies between point and the light
func (rt *Raytracer) inShadow(point, lightDir core.Vec3, lightDistance float32) bool {
	hit, isHit := rt.trace(core.NewRay(point, lightDir))
	return isHit && hit.T <= lightDistance
}

// renderRow shades every pixel of one framebuffer row
func (rt *Raytracer) renderRow(fb *Framebuffer, row int) {
	for col := 0; col < fb.Width; col++ {
		ray := rt.camera.GetRay(row, col)
		fb.Set(row, col, PackColor(rt.Shade(ray, rt.config.MaxDepth)))
	}
}

// Render renders the scene into a new framebuffer
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	rt.counters.reset()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)

	var pool *WorkerPool
	workers := 1
	if rt.config.Workers != 1 {
		pool = NewWorkerPool(rt, fb, rt.config.Workers)
		workers = pool.GetNumWorkers()
	}

	rt.logf("Rendering %dx%d at depth %d with %d worker(s)\n",
		rt.config.Width, rt.config.Height, rt.config.MaxDepth, workers)

	startTime := time.Now()
	if pool == nil {
		for row := 0; row < fb.Height; row++ {
			rt.renderRow(fb, row)
		}
	} else {
		pool.Start()
		for row := 0; row < fb.Height; row++ {
			pool.SubmitTask(RowTask{Row: row})
		}
		pool.Stop()
	}

	stats := RenderStats{
		TotalPixels:  fb.Width * fb.Height,
		RaysTraced:   rt.counters.raysTraced.Load(),
		Hits:         rt.counters.hits.Load(),
		ShadowedHits: rt.counters.shadowedHits.Load(),
		MaxDepth:     rt.config.MaxDepth,
		Workers:      workers,
		Duration:     time.Since(startTime),
	}

	rt.logf("Render completed in %v (%d rays, %.2f rays/pixel)\n",
		stats.Duration, stats.RaysTraced, stats.AverageRaysPerPixel())

	return fb, stats
}
