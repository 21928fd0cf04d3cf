package renderer

import (
	"sync/atomic"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	RaysTraced   int64         // Primary, shadow and reflection rays traced
	Hits         int64         // Shading calls whose ray hit a primitive
	ShadowedHits int64         // Hits whose shadow ray was blocked
	MaxDepth     int           // Reflection bounces per primary ray
	Workers      int           // Number of workers used
	Duration     time.Duration // Wall time of the render
}

// AverageRaysPerPixel returns the mean number of rays traced per pixel
func (s RenderStats) AverageRaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(s.TotalPixels)
}

// rayCounters is updated concurrently by shading calls
type rayCounters struct {
	raysTraced   atomic.Int64
	hits         atomic.Int64
	shadowedHits atomic.Int64
}

func (c *rayCounters) reset() {
	c.raysTraced.Store(0)
	c.hits.Store(0)
	c.shadowedHits.Store(0)
}
