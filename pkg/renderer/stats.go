package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	Hits              int           // Pixels whose ray hit a body
	Misses            int           // Pixels left black
	IntersectionTests int           // Ray-body intersection tests performed
	AverageLuminance  float64       // Mean Rec. 709 luminance of the output
	Duration          time.Duration // Wall time of the pass
}

// record accounts for one pixel tested against numBodies bodies
func (s *RenderStats) record(hit bool, numBodies int) {
	s.TotalPixels++
	s.IntersectionTests += numBodies
	if hit {
		s.Hits++
	} else {
		s.Misses++
	}
}

// merge folds per-row counters into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.Hits += other.Hits
	s.Misses += other.Misses
	s.IntersectionTests += other.IntersectionTests
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image
// with channels mapped to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(count)
}
