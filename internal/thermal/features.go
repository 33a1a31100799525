package thermal

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// #region features

// AnomalyFeatures is the fixed feature record extracted from a normalized
// thermal intensity grid. Immutable once produced.
type AnomalyFeatures struct {
	MeanTemperature  float64 `json:"meanTemperature"`
	MaxTemperature   float64 `json:"maxTemperature"`
	TemperatureDelta float64 `json:"temperatureDelta"`
	HotspotCount     int     `json:"hotspotCount"`
	SeverityScore    float64 `json:"severityScore"`
}

// #endregion features

// #region detector-config

// DetectorConfig holds thresholds for statistical hotspot detection.
type DetectorConfig struct {
	SigmaThreshold float64 // pixels above mean + sigma*stddev count as hot
}

// DefaultDetectorConfig returns the standard detection thresholds.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		SigmaThreshold: 2.0,
	}
}

// #endregion detector-config

// #region detect

// DetectAnomaly computes hotspot statistics over a normalized intensity grid.
// Hotspots are connected regions above mean + SigmaThreshold*stddev; the
// severity score is the peak-to-mean excess normalized by the mean.
// The returned features never contain non-finite values or a negative count.
func DetectAnomaly(grid Grid, config DetectorConfig) AnomalyFeatures {
	if len(grid.Pixels) == 0 {
		return AnomalyFeatures{}
	}

	meanTemp := stat.Mean(grid.Pixels, nil)
	stdTemp := stat.StdDev(grid.Pixels, nil)
	if math.IsNaN(stdTemp) {
		// single-pixel grid
		stdTemp = 0
	}

	maxTemp := grid.Pixels[0]
	for _, v := range grid.Pixels {
		if v > maxTemp {
			maxTemp = v
		}
	}

	threshold := meanTemp + config.SigmaThreshold*stdTemp
	mask := make([]bool, len(grid.Pixels))
	for i, v := range grid.Pixels {
		mask[i] = v > threshold
	}

	severity := 0.0
	if meanTemp > 0 {
		severity = round2((maxTemp - meanTemp) / meanTemp)
	}

	return AnomalyFeatures{
		MeanTemperature:  round2(meanTemp),
		MaxTemperature:   round2(maxTemp),
		TemperatureDelta: round2(maxTemp - meanTemp),
		HotspotCount:     countComponents(mask, grid.Width, grid.Height),
		SeverityScore:    severity,
	}
}

// #endregion detect

// #region components

// countComponents counts 8-connected regions of set pixels, so diagonally
// touching hot pixels belong to one hotspot.
func countComponents(mask []bool, width, height int) int {
	visited := make([]bool, len(mask))
	var stack []int
	count := 0

	for start := range mask {
		if !mask[start] || visited[start] {
			continue
		}
		count++

		stack = append(stack[:0], start)
		visited[start] = true

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x := idx % width
			y := idx / width

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					ni := ny*width + nx
					if mask[ni] && !visited[ni] {
						visited[ni] = true
						stack = append(stack, ni)
					}
				}
			}
		}
	}

	return count
}

// #endregion components

// #region helpers

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers
