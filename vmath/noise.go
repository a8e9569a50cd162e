package vmath

import "github.com/aquilax/go-perlin"

// Perlin parameters: weight divisor, frequency multiplier, octaves
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// NoiseField is a coherent 3D noise source, output roughly in [-1, 1]
type NoiseField interface {
	Noise3D(x, y, z float64) float64
}

// NewPerlinField returns a seeded Perlin noise field
func NewPerlinField(seed int64) NoiseField {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
}

// Sample2D reads a 2D vector from the field: x at (p.x, p.y, z), y at (p.y, p.x, z)
func Sample2D(f NoiseField, p Vec2, z float64) Vec2 {
	return Vec2{
		X: f.Noise3D(p.X, p.Y, z),
		Y: f.Noise3D(p.Y, p.X, z),
	}
}
