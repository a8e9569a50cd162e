package constants

import "time"

// Grid
const (
	// GridSize is the number of columns and rows on the wall
	GridSize = 32

	// CommandKeyword prefixes every board command in chat
	CommandKeyword = "set"
)

// Rainbow default for unset cells
const (
	RainbowHueStep      = 20.0  // Degrees per diagonal step
	RainbowHuePerSecond = 100.0 // Degrees of hue rotation per second
	RainbowSaturation   = 0.9
	RainbowValue        = 0.8
)

// Label effect timing, in seconds of age
const (
	// EffectLifetime is the age after which an effect is pruned
	EffectLifetime = 5.0

	// HighlightDuration is the age at which the highlight outline reaches zero width
	HighlightDuration = 0.7

	// FadeStart is the age at which label, shadow and dots begin fading out
	FadeStart = 4.0
)

// Label effect geometry, in layout units
const (
	// TrailDotCount is the number of interpolated dots between origin and label
	TrailDotCount = 20

	// TrailDotSize is the side of one trail dot
	TrailDotSize = 2.0

	// TrailDotRadius rounds the trail dots into circles
	TrailDotRadius = 10.0

	// LabelRise lifts the trail endpoint above the label position
	LabelRise = 8.0

	// ShadowOffset is the distance of each black shadow copy from the label
	ShadowOffset = 1.0

	// HighlightRadius is the corner radius of the highlight outline
	HighlightRadius = 2.0

	// CellRadius is the corner radius of a board cell
	CellRadius = 2.0
)

// Label drift
const (
	// DriftNoiseScale maps layout units to noise space
	DriftNoiseScale = 0.05

	// DriftTimeScale is the noise z advance per second of wall time
	DriftTimeScale = 5.8

	// DriftSpeed scales sampled noise into layout units per second
	DriftSpeed = 100.0
)

// Axis labels
const (
	AxisLabelAlpha    = 0.7
	AxisLabelLeftGap  = 30.0 // Left labels sit this far left of the board
	AxisLabelGap      = 5.0  // Right/bottom labels sit this far outside the board
	AxisLabelInset    = 4.0  // Vertical inset of row labels inside their row
	AxisLabelColInset = 5.0  // Horizontal inset of column labels inside their column
	AxisLabelTopY     = 26.0 // Absolute Y of the top column labels
)

// Host loop
const (
	// FrameUpdateInterval is the default render tick
	FrameUpdateInterval = 16 * time.Millisecond

	// ScriptMessageInterval is the default delay between replayed script messages
	ScriptMessageInterval = 750 * time.Millisecond

	// ChatLogCapacity bounds the number of retained chat entries
	ChatLogCapacity = 200

	// ChatPanelWidth is the width of the chat panel in terminal columns
	ChatPanelWidth = 36

	// PromptMaxLength bounds the local prompt input
	PromptMaxLength = 200
)
