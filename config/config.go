package config

import "image/color"

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
}

// ViewerConfig contains layout and colors of the input viewer
type ViewerConfig struct {
	// Layout
	Margin       float64
	ColumnWidth  float64
	RowHeight    float64
	BarWidth     float64
	BarHeight    float64
	HeaderHeight float64

	// Seconds a just-pressed flash takes to fade out
	FlashDuration float32

	// Colors
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	DimTextColor    color.RGBA
	BarBgColor      color.RGBA
	BarFgColor      color.RGBA
	PressedColor    color.RGBA
	FlashColor      color.RGBA

	// Font sizes
	TitleFontSize float64
	BodyFontSize  float64
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowReceivers bool // List every receiver, not only bound actions
}

// Global configuration instances
var C *Config
var Viewer ViewerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 20, G: 20, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Viewer = ViewerConfig{
		Margin:       16,
		ColumnWidth:  230,
		RowHeight:    18,
		BarWidth:     80,
		BarHeight:    10,
		HeaderHeight: 40,

		FlashDuration: 0.35,

		BackgroundColor: Background,
		TextColor:       White,
		DimTextColor:    Grey,
		BarBgColor:      DarkBlue,
		BarFgColor:      LightBlue,
		PressedColor:    BrightGreen,
		FlashColor:      Yellow,

		TitleFontSize: 16,
		BodyFontSize:  11,
	}
}
