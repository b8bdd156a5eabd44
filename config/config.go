package config

import "image/color"

// PhysicsConfig contains the per-tick simulation constants. They are handed
// to the engine verbatim when a session is built; the engine never reads
// this package directly.
type PhysicsConfig struct {
	Gravity      float64
	JumpVelocity float64
	WalkAccel    float64
	RunAccel     float64
	Friction     float64
	MaxWalkSpeed float64
	MaxRunSpeed  float64
	MaxFallSpeed float64
}

// SimConfig contains fixed-step scheduling values
type SimConfig struct {
	TickRate int // physics ticks per second
}

// LevelConfig contains level geometry and generation values
type LevelConfig struct {
	TileSize    int
	Width       int
	TotalLevels int

	// Player body
	BodyWidth  int
	BodyHeight int
	SpawnX     int
	SpawnY     int

	// Procedural platform placement
	PlatformCount  int
	PlatformMargin int
	PlatformBands  []int // platform top Y values

	// Goal flag placement
	FlagOffsetX int // distance back from the level's right edge
	FlagY       int
	FlagWidth   int
	FlagHeight  int

	QueryMargin int
}

// ClearConfig contains the goal clear sequence values
type ClearConfig struct {
	DescentSpeed     float64
	WalkSpeed        float64
	CompletionOffset int
	OverlayFadeSecs  float32
	OverlayAlpha     float32
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ViewMargin int // extra pixels culled either side of the visible strip
}

// OverworldConfig contains the level select map layout
type OverworldConfig struct {
	Columns  int
	NodeSize int
	SpacingX int
	SpacingY int
	OriginX  int
	OriginY  int
}

// UIConfig contains colors and layout for the drawn game
type UIConfig struct {
	SkyColor        color.RGBA
	BrickColor      color.RGBA
	PlayerColor     color.RGBA
	FlagPoleColor   color.RGBA
	FlagClothColor  color.RGBA
	NodeColor       color.RGBA
	NodeLockedColor color.RGBA
	NodeCursorColor color.RGBA
	CastleColor     color.RGBA
	OverlayColor    color.RGBA
	TitleColor      color.RGBA
	HUDMargin       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipOverworld bool   // Skip the overworld and go directly into level 1
	LevelDir      string // Load TMX levels from this directory instead of generating
	Seed          int64  // Extra seed mixed into procedural generation
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Sim SimConfig
var Level LevelConfig
var Clear ClearConfig
var Camera CameraConfig
var Overworld OverworldConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	// Physics Config (per-tick values at 60 Hz)
	Physics = PhysicsConfig{
		Gravity:      0.55,
		JumpVelocity: -11.5,
		WalkAccel:    0.4,
		RunAccel:     0.6,
		Friction:     0.2,
		MaxWalkSpeed: 4,
		MaxRunSpeed:  6,
		MaxFallSpeed: 12,
	}

	// Sim Config
	Sim = SimConfig{
		TickRate: 60,
	}

	// Level Config
	Level = LevelConfig{
		TileSize:    40,
		Width:       2000,
		TotalLevels: 32,

		BodyWidth:  32,
		BodyHeight: 32,
		SpawnX:     50,
		SpawnY:     C.Height - 100,

		PlatformCount:  20,
		PlatformMargin: 200,
		PlatformBands:  []int{C.Height - 200, C.Height - 300},

		FlagOffsetX: 500,
		FlagY:       C.Height - 200,
		FlagWidth:   20,
		FlagHeight:  160,

		QueryMargin: 2,
	}

	// Clear Config
	Clear = ClearConfig{
		DescentSpeed:     4,
		WalkSpeed:        2,
		CompletionOffset: 400,
		OverlayFadeSecs:  0.5,
		OverlayAlpha:     180,
	}

	// Camera Config
	Camera = CameraConfig{
		ViewMargin: 80,
	}

	// Overworld Config
	Overworld = OverworldConfig{
		Columns:  8,
		NodeSize: 30,
		SpacingX: 90,
		SpacingY: 80,
		OriginX:  80,
		OriginY:  150,
	}

	// UI Config
	UI = UIConfig{
		SkyColor:        color.RGBA{R: 92, G: 148, B: 252, A: 255},
		BrickColor:      color.RGBA{R: 139, G: 69, B: 19, A: 255},
		PlayerColor:     Red,
		FlagPoleColor:   LightGray,
		FlagClothColor:  BrightGreen,
		NodeColor:       Blue,
		NodeLockedColor: LightGray,
		NodeCursorColor: Yellow,
		CastleColor:     Gray,
		OverlayColor:    BlackOverlay,
		TitleColor:      Orange,
		HUDMargin:       10,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
