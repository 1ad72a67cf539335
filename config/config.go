package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains the movement tuning handed to the character
// controller plus the player's collision dimensions. Speeds and forces are
// pixels per tick at 60 TPS; WallJumpTime is seconds.
type PlayerConfig struct {
	// Movement
	MoveSpeed             float64
	JumpForce             float64
	WallJumpForce         float64
	DirectedWallJumpForce float64

	// Wall interaction
	WallSlideSpeed    float64
	WallCheckDistance float64
	WallJumpTime      float64

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	// Squash and stretch scales for jump takeoff and landing, and the lerp
	// factor back toward neutral per tick
	JumpSquashX    float64
	JumpSquashY    float64
	LandSquashX    float64
	LandSquashY    float64
	SquashRecovery float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

// CameraConfig contains camera follow behavior values
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
}

// AudioConfig contains audio system configuration
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Audio AudioConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Crimson      = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	SlideBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	JumpGreen    = color.RGBA{R: 100, G: 255, B: 140, A: 255}
	WallGrey     = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	PlatformTan  = color.RGBA{R: 180, G: 150, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "clamber",
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 10.0,
	}

	Player = PlayerConfig{
		MoveSpeed:             3.5,
		JumpForce:             10.0,
		WallJumpForce:         6.0,
		DirectedWallJumpForce: 8.0,
		WallSlideSpeed:        1.0,
		WallCheckDistance:     8.0,
		WallJumpTime:          0.25,

		CollisionWidth:  16,
		CollisionHeight: 32,

		JumpSquashX:    0.7,
		JumpSquashY:    1.25,
		LandSquashX:    1.3,
		LandSquashY:    0.7,
		SquashRecovery: 0.2,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.08,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.06,
		LookAheadSpeedThreshold: 0.5,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.4,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 18, G: 18, B: 28, A: 255},
		TitleColor:      White,
	}
}
