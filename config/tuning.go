package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// Tuning mirrors the movement fields of PlayerConfig in YAML. Fields are
// pointers so keys absent from the file keep their current values. Values
// are not validated; authors are expected to supply sane numbers.
type Tuning struct {
	MoveSpeed             *float64 `yaml:"moveSpeed"`
	JumpForce             *float64 `yaml:"jumpForce"`
	WallJumpForce         *float64 `yaml:"wallJumpForce"`
	DirectedWallJumpForce *float64 `yaml:"directedWallJumpForce"`
	WallSlideSpeed        *float64 `yaml:"wallSlideSpeed"`
	WallCheckDistance     *float64 `yaml:"wallCheckDistance"`
	WallJumpTime          *float64 `yaml:"wallJumpTime"`
}

// EnsureTuningFile writes the built-in tuning defaults to path when no file
// exists there yet, giving authors an editable file for live tuning.
func EnsureTuningFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat tuning file %s: %w", path, err)
	}
	if err := os.WriteFile(path, defaultTuning, 0o644); err != nil {
		return fmt.Errorf("write tuning file %s: %w", path, err)
	}
	return nil
}

// ApplyTuningFile merges the YAML tuning at path into the Player config.
func ApplyTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file %s: %w", path, err)
	}
	return ApplyTuning(data)
}

// ApplyTuning merges YAML tuning data into the Player config.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	setIf(&Player.MoveSpeed, t.MoveSpeed)
	setIf(&Player.JumpForce, t.JumpForce)
	setIf(&Player.WallJumpForce, t.WallJumpForce)
	setIf(&Player.DirectedWallJumpForce, t.DirectedWallJumpForce)
	setIf(&Player.WallSlideSpeed, t.WallSlideSpeed)
	setIf(&Player.WallCheckDistance, t.WallCheckDistance)
	setIf(&Player.WallJumpTime, t.WallJumpTime)
	return nil
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
