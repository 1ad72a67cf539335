// Package leveldata loads level geometry from TMX files: wall rectangles,
// one-way platforms, and the player spawn point.
package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Rect is an axis-aligned rectangle in level pixels.
type Rect struct {
	X, Y, W, H float64
}

// Platform is a one-way platform. Floating platforms bob vertically over
// FloatRange pixels.
type Platform struct {
	Rect
	Floating   bool
	FloatRange float64
}

// Level is the parsed geometry of one TMX map.
type Level struct {
	Width  int // pixels
	Height int

	Walls     []Rect
	Platforms []Platform

	SpawnX float64
	SpawnY float64
}

// Load parses the TMX at path. Recognized object layers: "walls" (solid
// rectangles), "platforms" (one-way, with optional bool "floating" and
// float "range" properties), and "spawn" (player start, first object wins).
func Load(fsys fs.FS, path string) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	level := &Level{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	spawnFound := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Platform{
					Rect:       Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Floating:   o.Properties.GetBool("floating"),
					FloatRange: o.Properties.GetFloat("range"),
				})
			}
		case "spawn":
			for _, o := range og.Objects {
				if !spawnFound {
					level.SpawnX, level.SpawnY = o.X, o.Y
					spawnFound = true
				}
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("level %s: no spawn point", path)
	}
	return level, nil
}
