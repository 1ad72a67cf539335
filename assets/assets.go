// Package assets embeds the files shipped with the game.
package assets

import "embed"

//go:embed all:levels
var FS embed.FS

// LevelPath is the TMX map loaded at startup.
const LevelPath = "levels/arena.tmx"
