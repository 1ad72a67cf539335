// Package fonts provides the faces used by the HUD and the menu. The game
// ships no font binaries; UI text renders from the embedded Go Regular
// typeface and HUD text from the basicfont bitmap face.
package fonts

import (
	"bytes"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
)

func init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized to fit the 640x360 screen
	titleFace = &text.GoTextFace{Source: source, Size: 18}
	normalFace = &text.GoTextFace{Source: source, Size: 12}
	smallFace = &text.GoTextFace{Source: source, Size: 10}
}

// Default returns the face for HUD and debug text.
func Default() xfont.Face {
	return basicfont.Face7x13
}

// Title returns the large menu face.
func Title() text.Face {
	return titleFace
}

// Normal returns the regular menu face.
func Normal() text.Face {
	return normalFace
}

// Small returns the small menu face.
func Small() text.Face {
	return smallFace
}
