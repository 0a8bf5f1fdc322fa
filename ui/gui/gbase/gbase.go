package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 700
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA

	// board squares
	SquareLight color.RGBA
	SquareDark  color.RGBA

	// highlight tints layered over squares
	CanMove    color.RGBA
	From       color.RGBA
	To         color.RGBA
	Capture    color.RGBA
	DoublePush color.RGBA
	EnPassant  color.RGBA
	Promotion  color.RGBA
	Castle     color.RGBA
	LastMove   color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var highlightTints = struct {
	CanMove, From, To, Capture, DoublePush, EnPassant, Promotion, Castle, LastMove color.RGBA
}{
	CanMove:    color.RGBA{0x3f, 0xa0, 0x3f, 0x50},
	From:       color.RGBA{0x22, 0x88, 0xcc, 0x90},
	To:         color.RGBA{0x3f, 0xa0, 0x3f, 0x80},
	Capture:    color.RGBA{0xcc, 0x33, 0x33, 0x90},
	DoublePush: color.RGBA{0x2f, 0x9f, 0x9f, 0x80},
	EnPassant:  color.RGBA{0xdd, 0x88, 0x22, 0x90},
	Promotion:  color.RGBA{0x88, 0x44, 0xbb, 0x90},
	Castle:     color.RGBA{0x44, 0x66, 0xcc, 0x90},
	LastMove:   color.RGBA{0xd8, 0xc8, 0x30, 0x60},
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
	SquareLight:  color.RGBA{0xee, 0xe4, 0xd0, 0xff},
	SquareDark:   color.RGBA{0xa8, 0x86, 0x66, 0xff},
	CanMove:      highlightTints.CanMove,
	From:         highlightTints.From,
	To:           highlightTints.To,
	Capture:      highlightTints.Capture,
	DoublePush:   highlightTints.DoublePush,
	EnPassant:    highlightTints.EnPassant,
	Promotion:    highlightTints.Promotion,
	Castle:       highlightTints.Castle,
	LastMove:     highlightTints.LastMove,
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
	SquareLight:  color.RGBA{0x9a, 0x9a, 0x9a, 0xff},
	SquareDark:   color.RGBA{0x4a, 0x4a, 0x4a, 0xff},
	CanMove:      highlightTints.CanMove,
	From:         highlightTints.From,
	To:           highlightTints.To,
	Capture:      highlightTints.Capture,
	DoublePush:   highlightTints.DoublePush,
	EnPassant:    highlightTints.EnPassant,
	Promotion:    highlightTints.Promotion,
	Castle:       highlightTints.Castle,
	LastMove:     highlightTints.LastMove,
}
