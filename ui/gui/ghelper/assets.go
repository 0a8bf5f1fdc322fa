package ghelper

import (
	"unicode"

	"dragchess/src/base"
	"dragchess/ui/gui/ghelper/gfont"
	"dragchess/ui/gui/ghelper/gimages"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const pieceSpriteSize = 96

type pieceKey struct {
	Color base.Color
	Type  base.PieceType
}

type GUIAssetsWorker struct {
	pieceImages map[pieceKey]*ebiten.Image
	fonts       *gfont.Fonts
}

// NewGUIAssetsWorker prefers sprite files under assets/images and
// renders procedural sprites when none ship with the binary.
func NewGUIAssetsWorker() (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}

	var imgs map[pieceKey]*ebiten.Image
	if files, err := gimages.LoadImageAssets("assets/images"); err == nil {
		imgs = make(map[pieceKey]*ebiten.Image, len(files))
		for _, c := range []base.Color{base.White, base.Black} {
			for _, pt := range base.PieceTypes {
				imgs[pieceKey{Color: c, Type: pt}] = files[gimages.SpriteKey(c, pt)]
			}
		}
	} else {
		imgs, err = renderPieceSprites()
		if err != nil {
			return nil, err
		}
	}
	return &GUIAssetsWorker{pieceImages: imgs, fonts: fonts}, nil
}

func (aw *GUIAssetsWorker) Piece(c base.Color, pt base.PieceType) *ebiten.Image {
	return aw.pieceImages[pieceKey{Color: c, Type: pt}]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

// renderPieceSprites draws each piece procedurally: a disc in the piece
// color with the piece letter on top. Keeps the binary self-contained,
// no image files to ship.
func renderPieceSprites() (map[pieceKey]*ebiten.Image, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    pieceSpriteSize / 2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	imgs := make(map[pieceKey]*ebiten.Image, 12)
	for _, c := range []base.Color{base.White, base.Black} {
		for _, pt := range base.PieceTypes {
			imgs[pieceKey{Color: c, Type: pt}] = renderPiece(face, c, pt)
		}
	}
	return imgs, nil
}

func renderPiece(face font.Face, c base.Color, pt base.PieceType) *ebiten.Image {
	const s = float64(pieceSpriteSize)
	dc := gg.NewContext(pieceSpriteSize, pieceSpriteSize)

	disc, ink := 0.92, 0.12
	if c == base.Black {
		disc, ink = 0.16, 0.90
	}

	dc.SetRGB(disc, disc, disc)
	dc.DrawCircle(s/2, s/2, s*0.42)
	dc.FillPreserve()
	dc.SetRGB(ink, ink, ink)
	dc.SetLineWidth(3)
	dc.Stroke()

	letter := unicode.ToUpper(base.ConvertRuneFromPiece(c, pt))
	dc.SetFontFace(face)
	dc.DrawStringAnchored(string(letter), s/2, s/2, 0.5, 0.5)

	return ebiten.NewImageFromImage(dc.Image())
}
