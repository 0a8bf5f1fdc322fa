package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Big    font.Face
}

// LoadFonts builds the UI faces from the embedded Go Regular typeface.
func LoadFonts() (*Fonts, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Small, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	fonts.Normal, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	fonts.Big, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}
