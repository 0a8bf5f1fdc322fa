package gimages

import (
	"fmt"

	"dragchess/src/base"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImageAssets reads piece sprites from workdir, named like
// "wpawn.png" / "bking.png". Callers fall back to procedural sprites
// when the directory is absent.
func LoadImageAssets(workdir string) (map[string]*ebiten.Image, error) {
	imgs := make(map[string]*ebiten.Image, 12)
	for _, c := range []base.Color{base.White, base.Black} {
		for _, pt := range base.PieceTypes {
			key := SpriteKey(c, pt)
			img, _, err := ebitenutil.NewImageFromFile(fmt.Sprintf("%s/%s.png", workdir, key))
			if err != nil {
				return nil, err
			}
			imgs[key] = img
		}
	}
	return imgs, nil
}

func SpriteKey(c base.Color, pt base.PieceType) string {
	return string(c.String()[0]) + pt.String()
}
