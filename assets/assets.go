package assets

import (
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OrbitalColor is the fill of the generated orbital sprite.
var OrbitalColor = color.RGBA{R: 255, G: 244, B: 214, A: 255}

// NewOrbitalSprite draws a filled dot of the given radius. Its pivot is the
// image centre.
func NewOrbitalSprite(radius int) *ebiten.Image {
	if radius < 1 {
		radius = 1
	}
	size := radius * 2
	img := ebiten.NewImage(size, size)
	r := float32(radius)
	vector.DrawFilledCircle(img, r, r, r, OrbitalColor, true)
	return img
}

// LoadSprite reads an image file from disk.
func LoadSprite(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}

// OrbitalSprite returns the sprite at path, or a generated dot when path is empty.
func OrbitalSprite(path string, radius int) (*ebiten.Image, error) {
	if path == "" {
		return NewOrbitalSprite(radius), nil
	}
	return LoadSprite(path)
}
