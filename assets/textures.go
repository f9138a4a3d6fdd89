package assets

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/realistic-horror-game/config"
)

// Wall texture indices referenced by the room file.
const (
	WallBrick   = 1
	WallPlaster = 2
	WallPillar  = 3
)

var (
	wallTextures map[int]*ebiten.Image
	propTextures map[string]*ebiten.Image
)

// LoadTextures generates every wall and prop texture. The repository
// ships no image files; everything is synthesized once at scene start
// from fixed seeds so runs look identical.
func LoadTextures() {
	if wallTextures != nil {
		return
	}

	size := config.Render.TextureSize
	wallTextures = map[int]*ebiten.Image{
		WallBrick:   generateBrick(size, rand.New(rand.NewSource(11))),
		WallPlaster: generatePlaster(size, rand.New(rand.NewSource(23))),
		WallPillar:  generatePillar(size, rand.New(rand.NewSource(37))),
	}
	propTextures = map[string]*ebiten.Image{
		"crate":  generateCrate(size, rand.New(rand.NewSource(53))),
		"barrel": generateBarrel(size, rand.New(rand.NewSource(71))),
	}
}

// WallTexture returns the texture for a wall index, falling back to
// brick for indices the room file should not contain.
func WallTexture(index int) *ebiten.Image {
	if tex, ok := wallTextures[index]; ok {
		return tex
	}
	return wallTextures[WallBrick]
}

// PropTexture returns the billboard texture for a prop kind, or nil for
// unknown kinds (the renderer skips those).
func PropTexture(kind string) *ebiten.Image {
	return propTextures[kind]
}

func generateBrick(size int, rng *rand.Rand) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	brickH := size / 8
	brickW := size / 4

	for y := 0; y < size; y++ {
		row := y / brickH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			mortar := y%brickH == 0 || (x+offset)%brickW == 0
			if mortar {
				v := uint8(30 + rng.Intn(8))
				img.SetRGBA(x, y, color.RGBA{v, v - 4, v - 6, 255})
				continue
			}
			// Per-brick tint keyed off the brick cell, plus grain.
			cell := row*31 + (x+offset)/brickW
			tint := float64(cell%5)*4 - 8
			n := float64(rng.Intn(13)) - 6
			r := clampByte(74 + tint + n)
			g := clampByte(40 + tint*0.6 + n*0.8)
			b := clampByte(34 + tint*0.4 + n*0.6)
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func generatePlaster(size int, rng *rand.Rand) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := float64(rng.Intn(21)) - 10
			v := 52 + n
			img.SetRGBA(x, y, color.RGBA{clampByte(v), clampByte(v - 2), clampByte(v - 6), 255})
		}
	}

	// A few wandering cracks.
	for c := 0; c < 3; c++ {
		x := rng.Intn(size)
		for y := 0; y < size; y++ {
			x += rng.Intn(3) - 1
			if x < 0 || x >= size {
				break
			}
			img.SetRGBA(x, y, color.RGBA{24, 22, 20, 255})
			if x+1 < size && rng.Intn(3) == 0 {
				img.SetRGBA(x+1, y, color.RGBA{34, 32, 30, 255})
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}

func generatePillar(size int, rng *rand.Rand) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	blockH := size / 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Rounded shading sells the column shape on flat cells.
			shade := 0.55 + 0.45*math.Sin(math.Pi*float64(x)/float64(size-1))
			n := float64(rng.Intn(9)) - 4
			v := (68 + n) * shade
			if y%blockH == 0 {
				v *= 0.55
			}
			img.SetRGBA(x, y, color.RGBA{clampByte(v), clampByte(v * 0.96), clampByte(v * 0.9), 255})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func generateCrate(size int, rng *rand.Rand) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	plankW := size / 6
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			plank := x / plankW
			tint := float64(plank%3)*6 - 6
			n := float64(rng.Intn(11)) - 5
			r := 84 + tint + n
			g := 58 + tint*0.7 + n*0.7
			b := 32 + tint*0.4 + n*0.5
			// Frame and diagonal brace in darker wood.
			edge := x < 3 || y < 3 || x >= size-3 || y >= size-3
			brace := absInt(x-y) < 3 || absInt(x+y-(size-1)) < 3
			if edge || brace {
				r *= 0.6
				g *= 0.6
				b *= 0.6
			} else if x%plankW == 0 {
				r *= 0.75
				g *= 0.75
				b *= 0.75
			}
			img.SetRGBA(x, y, color.RGBA{clampByte(r), clampByte(g), clampByte(b), 255})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func generateBarrel(size int, rng *rand.Rand) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size-1) / 2
	staveW := size / 8
	for y := 0; y < size; y++ {
		// The silhouette bulges at the middle.
		halfWidth := half * (0.62 + 0.3*math.Sin(math.Pi*float64(y)/float64(size-1)))
		for x := 0; x < size; x++ {
			if math.Abs(float64(x)-half) > halfWidth {
				img.SetRGBA(x, y, color.RGBA{})
				continue
			}
			shade := 0.5 + 0.5*math.Sin(math.Pi*float64(x)/float64(size-1))
			n := float64(rng.Intn(9)) - 4
			r := (72 + n) * shade
			g := (46 + n*0.7) * shade
			b := (26 + n*0.5) * shade
			hoop := (y >= size/5 && y < size/5+3) || (y >= size-size/5-3 && y < size-size/5)
			if hoop {
				v := (64 + n) * shade
				img.SetRGBA(x, y, color.RGBA{clampByte(v), clampByte(v), clampByte(v * 1.05), 255})
				continue
			}
			if x%staveW == 0 {
				r *= 0.7
				g *= 0.7
				b *= 0.7
			}
			img.SetRGBA(x, y, color.RGBA{clampByte(r), clampByte(g), clampByte(b), 255})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
