package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"strings"
)

// SpriteSize is the edge length of generated sprites
const SpriteSize = 64

var (
	playerBody   = rgb(0x34, 0x98, 0xdb)
	playerDetail = rgb(0x29, 0x80, 0xb9)
	brickBase    = rgb(0x8b, 0x45, 0x13)
	brickFace    = rgb(0xa0, 0x52, 0x2d)
	grassBase    = rgb(0x27, 0xae, 0x60)
	grassBlade   = rgb(0x2e, 0xcc, 0x71)
	platformBase = rgb(0x7f, 0x8c, 0x8d)
	platformTop  = rgb(0x95, 0xa5, 0xa6)

	effectColors = map[string][2]color.RGBA{
		"move": {rgb(0xf1, 0xc4, 0x0f), rgb(0xf3, 0x9c, 0x12)},
		"run":  {rgb(0xe7, 0x4c, 0x3c), rgb(0xc0, 0x39, 0x2b)},
		"jump": {rgb(0x2e, 0xcc, 0x71), rgb(0x27, 0xae, 0x60)},
	}
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Placeholder generates a stand-in sprite for a key whose file failed to
// load. The result depends only on the key.
func Placeholder(key string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	rng := rand.New(rand.NewSource(seedFor(key)))

	switch {
	case strings.Contains(key, "ef"):
		drawEffect(img, key, rng)
	case key == "idle" || strings.HasPrefix(key, "move") || strings.HasPrefix(key, "run"):
		drawPlayer(img, key)
	case key == "wall":
		drawBricks(img)
	case key == "grass":
		drawGrass(img, rng)
	case key == "platform":
		fill(img, 0, 0, SpriteSize, 20, platformBase)
		fill(img, 0, 0, SpriteSize, 3, platformTop)
	}
	return img
}

func seedFor(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}

func fill(img *image.RGBA, x, y, w, h int, c color.Color) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

func drawPlayer(img *image.RGBA, key string) {
	fill(img, 0, 0, 64, 64, playerBody)
	fill(img, 16, 16, 32, 32, playerDetail)
	fill(img, 24, 8, 16, 16, playerDetail)

	switch {
	case strings.HasSuffix(key, "1"):
		fill(img, 12, 48, 12, 16, playerDetail)
		fill(img, 40, 48, 12, 16, playerDetail)
	case strings.HasSuffix(key, "2"):
		fill(img, 16, 48, 12, 16, playerDetail)
		fill(img, 36, 48, 12, 16, playerDetail)
	}
}

func drawEffect(img *image.RGBA, key string, rng *rand.Rand) {
	colors := effectColors["jump"]
	switch {
	case strings.HasPrefix(key, "move"):
		colors = effectColors["move"]
	case strings.HasPrefix(key, "run"):
		colors = effectColors["run"]
	}

	fill(img, 0, 0, 64, 64, colors[0])
	for i := 0; i < 8; i++ {
		x := rng.Intn(56) + 4
		y := rng.Intn(56) + 4
		size := rng.Intn(8) + 4
		fill(img, x, y, size, size, colors[1])
	}
}

func drawBricks(img *image.RGBA) {
	fill(img, 0, 0, 64, 64, brickBase)
	for i := 0; i < 64; i += 16 {
		for j := 0; j < 64; j += 8 {
			if (i/16+j/8)%2 == 0 {
				fill(img, i, j, 14, 6, brickFace)
			}
		}
	}
}

func drawGrass(img *image.RGBA, rng *rand.Rand) {
	fill(img, 0, 0, 64, 10, grassBase)
	for i := 0; i < 64; i += 4 {
		h := 4 + rng.Intn(4)
		fill(img, i, 10-h, 3, h, grassBlade)
	}
}
