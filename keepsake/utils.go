package keepsake

import (
	"image"
	"math"
	"os"
	"strings"

	"github.com/faiface/pixel"
)

func HSVToColor(h float64, s float64, v float64) pixel.RGBA {
	if h == 0 && s == 0 {
		return pixel.RGBA{R: v, G: v, B: v, A: 1.0}
	}

	c := s * v
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c

	if h < 1 {
		return pixel.RGBA{R: c + m, G: x + m, B: m, A: 1.0}
	} else if h < 2 {
		return pixel.RGBA{R: x + m, G: c + m, B: m, A: 1.0}
	} else if h < 3 {
		return pixel.RGBA{R: m, G: c + m, B: x + m, A: 1.0}
	} else if h < 4 {
		return pixel.RGBA{R: m, G: x + m, B: c + m, A: 1.0}
	} else if h < 5 {
		return pixel.RGBA{R: x + m, G: m, B: c + m, A: 1.0}
	}

	return pixel.RGBA{R: c + m, G: m, B: x + m, A: 1.0}
}

func loadPicture(path string) (pixel.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return pixel.PictureDataFromImage(img), nil
}

// wrapText breaks a paragraph into lines of at most width characters,
// keeping explicit newlines.
func wrapText(s string, width int) []string {
	lines := []string{}
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line = line + " " + word
			} else {
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
