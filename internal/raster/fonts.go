package raster

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"wallpaper/internal/assets"
	"wallpaper/internal/scene"
)

// fontSet holds every parsed font. Parsed fonts are immutable and shared
// between renders; faces are created per render.
type fontSet struct {
	sansRegular *truetype.Font
	sansMedium  *truetype.Font
	sansBold    *truetype.Font
	serif       *truetype.Font
	serifBold   *truetype.Font
	arabic      *truetype.Font

	// shaping keeps per-face caches, so RTL runs are drawn one at a time.
	shapingMu sync.Mutex
	shaping   *gotext.Face
}

var (
	fontsOnce sync.Once
	fonts     *fontSet
	fontsErr  error
)

// loadFonts parses the embedded fonts on first use.
func loadFonts() (*fontSet, error) {
	fontsOnce.Do(func() {
		fonts, fontsErr = parseFonts()
	})
	return fonts, fontsErr
}

func parseFonts() (*fontSet, error) {
	fs := &fontSet{}
	for _, f := range []struct {
		name string
		data []byte
		dst  **truetype.Font
	}{
		{"go regular", goregular.TTF, &fs.sansRegular},
		{"go medium", gomedium.TTF, &fs.sansMedium},
		{"go bold", gobold.TTF, &fs.sansBold},
		{"dejavu serif", assets.DejaVuSerif, &fs.serif},
		{"dejavu serif bold", assets.DejaVuSerifBold, &fs.serifBold},
		{"dejavu sans", assets.DejaVuSans, &fs.arabic},
	} {
		parsed, err := truetype.Parse(f.data)
		if err != nil {
			return nil, fmt.Errorf("raster: parse %s: %w", f.name, err)
		}
		*f.dst = parsed
	}
	face, err := gotext.ParseTTF(bytes.NewReader(assets.DejaVuSans))
	if err != nil {
		return nil, fmt.Errorf("raster: parse shaping font: %w", err)
	}
	fs.shaping = face
	return fs, nil
}

func (fs *fontSet) pick(f scene.Font) *truetype.Font {
	switch f.Family {
	case scene.FamilySerif:
		if f.Bold() {
			return fs.serifBold
		}
		return fs.serif
	case scene.FamilyArabic:
		return fs.arabic
	default:
		switch {
		case f.Weight >= 650:
			return fs.sansBold
		case f.Weight >= 550:
			return fs.sansMedium
		}
		return fs.sansRegular
	}
}

type faceKey struct {
	family scene.Family
	weight int
	size   float64
}

// faceCache is owned by a single render.
type faceCache struct {
	fonts *fontSet
	faces map[faceKey]font.Face
}

func (c *faceCache) face(f scene.Font, scale float64) font.Face {
	key := faceKey{family: f.Family, weight: f.Weight, size: f.Size * scale}
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(c.fonts.pick(f), &truetype.Options{Size: key.size, Hinting: font.HintingNone})
	c.faces[key] = face
	return face
}
