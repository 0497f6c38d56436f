package ui

import (
	"hash/fnv"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"slider/catalog"
	"slider/log"
)

// maxSourceEdge bounds decoded sources so a full-resolution photo is held in
// memory only once, already shrunk.
const maxSourceEdge = 512

// maxScaled is the number of scaled results kept before the cache resets.
const maxScaled = 64

type pictureKey struct {
	ref  string
	w, h int
}

// Pictures loads image references and scales them to cell rectangles.
// Results are cached per reference and size. Safe for concurrent use.
type Pictures struct {
	mu      sync.Mutex
	sources map[string]image.Image
	scaled  map[pictureKey]image.Image
}

// NewPictures returns an empty picture cache.
func NewPictures() *Pictures {
	return &Pictures{
		sources: make(map[string]image.Image),
		scaled:  make(map[pictureKey]image.Image),
	}
}

// Get returns ref scaled to cover a w x h cell rectangle, that is w x 2h
// pixels. A reference that cannot be decoded falls back to a placeholder.
func (p *Pictures) Get(ref string, w, h int) image.Image {
	w, h = max(1, w), max(1, h)
	key := pictureKey{ref: ref, w: w, h: h}

	p.mu.Lock()
	defer p.mu.Unlock()

	if img, ok := p.scaled[key]; ok {
		return img
	}
	if len(p.scaled) >= maxScaled {
		p.scaled = make(map[pictureKey]image.Image)
	}

	var img image.Image
	if src := p.source(ref); src != nil {
		img = cover(src, w, 2*h)
	} else {
		img = Placeholder(ref, w, 2*h)
	}
	p.scaled[key] = img
	return img
}

// source returns the decoded, downscaled image for a file reference, or nil
// for builtin and undecodable references.
func (p *Pictures) source(ref string) image.Image {
	if strings.HasPrefix(ref, catalog.BuiltinPrefix) {
		return nil
	}
	if img, ok := p.sources[ref]; ok {
		return img
	}
	img, err := decodeFile(ref)
	if err != nil {
		log.WarningLog.Printf("picture %s: %v", ref, err)
		p.sources[ref] = nil
		return nil
	}
	p.sources[ref] = img
	return img
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return shrink(img, maxSourceEdge), nil
}

// shrink scales img down so its longer edge is at most edge pixels.
func shrink(img image.Image, edge int) image.Image {
	b := img.Bounds()
	long := max(b.Dx(), b.Dy())
	if long <= edge {
		return img
	}
	w := max(1, b.Dx()*edge/long)
	h := max(1, b.Dy()*edge/long)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// cover scales src to fill w x h, cropping the overflowing axis around the
// center.
func cover(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	crop := b
	if b.Dx()*h > b.Dy()*w {
		cw := max(1, b.Dy()*w/h)
		crop.Min.X = b.Min.X + (b.Dx()-cw)/2
		crop.Max.X = crop.Min.X + cw
	} else {
		ch := max(1, b.Dx()*h/w)
		crop.Min.Y = b.Min.Y + (b.Dy()-ch)/2
		crop.Max.Y = crop.Min.Y + ch
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// Placeholder draws a diagonal gradient whose two colours are derived from
// the reference, so each builtin entry looks distinct and stable.
func Placeholder(ref string, w, h int) image.Image {
	h32 := fnv.New32a()
	h32.Write([]byte(ref))
	sum := h32.Sum32()

	from := hueColor(float64(sum%360), 0.55)
	to := hueColor(float64((sum/360)%360), 0.25)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	span := float64(max(1, w+h-2))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := float64(x+y) / span
			img.Set(x, y, mix(from, to, t))
		}
	}
	return img
}

// hueColor returns a fully saturated colour at hue degrees scaled to value v.
func hueColor(hue, v float64) color.RGBA {
	sector := int(hue/60) % 6
	f := hue/60 - float64(int(hue/60))
	hi := uint8(255 * v)
	up := uint8(255 * v * f)
	down := uint8(255 * v * (1 - f))

	switch sector {
	case 0:
		return color.RGBA{R: hi, G: up, A: 0xFF}
	case 1:
		return color.RGBA{R: down, G: hi, A: 0xFF}
	case 2:
		return color.RGBA{G: hi, B: up, A: 0xFF}
	case 3:
		return color.RGBA{G: down, B: hi, A: 0xFF}
	case 4:
		return color.RGBA{R: up, B: hi, A: 0xFF}
	default:
		return color.RGBA{R: hi, B: down, A: 0xFF}
	}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}
