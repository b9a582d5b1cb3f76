package palette

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"masterlist/common"
)

// maximum number of pixels sampled by kmeans
const kmeansSamples = 12000

// Derive computes palette matching background image img.
func Derive(img image.Image, source common.PaletteSource, cellAlpha, headerAlpha uint8) Palette {
	return FromBase(BaseColor(img, source), cellAlpha, headerAlpha)
}

// BaseColor returns color representing img according to source. Dominant and
// kmeans fall back to mean when they cannot produce a result.
func BaseColor(img image.Image, source common.PaletteSource) RGB {
	switch source {
	case common.PaletteSourceDominant:
		if c, ok := dominant(img); ok {
			return c
		}
	case common.PaletteSourceKmeans:
		if c, ok := kmeansCenter(img); ok {
			return c
		}
	}
	return Mean(img)
}

// Mean returns arithmetic mean of img pixels ignoring alpha.
func Mean(img image.Image) RGB {
	b := img.Bounds()
	n := uint64(b.Dx()) * uint64(b.Dy())
	if n == 0 {
		return Black
	}

	var r, g, bl uint64
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):nrgba.PixOffset(b.Max.X, y)]
			for i := 0; i < len(row); i += 4 {
				r += uint64(row[i])
				g += uint64(row[i+1])
				bl += uint64(row[i+2])
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				r += uint64(c.R)
				g += uint64(c.G)
				bl += uint64(c.B)
			}
		}
	}
	total := float64(n)
	return RGB{clamp(float64(r) / total), clamp(float64(g) / total), clamp(float64(bl) / total)}
}

func dominant(img image.Image) (RGB, bool) {
	b := img.Bounds()
	if b.Empty() {
		return RGB{}, false
	}
	c := dominantcolor.Find(img)
	return RGB{c.R, c.G, c.B}, true
}

// kmeansCenter partitions subsampled pixels in CIE Lab space and returns
// center of the most populated cluster.
func kmeansCenter(img image.Image) (RGB, bool) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return RGB{}, false
	}

	step := 1
	if width*height > kmeansSamples {
		step = int(math.Sqrt(float64(width*height)/float64(kmeansSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, kmeansSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			l, a, bb := colorful.Color{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
			}.Lab()
			dataset = append(dataset, clusters.Coordinates{l, a, bb})
		}
	}

	k := min(4, len(dataset))
	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return RGB{}, false
	}
	biggest := slices.MaxFunc(cc, func(a, b clusters.Cluster) int {
		return len(a.Observations) - len(b.Observations)
	})
	if len(biggest.Center) < 3 {
		return RGB{}, false
	}
	r, g, bl := colorful.Lab(biggest.Center[0], biggest.Center[1], biggest.Center[2]).Clamped().RGB255()
	return RGB{r, g, bl}, true
}
