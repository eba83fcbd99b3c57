// Package imageio adapts the standard library's image codecs (plus BMP via
// golang.org/x/image/bmp, which the standard library lacks) to qowi.Image.
// It carries no codec logic of its own: it only reshapes pixels between
// Go's image.Image interface and the flat row-major Pix layout qowi.Encode
// and qowi.Decode operate on.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"

	"github.com/extrafox/qowi"
)

// Decode sniffs and decodes a PNG, JPEG, GIF, or BMP source and converts it
// into a *qowi.Image. The channel count is inferred from the source's color
// model: gray images become 1 channel, RGB-family models become 3, and
// models carrying alpha (NRGBA, RGBA, and their 64-bit variants) become 4.
func Decode(r io.Reader) (*qowi.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		// The bmp import registers BMP with image.Decode, so a BMP source is
		// normally decoded above; this second attempt reads whatever bytes
		// image.Decode left unread in r.
		bmpSrc, bmpErr := bmp.Decode(r)
		if bmpErr != nil {
			return nil, fmt.Errorf("imageio: decode: %w", err)
		}
		src = bmpSrc
	}
	return fromImage(src)
}

// fromImage copies src's pixels into a qowi.Image, choosing a channel count
// from src's color model.
func fromImage(src image.Image) (*qowi.Image, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	channels := channelsFor(src.ColorModel())

	img, err := qowi.NewImage(width, height, channels)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst := img.At(y, x)
			writePixel(dst, src.At(bounds.Min.X+x, bounds.Min.Y+y), channels)
		}
	}
	return img, nil
}

func channelsFor(model color.Model) int {
	switch model {
	case color.GrayModel:
		return 1
	case color.Gray16Model:
		return 1
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model:
		return 4
	default:
		return 3
	}
}

func writePixel(dst []uint8, c color.Color, channels int) {
	switch channels {
	case 1:
		g := color.GrayModel.Convert(c).(color.Gray)
		dst[0] = g.Y
	case 3:
		r, g, b, _ := c.RGBA()
		dst[0] = uint8(r >> 8)
		dst[1] = uint8(g >> 8)
		dst[2] = uint8(b >> 8)
	case 4:
		r, g, b, a := c.RGBA()
		dst[0] = uint8(r >> 8)
		dst[1] = uint8(g >> 8)
		dst[2] = uint8(b >> 8)
		dst[3] = uint8(a >> 8)
	}
}

// Encode writes img to w in the given format, "png" or "bmp". JPEG is
// deliberately unsupported as an output format: re-encoding a decoded
// image as JPEG would silently introduce lossy compression on top of
// whatever precision/threshold loss qowi.Encode already applied.
func Encode(w io.Writer, format string, img *qowi.Image) error {
	src := toImage(img)
	switch format {
	case "png":
		return png.Encode(w, src)
	case "bmp":
		return bmp.Encode(w, src)
	default:
		return fmt.Errorf("imageio: unsupported output format %q (want \"png\" or \"bmp\")", format)
	}
}

// toImage builds a standard library image.Image backed by img's pixels,
// choosing the narrowest stdlib image type that matches img.Channels.
func toImage(img *qowi.Image) image.Image {
	rect := image.Rect(0, 0, img.Width, img.Height)
	switch img.Channels {
	case 1:
		dst := image.NewGray(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				px := img.At(y, x)
				dst.SetGray(x, y, color.Gray{Y: px[0]})
			}
		}
		return dst
	case 4:
		dst := image.NewNRGBA(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				px := img.At(y, x)
				dst.SetNRGBA(x, y, color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]})
			}
		}
		return dst
	default:
		dst := image.NewNRGBA(rect)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				px := img.At(y, x)
				var c color.NRGBA
				if img.Channels >= 3 {
					c = color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
				} else {
					c = color.NRGBA{R: px[0], G: px[0], B: px[0], A: 255}
				}
				dst.SetNRGBA(x, y, c)
			}
		}
		return dst
	}
}
