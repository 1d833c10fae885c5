// Package imageio loads base images and writes composited results.
//
// Decoding recognizes PNG, JPEG, GIF, BMP and TIFF. Encoding picks the
// format from the file extension and additionally supports single page PDF
// documents sized to the image.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Errors.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyImage is returned when encoding an image without pixels.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// Format is an output file format.
type Format int

// Output formats.
const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	PDF
)

// String returns the lower case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case PDF:
		return "pdf"
	}
	return "unknown"
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Options controls encoding.
type Options struct {
	// Quality is the JPEG quality, 1-100. Zero selects 90.
	Quality int
}

// Load decodes the image stored at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

// ToRGBA returns img as premultiplied RGBA with its origin at (0, 0).
// An *image.RGBA already at the origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Save encodes img into the file at path using the format implied by its
// extension.
func Save(path string, img image.Image, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, format, img, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, format Format, img image.Image, opts Options) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		q := opts.Quality
		if q == 0 {
			q = 90
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: max(1, min(q, 100))})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case PDF:
		err = encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", format, err)
	}
	return nil
}

// encodePDF writes a one page document whose page is exactly the image,
// one point per pixel.
func encodePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("annotated", opts, &buf)
	pdf.ImageOptions("annotated", 0, 0, wd, ht, false, opts, 0, "")
	return pdf.Output(w)
}
