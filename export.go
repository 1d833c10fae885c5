package annotate

import (
	"fmt"
	"image"

	"github.com/gogpu/annotate/internal/imageio"
)

// SaveOptions configure SaveImage.
type SaveOptions struct {
	// Quality is the JPEG quality from 1 to 100. Zero selects the encoder
	// default.
	Quality int
}

// SaveImage renders the document and writes it to path, choosing the
// format from the extension: .png, .jpg/.jpeg, .bmp, .tif/.tiff or .pdf.
func (d *Document) SaveImage(path string, opts SaveOptions) error {
	if d.baseImage == nil {
		return ErrNoImage
	}
	img := d.RenderToImage()
	Logger().Debug("saving image", "path", path, "size", img.Bounds().Size())
	if err := imageio.Save(path, img, imageio.Options{Quality: opts.Quality}); err != nil {
		return fmt.Errorf("annotate: save %s: %w", path, err)
	}
	return nil
}

// LoadImage decodes the image file at path. PNG, JPEG, GIF, BMP and TIFF
// are recognized.
func LoadImage(path string) (image.Image, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("annotate: load %s: %w", path, err)
	}
	return img, nil
}
