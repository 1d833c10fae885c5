package annotate

import (
	"errors"

	"github.com/gogpu/annotate/internal/imageio"
)

// Errors returned by operations that touch the outside world. Document
// edits never fail; they become no-ops instead.
var (
	// ErrNoImage is returned when exporting a document without a base image.
	ErrNoImage = errors.New("annotate: document has no image")

	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = imageio.ErrUnsupportedFormat

	// ErrInvalidConfig is returned for tool configuration values out of range.
	ErrInvalidConfig = errors.New("annotate: invalid tool configuration")
)
