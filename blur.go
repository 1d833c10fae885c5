package annotate

import (
	"errors"
	"image"
	"sync"

	"github.com/gogpu/annotate/internal/stackblur"
)

// BlurBackend blurs premultiplied RGBA pixels in place with the stack blur
// algorithm. rx and ry are radii in pixels; (1, 1) is a no-op and a zero
// radius leaves that axis untouched.
//
// Every backend must match the software reference within rounding, so
// swapping backends never changes what a document looks like.
type BlurBackend interface {
	Name() string
	Blur(img *image.RGBA, rx, ry int)
}

var (
	blurMu      sync.RWMutex
	blurBackend BlurBackend = stackblur.Software{}
)

// Ensure the bundled backends satisfy the interface.
var (
	_ BlurBackend = stackblur.Software{}
	_ BlurBackend = stackblur.Parallel{}
)

// RegisterBlurBackend replaces the process-wide default blur backend used by
// documents created without WithBlurBackend.
func RegisterBlurBackend(b BlurBackend) error {
	if b == nil {
		return errors.New("annotate: blur backend must not be nil")
	}
	blurMu.Lock()
	blurBackend = b
	blurMu.Unlock()
	Logger().Info("blur backend registered", "name", b.Name())
	return nil
}

// DefaultBlurBackend returns the registered process-wide blur backend.
func DefaultBlurBackend() BlurBackend {
	blurMu.RLock()
	b := blurBackend
	blurMu.RUnlock()
	return b
}

// SoftwareBlur returns the single-threaded reference backend.
func SoftwareBlur() BlurBackend { return stackblur.Software{} }

// ParallelBlur returns a backend that splits each pass across up to workers
// goroutines. Zero workers means GOMAXPROCS.
func ParallelBlur(workers int) BlurBackend { return stackblur.Parallel{Workers: workers} }
