package annotate

// Option configures a Document during creation.
//
// Example:
//
//	doc := annotate.NewDocument(
//	    annotate.WithBlurBackend(annotate.ParallelBlur(0)),
//	)
type Option func(*documentOptions)

type documentOptions struct {
	tool  *Tool
	blur  BlurBackend
	fonts *FontSet
}

func defaultOptions() documentOptions {
	return documentOptions{
		blur: DefaultBlurBackend(),
	}
}

// WithTool makes the document use an existing tool, for example one built
// from a loaded ToolConfig.
func WithTool(t *Tool) Option {
	return func(o *documentOptions) {
		o.tool = t
	}
}

// WithBlurBackend selects the blur backend for effects and shadows.
func WithBlurBackend(b BlurBackend) Option {
	return func(o *documentOptions) {
		if b != nil {
			o.blur = b
		}
	}
}

// WithFontSet selects the font family used for text and number labels.
// The Go fonts are used by default.
func WithFontSet(fs *FontSet) Option {
	return func(o *documentOptions) {
		o.fonts = fs
	}
}
