package options

// ReaderOptions tunes block traversal. Zero values mean defaults.
type ReaderOptions struct {
	// Debug enables per-reader debug logging.
	Debug bool

	// PreferredBlockWidth/Height bound the sub-rectangles a block read is
	// split into. Thin strips are widened/heightened to an area-equivalent
	// shape.
	PreferredBlockWidth  int32
	PreferredBlockHeight int32
}

func NewReaderOptions(options *ReaderOptions) *ReaderOptions {

	opt := &ReaderOptions{
		PreferredBlockWidth:  64,
		PreferredBlockHeight: 64,
	}
	if options != nil {
		opt.Debug = options.Debug
		if options.PreferredBlockWidth > 0 {
			opt.PreferredBlockWidth = options.PreferredBlockWidth
		}
		if options.PreferredBlockHeight > 0 {
			opt.PreferredBlockHeight = options.PreferredBlockHeight
		}
	}
	return opt
}
