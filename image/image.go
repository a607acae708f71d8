package image

import (
	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// TransferInfo describes the representation an image hands pixels over
// in: the component representation, the color space, and whether an
// alpha channel is present. Component values are alpha premultiplied.
type TransferInfo struct {
	Repr     colour.CompRepr
	Space    *colour.ColorSpace
	HasAlpha bool
}

func (t TransferInfo) NumChannels() int32 {
	n := t.Space.NumChannels
	if t.HasAlpha {
		n++
	}
	return n
}

// Image is a synchronous source of pixel data. Read fills the tray with
// the rectangle starting at pos, in the image's transfer representation
// and canonical channel order (alpha last when present). The rectangle
// must lie fully inside the image; callers enforce bounds.
//
// GetPalette returns nil for direct-color images. For indirect-color
// images Read yields single-channel palette indices and GetTransferInfo
// describes the palette's entries, not the indices.
type Image interface {
	GetSize() util.Dimension
	GetTransferInfo() TransferInfo
	GetPalette() Image
	Read(pos util.Point, tray *Tray) error
}
