package reader

import (
	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// FalloffMode is the policy for pixels requested outside the image.
type FalloffMode int32

const (
	// FalloffBackground fills out-of-bounds pixels with the background color.
	FalloffBackground FalloffMode = iota
	// FalloffEdge replicates the nearest image row or column.
	FalloffEdge
	// FalloffRepeat tiles the image periodically.
	FalloffRepeat
)

func (m FalloffMode) String() string {
	switch m {
	case FalloffBackground:
		return "background"
	case FalloffEdge:
		return "edge"
	case FalloffRepeat:
		return "repeat"
	}
	return "unknown"
}

// axisSpan describes one axis of the progenitor sub-box: the part of an
// out-of-bounds read that is sourced from the image. Repeat mode can wrap
// around the image boundary, giving a second segment; the two segments
// never source the same image coordinate and together never exceed the
// image length.
type axisSpan struct {
	src1   int32
	len1   int32
	src2   int32
	len2   int32
	dst    int32
	length int32
}

type axisSeg struct {
	src int32
	dst int32
	len int32
}

func (s axisSpan) segments() []axisSeg {
	segs := []axisSeg{{src: s.src1, dst: s.dst, len: s.len1}}
	if s.len2 > 0 {
		segs = append(segs, axisSeg{src: s.src2, dst: s.dst + s.len1, len: s.len2})
	}
	return segs
}

func computeAxisSpan(pos int32, boxLen int32, imageLen int32, mode FalloffMode) axisSpan {
	switch mode {
	case FalloffRepeat:
		need := util.Min(boxLen, imageLen)
		src := util.FloorMod(pos, imageLen)
		len1 := util.Min(need, imageLen-src)
		return axisSpan{src1: src, len1: len1, src2: 0, len2: need - len1, dst: 0, length: need}
	default:
		start := util.Max(pos, int32(0))
		end := util.Min(pos+boxLen, imageLen)
		if end > start {
			return axisSpan{src1: start, len1: end - start, dst: start - pos, length: end - start}
		}
		if mode == FalloffBackground {
			return axisSpan{}
		}
		// edge mode, box fully outside: nearest single row/column
		src := util.IfThenElse(pos >= imageLen, imageLen-1, int32(0))
		return axisSpan{src1: src, len1: 1, dst: util.Clamp(-pos, 0, boxLen-1), length: 1}
	}
}

// readE fills the tray from a rectangle that may extend outside the image.
// The in-bounds portion (the progenitor, up to four quadrant reads when
// repeat wraps) is read first, then the remainder is synthesized axis by
// axis: horizontal fill over the progenitor rows, then vertical fill of
// whole rows. The result is the same whichever axis went first.
func (r *Reader) readE(pos util.Point, tray *image.Tray, repr colour.CompRepr, wantAlpha bool) error {
	box := util.Box{Pos: pos, Size: util.Dimension{Width: tray.Width, Height: tray.Height}}
	if box.IsEmpty() {
		return nil
	}
	if box.ContainedIn(r.size) {
		return r.read(pos, tray, repr, wantAlpha)
	}

	background := growCompSlice(colour.CompSlice{}, repr.IsFloat(), tray.NumChannels)
	if err := r.GetColor(Background, background, repr, r.info.Space, wantAlpha); err != nil {
		return err
	}
	if r.size.IsEmpty() {
		fillRect(tray, 0, 0, tray.Height, tray.Width, repr, background)
		return nil
	}

	horz := computeAxisSpan(pos.X, tray.Width, r.size.Width, r.falloffHorz)
	vert := computeAxisSpan(pos.Y, tray.Height, r.size.Height, r.falloffVert)
	if horz.length == 0 || vert.length == 0 {
		fillRect(tray, 0, 0, tray.Height, tray.Width, repr, background)
		return nil
	}

	for _, h := range horz.segments() {
		for _, v := range vert.segments() {
			sub := tray.SubTray(util.NewBox(v.dst, h.dst, v.len, h.len))
			if err := r.read(util.Point{X: h.src, Y: v.src}, sub, repr, wantAlpha); err != nil {
				return err
			}
		}
	}

	r.fillHorz(tray, horz, vert.dst, vert.length, repr, background)
	r.fillVert(tray, vert, repr, background)
	return nil
}

// fillHorz completes the progenitor rows to the full tray width.
func (r *Reader) fillHorz(tray *image.Tray, span axisSpan, rowStart int32, rowCount int32,
	repr colour.CompRepr, background colour.CompSlice) {
	end := span.dst + span.length
	switch r.falloffHorz {
	case FalloffBackground:
		fillRect(tray, rowStart, 0, rowCount, span.dst, repr, background)
		fillRect(tray, rowStart, end, rowCount, tray.Width-end, repr, background)
	case FalloffEdge:
		for row := rowStart; row < rowStart+rowCount; row++ {
			for col := int32(0); col < span.dst; col++ {
				copyPixel(tray, row, span.dst, row, col)
			}
			for col := end; col < tray.Width; col++ {
				copyPixel(tray, row, end-1, row, col)
			}
		}
	case FalloffRepeat:
		// span starts at the tray origin and covers one full period
		for row := rowStart; row < rowStart+rowCount; row++ {
			for col := end; col < tray.Width; col++ {
				copyPixel(tray, row, col-r.size.Width, row, col)
			}
		}
	}
}

// fillVert completes the remaining rows from the already filled strip.
func (r *Reader) fillVert(tray *image.Tray, span axisSpan, repr colour.CompRepr, background colour.CompSlice) {
	end := span.dst + span.length
	switch r.falloffVert {
	case FalloffBackground:
		fillRect(tray, 0, 0, span.dst, tray.Width, repr, background)
		fillRect(tray, end, 0, tray.Height-end, tray.Width, repr, background)
	case FalloffEdge:
		for row := int32(0); row < span.dst; row++ {
			copyRow(tray, span.dst, row)
		}
		for row := end; row < tray.Height; row++ {
			copyRow(tray, end-1, row)
		}
	case FalloffRepeat:
		for row := end; row < tray.Height; row++ {
			copyRow(tray, row-r.size.Height, row)
		}
	}
}

func fillRect(tray *image.Tray, y int32, x int32, height int32, width int32,
	repr colour.CompRepr, comps colour.CompSlice) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			copyComps(repr, comps, tray.Comps(row, col), tray.NumChannels)
		}
	}
}

func copyPixel(tray *image.Tray, fromY int32, fromX int32, toY int32, toX int32) {
	from := tray.PixOffset(fromY, fromX)
	to := tray.PixOffset(toY, toX)
	n := int(tray.NumChannels)
	if tray.IsFloat() {
		copy(tray.FloatBuffer[to:to+n], tray.FloatBuffer[from:from+n])
	} else {
		copy(tray.IntBuffer[to:to+n], tray.IntBuffer[from:from+n])
	}
}

func copyRow(tray *image.Tray, fromY int32, toY int32) {
	from := tray.PixOffset(fromY, 0)
	to := tray.PixOffset(toY, 0)
	n := int(tray.Width) * int(tray.HorzStride)
	if tray.IsFloat() {
		copy(tray.FloatBuffer[to:to+n], tray.FloatBuffer[from:from+n])
	} else {
		copy(tray.IntBuffer[to:to+n], tray.IntBuffer[from:from+n])
	}
}
