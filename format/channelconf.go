package format

import "github.com/kpfaulkner/pixbuf-go/colour"

// ChannelConf is the channel count and ordering policy shared by every
// format variant. Canonical order is the color space's channels followed by
// alpha; storage order rotates alpha to the front when AlphaFirst is set,
// then reverses the whole sequence when ReverseOrder is set.
type ChannelConf struct {
	Space        *colour.ColorSpace
	HasAlpha     bool
	AlphaFirst   bool
	ReverseOrder bool
}

func (c ChannelConf) NumChannels() int32 {
	n := c.Space.NumChannels
	if c.HasAlpha {
		n++
	}
	return n
}

// Reverse toggles ReverseOrder only. Casts call this when a byte-order
// inversion implies a channel-order inversion.
func (c *ChannelConf) Reverse() {
	c.ReverseOrder = !c.ReverseOrder
}

// ChannelAt maps a storage slot to the canonical channel index stored
// there. Canonical alpha is NumChannels()-1.
func (c ChannelConf) ChannelAt(slot int32) int32 {
	n := c.NumChannels()
	if c.ReverseOrder {
		slot = n - 1 - slot
	}
	if c.HasAlpha && c.AlphaFirst {
		if slot == 0 {
			return n - 1
		}
		return slot - 1
	}
	return slot
}

// SlotOf is the inverse of ChannelAt.
func (c ChannelConf) SlotOf(channel int32) int32 {
	n := c.NumChannels()
	slot := channel
	if c.HasAlpha && c.AlphaFirst {
		if channel == n-1 {
			slot = 0
		} else {
			slot = channel + 1
		}
	}
	if c.ReverseOrder {
		slot = n - 1 - slot
	}
	return slot
}
