package format

// FloatFormat stores one floating point word per channel, channels in
// storage order. There are no packing constraints.
type FloatFormat struct {
	WordType FloatWordType
	Channels ChannelConf
}

func (f FloatFormat) IsValid() bool {
	return f.Channels.Space != nil
}
