package format

// A cast reinterprets the memory described by one format under another
// format variant and/or word type, never moving data. Two forms exist:
//
//   - relabel: the target word type is the origin word type (or the origin
//     is already byte-wide and the target is WordByte). The format is
//     re-expressed under the target variant with derived quantities
//     recomputed.
//   - byte split: the origin word is wider than a byte and the target is
//     WordByte. Each word disaggregates into its constituent bytes in the
//     word type's native byte order, all word-count multipliers scale by
//     the byte count, and the new format's word order becomes that native
//     byte order. This form carries per-pair side conditions ensuring no
//     bit run would have to move.
//
// Casting to any other word type always fails. Casting from an invalid
// origin panics.
type castForm int32

const (
	castNone castForm = iota
	castRelabel
	castByteSplit
)

func classifyCast(origin WordType, target WordType) castForm {
	if target == origin || (origin.BytesPerWord() == 1 && target == WordByte) {
		return castRelabel
	}
	if origin.BytesPerWord() > 1 && target == WordByte {
		return castByteSplit
	}
	return castNone
}

// memWordIndex maps a significance-ordered word index inside a channel or
// compound to its memory position.
func memWordIndex(order Endianness, sigIndex int32, numWords int32) int32 {
	if order == LittleEndian {
		return sigIndex
	}
	return numWords - 1 - sigIndex
}

// fitChannelOrder searches the channel configurations reachable from conf
// by flipping ReverseOrder and/or AlphaFirst for one whose storage order
// lists exactly the canonical channels in want. Tie-break precedence:
// unchanged, reversal only, alpha-side switch only, both.
func fitChannelOrder(conf ChannelConf, want []int32) (ChannelConf, bool) {
	reversed := conf
	reversed.Reverse()
	alphaSwitched := conf
	alphaSwitched.AlphaFirst = !alphaSwitched.AlphaFirst
	both := reversed
	both.AlphaFirst = !both.AlphaFirst

	for _, c := range []ChannelConf{conf, reversed, alphaSwitched, both} {
		if channelOrderMatches(c, want) {
			return c, true
		}
	}
	return conf, false
}

func channelOrderMatches(conf ChannelConf, want []int32) bool {
	for slot := int32(0); slot < int32(len(want)); slot++ {
		if conf.ChannelAt(slot) != want[slot] {
			return false
		}
	}
	return true
}
