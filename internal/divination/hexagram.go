// internal/divination/hexagram.go
//
// Pure mapping from six line values to the original and derived hexagram
// encodings. No randomness enters here.

package divination

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLines indicates BuildHexagram was handed anything other than six
// values in {6,7,8,9}. The engine never produces such input; hitting this
// means a caller bug.
var ErrBadLines = errors.New("divination: hexagram needs six line values in {6,7,8,9}")

// BuildHexagram derives the binary encodings and changing-line positions
// from six line values, bottom line first. The input slice is copied, not
// retained.
func BuildHexagram(lines []int) (Hexagram, error) {
	if len(lines) != linesPerHexagram {
		return Hexagram{}, fmt.Errorf("%w: got %d values", ErrBadLines, len(lines))
	}

	var original, changed strings.Builder
	changing := []int{}
	for i, v := range lines {
		switch v {
		case OldYin:
			// Old yin is drawn broken but flips to solid.
			original.WriteByte('0')
			changed.WriteByte('1')
			changing = append(changing, i+1)
		case YoungYang:
			original.WriteByte('1')
			changed.WriteByte('1')
		case YoungYin:
			original.WriteByte('0')
			changed.WriteByte('0')
		case OldYang:
			// Old yang is drawn solid but flips to broken.
			original.WriteByte('1')
			changed.WriteByte('0')
			changing = append(changing, i+1)
		default:
			return Hexagram{}, fmt.Errorf("%w: got %d at position %d", ErrBadLines, v, i+1)
		}
	}

	return Hexagram{
		Lines:          append([]int(nil), lines...),
		OriginalBinary: original.String(),
		ChangedBinary:  changed.String(),
		ChangingLines:  changing,
		HasChange:      len(changing) > 0,
	}, nil
}
