// internal/hexagrams/interpret.go
//
// Turns a casting result into the structured reading handed to the prompt
// builder. The which-text-to-read rule follows the classical convention
// keyed by how many lines changed.

package hexagrams

import (
	"fmt"
	"strings"

	"github.com/kingrea/yarrow/internal/divination"
)

// Interpretation packages everything the prompt builder quotes: both
// hexagram records, the changing-line positions and the verdict rule.
// Changed is nil when no line moved.
type Interpretation struct {
	Original      Hexagram
	Changed       *Hexagram
	ChangingLines []int
	Guide         string
	OriginalText  string
	ChangedText   string
}

// verdict rules by number of changing lines, 0 through 6.
var guides = [7]string{
	"无变爻，以本卦卦辞断之。",
	"一爻变，以本卦变爻爻辞断之。",
	"二爻变，以本卦两变爻爻辞断之，以上爻为主。",
	"三爻变，以本卦及之卦卦辞合断，本卦为贞，之卦为悔。",
	"四爻变，以之卦两不变爻爻辞断之，以下爻为主。",
	"五爻变，以之卦不变爻爻辞断之。",
	"六爻皆变，乾坤以用九用六断之，余卦以之卦卦辞断之。",
}

// Interpret resolves both hexagrams of a finished casting.
func Interpret(res divination.Result) (Interpretation, error) {
	hex := res.Hexagram
	original, err := Lookup(hex.OriginalBinary)
	if err != nil {
		return Interpretation{}, fmt.Errorf("hexagrams: original hexagram: %w", err)
	}

	out := Interpretation{
		Original:      original,
		ChangingLines: append([]int(nil), hex.ChangingLines...),
		Guide:         guides[len(hex.ChangingLines)],
		OriginalText:  hexagramText(original),
	}

	if hex.HasChange {
		changed, err := Lookup(hex.ChangedBinary)
		if err != nil {
			return Interpretation{}, fmt.Errorf("hexagrams: changed hexagram: %w", err)
		}
		out.Changed = &changed
		out.ChangedText = hexagramText(changed)
	}
	return out, nil
}

// Summary renders the 起卦结果 block quoted inside the prompt.
func (i Interpretation) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "本卦: %s", i.Original.Title())
	if i.Changed != nil {
		fmt.Fprintf(&b, "\n之卦: %s", i.Changed.Title())
	}
	if len(i.ChangingLines) > 0 {
		positions := make([]string, len(i.ChangingLines))
		for idx, pos := range i.ChangingLines {
			positions[idx] = fmt.Sprintf("%d", pos)
		}
		fmt.Fprintf(&b, "\n变爻: 第%s爻", strings.Join(positions, "、"))
	}
	fmt.Fprintf(&b, "\n断法: %s", i.Guide)
	return b.String()
}

func hexagramText(h Hexagram) string {
	return fmt.Sprintf("%s %s（%s / %s）\n卦辞：%s", h.Symbol(), h.Title(), h.Lower, h.Upper, h.Judgment)
}
