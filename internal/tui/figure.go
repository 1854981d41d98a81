// internal/tui/figure.go
//
// Renders the finished figure: six rows drawn top line first, old lines
// marked the traditional way (x for old yin, o for old yang).

package tui

import (
	"fmt"

	"github.com/kingrea/yarrow/internal/divination"
	"github.com/kingrea/yarrow/internal/hexagrams"
)

var positionNames = [6]string{"初", "二", "三", "四", "五", "上"}

const (
	glyphYang = "—————"
	glyphYin  = "——　——"
)

// lineRow renders one figure row for the 1-based position pos.
func lineRow(pos, value int) string {
	glyph := glyphYin
	if value == divination.YoungYang || value == divination.OldYang {
		glyph = glyphYang
	}
	marker := "　"
	switch value {
	case divination.OldYin:
		marker = "x"
	case divination.OldYang:
		marker = "o"
	}
	// Odd values are yang and take 九, even values take 六.
	ordinal := "六"
	if value%2 != 0 {
		ordinal = "九"
	}
	return fmt.Sprintf("%s%s： %s %s （%s）",
		positionNames[pos-1], ordinal, glyph, marker, divination.ValueName(value))
}

// FigureLines renders the final display block: both hexagram names, the
// six rows of the original figure, and the changing-line summary.
func FigureLines(hex divination.Hexagram, interp hexagrams.Interpretation) []string {
	lines := []string{
		rule(),
		styleTitle.Render(fmt.Sprintf("【 本卦 】 %s %s", interp.Original.Symbol(), interp.Original.Title())),
	}
	if interp.Changed != nil {
		lines = append(lines,
			styleTitle.Render(fmt.Sprintf("【 之卦 】 %s %s", interp.Changed.Symbol(), interp.Changed.Title())))
	}
	lines = append(lines, rule())
	for pos := 6; pos >= 1; pos-- {
		lines = append(lines, styleFigure.Render(lineRow(pos, hex.Lines[pos-1])))
	}
	lines = append(lines, rule())
	if interp.Changed != nil {
		lines = append(lines, styleStep.Render(fmt.Sprintf("变爻 %v ｜ %s", hex.ChangingLines, interp.Guide)))
	} else {
		lines = append(lines, styleStep.Render(interp.Guide))
	}
	return lines
}
