// internal/tui/script.go
//
// Builds the narration script from an already-finished casting. The
// engine computes everything up front; the script only replays the record
// with human pacing, so narration speed never influences the result.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingrea/yarrow/internal/divination"
	"github.com/kingrea/yarrow/internal/hexagrams"
)

// Frame is one narration line. Typed frames are revealed rune by rune;
// Pause is the rest after the line completes.
type Frame struct {
	Text  string
	Pause time.Duration
	Typed bool
}

// BuildScript turns a casting and its reading into the full narration.
func BuildScript(res divination.Result, interp hexagrams.Interpretation) []Frame {
	frames := []Frame{
		{Text: rule()},
		{Text: styleTitle.Render("          大 衍 筮 法 · 起 卦")},
		{Text: rule()},
		// Typed frames stay unstyled; the model styles them at render
		// time so partial reveals never cut an escape sequence.
		{Text: "大衍之数五十，其用四十有九。", Typed: true},
		{Text: "分而为二以象两，挂一以象三，", Typed: true},
		{Text: "揲之以四以象四时，归奇于扐以象闰。", Typed: true, Pause: time.Second},
	}

	for _, line := range res.Log {
		frames = append(frames, lineFrames(line)...)
	}

	frames = append(frames, Frame{Text: ""})
	for _, text := range FigureLines(res.Hexagram, interp) {
		frames = append(frames, Frame{Text: text})
	}
	return frames
}

func lineFrames(line divination.Line) []Frame {
	pos := positionNames[line.Index-1]
	frames := []Frame{
		{Text: ""},
		{Text: styleTitle.Render(fmt.Sprintf("——— 正在演算：%s爻 ———", pos)), Pause: 300 * time.Millisecond},
	}

	total := divination.PoolSize
	for i, c := range line.Changes {
		frames = append(frames,
			Frame{Text: styleStep.Render(fmt.Sprintf("  〈 第 %d 爻 · 第 %d 变 〉", line.Index, i+1))},
			Frame{
				Text:  styleStep.Render(fmt.Sprintf("    [分二]  左手 %d ｜ 右手 %d （总 %d）", c.Left, c.Right, total)),
				Pause: 300 * time.Millisecond,
			},
			Frame{Text: styleStep.Render("    [挂一]  取右一策，挂于左手小指")},
			Frame{Text: styleStep.Render(countRow("左", c.Left, c.LeftRem)), Pause: 200 * time.Millisecond},
			Frame{Text: styleStep.Render(countRow("右", c.Right-1, c.RightRem)), Pause: 200 * time.Millisecond},
			Frame{Text: styleStep.Render(fmt.Sprintf("    [归奇]  挂1 ＋ 左余%d ＋ 右余%d ＝ 去 %d 策", c.LeftRem, c.RightRem, c.Removed))},
			Frame{
				Text:  styleStep.Render(fmt.Sprintf("    [结余]  当前剩余 %d 策", c.NewTotal)),
				Pause: 500 * time.Millisecond,
			},
		)
		total = c.NewTotal
	}

	verdict := divination.ValueName(line.Value)
	change := "不变"
	if divination.Changing(line.Value) {
		change = "变"
	}
	frames = append(frames, Frame{
		Text: styleVerdict.Render(fmt.Sprintf("  ⟹ %s爻定数：%d ÷ 4 ＝ %d，%s（%s）",
			pos, total, line.Value, verdict, change)),
		Pause: time.Second,
	})
	return frames
}

// countRow shows the count-by-fours as one dot per group of four removed.
// An empty pile still counts as a full remainder of four, so the group
// count can go negative on paper; clamp it.
func countRow(hand string, count, remainder int) string {
	groups := (count - remainder) / 4
	if groups < 0 {
		groups = 0
	}
	dots := strings.Repeat(".", groups)
	return fmt.Sprintf("    [揲四]  %s手计数 %s 余 %d 策", hand, dots, remainder)
}
