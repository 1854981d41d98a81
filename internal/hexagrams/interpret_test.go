package hexagrams

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kingrea/yarrow/internal/divination"
)

func resultFromLines(t *testing.T, lines []int) divination.Result {
	t.Helper()
	hex, err := divination.BuildHexagram(lines)
	require.NoError(t, err)
	return divination.Result{Hexagram: hex}
}

func TestInterpretWithoutChange(t *testing.T) {
	// All young yang: hexagram 1, nothing moves.
	interp, err := Interpret(resultFromLines(t, []int{7, 7, 7, 7, 7, 7}))
	require.NoError(t, err)
	require.Equal(t, 1, interp.Original.Number)
	require.Nil(t, interp.Changed)
	require.Empty(t, interp.ChangingLines)
	require.Equal(t, guides[0], interp.Guide)
	require.Contains(t, interp.OriginalText, "元亨利贞")
	require.Empty(t, interp.ChangedText)
}

func TestInterpretWithChangingLines(t *testing.T) {
	// Old yang in position 1 flips 泰 (111000) into 升 (011000).
	interp, err := Interpret(resultFromLines(t, []int{9, 7, 7, 8, 8, 8}))
	require.NoError(t, err)
	require.Equal(t, 11, interp.Original.Number)
	require.NotNil(t, interp.Changed)
	require.Equal(t, 46, interp.Changed.Number)
	require.Equal(t, []int{1}, interp.ChangingLines)
	require.Equal(t, guides[1], interp.Guide)

	summary := interp.Summary()
	require.Contains(t, summary, "本卦: 泰卦（第11卦）")
	require.Contains(t, summary, "之卦: 升卦（第46卦）")
	require.Contains(t, summary, "变爻: 第1爻")
}

func TestInterpretAllLinesChanging(t *testing.T) {
	// Six old yang lines: 乾 becomes 坤.
	interp, err := Interpret(resultFromLines(t, []int{9, 9, 9, 9, 9, 9}))
	require.NoError(t, err)
	require.Equal(t, 1, interp.Original.Number)
	require.Equal(t, 2, interp.Changed.Number)
	require.Equal(t, guides[6], interp.Guide)
	require.Contains(t, interp.Guide, "用九用六")
}
