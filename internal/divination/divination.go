// internal/divination/divination.go
//
// Package divination simulates the Dayan (大衍, "Great Expansion")
// yarrow-stalk counting method. Three changes resolve one line, six lines
// make a hexagram. The result carries both the final figure and the full
// step-by-step record so a renderer can replay the casting afterwards.
package divination

// Line values produced by three changes. Old lines (6 and 9) transform in
// the derived hexagram; young lines carry over unchanged.
const (
	OldYin    = 6 // 老阴, broken line that becomes solid
	YoungYang = 7 // 少阳, solid line
	YoungYin  = 8 // 少阴, broken line
	OldYang   = 9 // 老阳, solid line that becomes broken
)

// Change records a single 变: the two-handed split, the one stalk hung
// aside from the right pile, the count-by-fours remainders and the running
// total after the removed stalks are set aside.
type Change struct {
	Left     int `json:"left"`
	Right    int `json:"right"`
	LeftRem  int `json:"left_rem"`
	RightRem int `json:"right_rem"`
	Removed  int `json:"removed"`
	NewTotal int `json:"new_total"`
}

// Line is the outcome of one resolved line together with the three changes
// that produced it. Index is 1-based, counted from the bottom of the figure.
type Line struct {
	Index   int      `json:"line_idx"`
	Value   int      `json:"value"`
	Changes []Change `json:"changes"`
}

// Hexagram is the pair of six-bit encodings derived from six line values.
// Index 0 of Lines is the bottom line. The binary strings read bottom line
// first; '1' is a solid line.
type Hexagram struct {
	Lines          []int  `json:"original_lines"`
	OriginalBinary string `json:"original_binary"`
	ChangedBinary  string `json:"changed_binary"`
	ChangingLines  []int  `json:"changing_lines"`
	HasChange      bool   `json:"has_change"`
}

// Result is the complete output of one casting. It is fully populated
// before Run returns and never mutated afterwards, so the interpreter and
// the renderer can consume it concurrently.
type Result struct {
	Hexagram Hexagram `json:"hex_result"`
	Log      []Line   `json:"process_log"`
}

// ValueName returns the classical name of a line value.
func ValueName(v int) string {
	switch v {
	case OldYin:
		return "老阴"
	case YoungYang:
		return "少阳"
	case YoungYin:
		return "少阴"
	case OldYang:
		return "老阳"
	default:
		return "未知"
	}
}

// Changing reports whether a line value transforms in the derived hexagram.
func Changing(v int) bool {
	return v == OldYin || v == OldYang
}
