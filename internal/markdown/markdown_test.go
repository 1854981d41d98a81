package markdown

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "结论是**能成**。", "结论是能成。"},
		{"bold underscore", "__很顺利__", "很顺利"},
		{"italic", "卦象*偏吉*", "卦象偏吉"},
		{"heading", "# 一、结论\n能成。", "一、结论\n能成。"},
		{"nested heading", "结论\n### 原因\n如下", "结论\n原因\n如下"},
		{"inline code", "引用`元亨利贞`四字", "引用元亨利贞四字"},
		{"code block dropped", "前```code here```后", "前后"},
		{"plain untouched", "依据卦辞，此事可成。", "依据卦辞，此事可成。"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
