// internal/prompt/prompt.go
//
// Package prompt assembles the system and user prompts sent to the
// inference service. The register is deliberately colloquial: the model is
// told to answer like a street fortune-teller, not a scholar, and to quote
// the classical text it leans on.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kingrea/yarrow/internal/hexagrams"
)

// System is the fixed system prompt for the divination persona.
const System = `你是一位精通周易的算命先生，擅长给人占卜吉凶。
要求：
1. 基于卦象给出明确的结论
2. 用老百姓听得懂的话说，不要文绉绉的
3. 必须引用周易原文来支撑你的判断`

const template = `【占卜问题】
%s

【起卦结果】
%s

【周易原文】
%s

---

请严格按照以下格式回答，不要使用markdown格式：

一、结论
一句话直击重点，给出最终的结论（能成/不能成/具体情况）。

二、原因
请写成一段完整、连贯的话，不要分段，不要使用数字序号。内容必须包含：导致上述结论的具体原因分析，并直接引用周易原文中的关键句子作为佐证。请将原文引用自然地融入到你的分析中（例如：“依据卦辞中‘xxx’的描述，说明了……”），让原因和依据浑然一体。
`

// extraSection is appended when concise mode is off.
const extraSection = `
三、建议
给出一到两条具体可行的建议，仍然用平实的口吻，不要引入新的卦象。
`

// Build renders the user prompt for a question and its reading. The
// returned pair is (user, system). Concise mode keeps the fixed two-part
// answer format; otherwise a third advice section is requested.
func Build(question string, interp hexagrams.Interpretation, concise bool) (string, string) {
	question = strings.TrimSpace(question)
	if question == "" {
		question = "问前程吉凶"
	}

	texts := interp.OriginalText
	if interp.ChangedText != "" {
		texts += "\n\n" + interp.ChangedText
	}

	user := fmt.Sprintf(template, question, interp.Summary(), texts)
	if !concise {
		user += extraSection
	}
	return user, System
}
