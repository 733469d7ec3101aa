// Package frameworks holds the closed set of prompt-engineering frameworks
// and the fixed system instructions that shape each framework's output.
package frameworks

import (
	"errors"
	"slices"
)

// ErrUnknownFramework is returned by Parse for identifiers outside the known set.
var ErrUnknownFramework = errors.New("unknown framework")

// Framework identifies a prompt template style.
type Framework string

// Known frameworks.
const (
	COSTAR     Framework = "CO-STAR"
	CRISPE     Framework = "CRISPE"
	ICIO       Framework = "ICIO"
	BROKE      Framework = "BROKE"
	Midjourney Framework = "Midjourney"
)

// Entry pairs a framework with the short description shown in the UI.
type Entry struct {
	Name        Framework `json:"name"`
	Description string    `json:"description"`
}

var order = []Framework{COSTAR, CRISPE, ICIO, BROKE, Midjourney}

var descriptions = map[Framework]string{
	COSTAR:     "适用于背景丰富、需要多维度定制输出的场景，如专业报告、市场分析。",
	CRISPE:     "适用于角色扮演和模拟的场景，如个性化互动、情境模拟。",
	ICIO:       "适用于明确任务指令和格式的场景，如数据处理、内容创作、技术任务。",
	BROKE:      "适用于项目管理和持续改进的场景，如创意设计、研究分析。",
	Midjourney: "生成高质量的绘画提示词，将用户输入的画面描述拆解为镜头、光线、主体、背景、风格和氛围六个要素。",
}

// List returns the known frameworks in display order.
func List() []Framework {
	return slices.Clone(order)
}

// Catalog returns every known framework with its description, in display order.
func Catalog() []Entry {
	entries := make([]Entry, len(order))
	for i, f := range order {
		entries[i] = Entry{Name: f, Description: descriptions[f]}
	}
	return entries
}

// Known reports whether f is a member of the closed set.
func Known(f Framework) bool {
	return slices.Contains(order, f)
}

// Parse validates s as a known framework.
func Parse(s string) (Framework, error) {
	f := Framework(s)
	if !Known(f) {
		return "", ErrUnknownFramework
	}
	return f, nil
}

// Instructions returns the system instruction text for f. Unrecognized
// identifiers yield an empty string rather than an error.
func Instructions(f Framework) string {
	return instructions[f]
}
