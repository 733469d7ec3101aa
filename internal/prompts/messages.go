package prompts

import (
	"fmt"

	"github.com/JaimeStill/frameforge/internal/frameworks"
	"github.com/JaimeStill/frameforge/pkg/completion"
)

// WrapInput applies the fixed quoting wrapper to raw generation input.
func WrapInput(input string) string {
	return fmt.Sprintf(`用户输入: "%s"`, input)
}

// ExpertSystem declares the assistant an expert in the named framework.
func ExpertSystem(f frameworks.Framework) string {
	return fmt.Sprintf("你是 %s 框架的专家。", f)
}

// RevisionRequest embeds the original prompt and the modification request
// verbatim, followed by the instruction to output only the revised prompt.
func RevisionRequest(f frameworks.Framework, original, modification string) string {
	return fmt.Sprintf(
		"原始提示词是：\n%s\n\n用户的修改意见是：%s\n\n请根据用户的意见重新生成修改后的 %s 框架提示词。请注意，最后只输出修改后的提示词。",
		original, modification, f,
	)
}

func generateMessages(cmd GenerateCommand) []completion.Message {
	return []completion.Message{
		completion.System(frameworks.Instructions(cmd.Framework)),
		completion.User(WrapInput(cmd.Input)),
	}
}

func reviseMessages(cmd ReviseCommand) []completion.Message {
	return []completion.Message{
		completion.System(ExpertSystem(cmd.Framework)),
		completion.User(RevisionRequest(cmd.Framework, cmd.OriginalOutput, cmd.ModificationInput)),
	}
}
