package prompts

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/frameforge/internal/frameworks"
	"github.com/JaimeStill/frameforge/pkg/handlers"
)

// Domain errors for prompt operations.
var (
	ErrInvalidRequest   = errors.New("missing required fields")
	ErrUnknownFramework = frameworks.ErrUnknownFramework
	ErrGenerationFailed = errors.New("prompt generation failed")
	ErrRevisionFailed   = errors.New("prompt revision failed")
)

// User-facing messages. Failure messages never carry upstream detail.
const (
	MsgInvalidRequest   = "缺少必要参数"
	MsgUnknownFramework = "不支持的框架"
	MsgGenerationFailed = "生成失败，请稍后重试"
	MsgRevisionFailed   = "修改失败，请稍后重试"
	MsgBodyTooLarge     = "请求内容过长"
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnknownFramework) {
		return http.StatusBadRequest
	}
	if errors.Is(err, handlers.ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// Message returns the localized, user-facing message for err. Unrecognized
// errors fall back to the message for the given operation's failure.
func Message(err error, fallback string) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return MsgInvalidRequest
	case errors.Is(err, ErrUnknownFramework):
		return MsgUnknownFramework
	case errors.Is(err, handlers.ErrBodyTooLarge):
		return MsgBodyTooLarge
	case errors.Is(err, ErrGenerationFailed):
		return MsgGenerationFailed
	case errors.Is(err, ErrRevisionFailed):
		return MsgRevisionFailed
	}
	return fallback
}
