package chatbot

import (
	"context"
	"errors"
	"strings"

	"github.com/aristath/coin50/internal/clients/llm"
)

// ErrorKind classifies a completion failure
type ErrorKind string

const (
	ErrorKindNone       ErrorKind = ""
	ErrorKindQuota      ErrorKind = "quota"
	ErrorKindInvalidKey ErrorKind = "invalid_key"
	ErrorKindGeneric    ErrorKind = "generic"
)

// User-facing completion failure messages
const (
	QuotaExceededMessage = "⚠️ You have exceeded your API quota. Please check your plan and billing details."
	InvalidKeyMessage    = "❌ Invalid API key. Please check your configuration."
	GenericErrorMessage  = "❌ Error generating response: "
	BusyMessage          = "⏳ The assistant is busy. Please try again in a moment."
)

var (
	// Status markers follow the upstream's "error, status code: N" format.
	quotaMarkers      = []string{"quota", "status code: 429", "rate limit reached", "rate_limit_exceeded"}
	invalidKeyMarkers = []string{"api key", "api_key", "status code: 401", "invalid key", "unauthorized"}
)

// ClassifyError maps a completion error to a kind and message.
// Local throttling and cancellation are generic; upstream errors are matched
// by case-insensitive substring on their text. Quota markers win over key markers.
func ClassifyError(err error) (ErrorKind, string) {
	if err == nil {
		return ErrorKindNone, ""
	}
	if errors.Is(err, llm.ErrThrottled) {
		return ErrorKindGeneric, BusyMessage
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindGeneric, GenericErrorMessage + err.Error()
	}

	text := strings.ToLower(err.Error())
	switch {
	case containsAny(text, quotaMarkers):
		return ErrorKindQuota, QuotaExceededMessage
	case containsAny(text, invalidKeyMarkers):
		return ErrorKindInvalidKey, InvalidKeyMessage
	default:
		return ErrorKindGeneric, GenericErrorMessage + err.Error()
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
