package ai

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// QuotaError signals that the generation endpoint rate-limited us for the whole
// retry window. The message is user-facing.
type QuotaError struct {
	Attempts int
}

func (e *QuotaError) Error() string {
	return "generation quota exceeded: the AI service is rate limited right now, please wait a few minutes and try again, or upgrade your plan"
}

// IsQuotaError reports whether err is the quota/rate-limit error class:
// HTTP 429 from the Google API client, or an error text mentioning quota
// exhaustion. Everything else is treated as a transport failure and is not
// retried.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	var qe *QuotaError
	if errors.As(err, &qe) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "429")
}
