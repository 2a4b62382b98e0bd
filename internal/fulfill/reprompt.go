package fulfill

import (
	"strings"

	"github.com/plantycompare/fulfillment/internal/models"
)

// isRepromptRequest reports whether the platform marked this turn as a
// no-input re-prompt: the first named input in the payload's inputs list
// carries the platform's no-input intent. Used for turn observability only.
func isRepromptRequest(req *models.WebhookRequest) bool {
	if req.OriginalDetectIntentRequest.Payload == nil {
		return false
	}
	for _, input := range req.OriginalDetectIntentRequest.Payload.Inputs {
		if input.Intent == "" {
			continue
		}
		return strings.EqualFold(input.Intent, models.IntentNoInput)
	}
	return false
}
