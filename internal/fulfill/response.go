package fulfill

import (
	"encoding/json"
	"strings"

	"github.com/plantycompare/fulfillment/internal/models"
	"github.com/plantycompare/fulfillment/internal/speech"
)

// BuildResponse assembles the outbound webhook response.
//
// expectUserResponse is set iff reprompt is non-blank. The identity token is
// serialized into payload.google.userStorage so the next turn's resolver
// recovers it verbatim; any opaque string round-trips, not just tokens this
// service minted.
func BuildResponse(userID, message, reprompt string) *models.WebhookResponse {
	expectUserResponse := strings.TrimSpace(reprompt) != ""

	storage, err := json.Marshal(models.UserStorage{UserID: userID})
	if err != nil {
		// A struct of one string field cannot fail to marshal.
		panic("fulfill.BuildResponse: marshal user storage: " + err.Error())
	}

	return &models.WebhookResponse{
		FulfillmentMessages: []models.FulfillmentMessage{
			{
				Platform: models.PlatformActionsOnGoogle,
				SimpleResponses: &models.SimpleResponses{
					SimpleResponses: []models.SimpleResponse{
						{SSML: speech.Wrap(message)},
					},
				},
			},
		},
		Payload: models.ResponsePayload{
			Google: models.GooglePayload{
				ExpectUserResponse: expectUserResponse,
				UserStorage:        string(storage),
			},
		},
	}
}
