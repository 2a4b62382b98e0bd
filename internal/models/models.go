// Package models defines the core data structures for the fulfillment webhook.
//
// It includes the two accepted inbound request shapes (health-check probe and
// conversational webhook), the outbound webhook response, and shared error
// variables used across modules.
package models

import "errors"

// Reserved intent identifiers used by the calling platform.
const (
	// IntentMain is the platform's main entry intent, carried by health-check probes.
	IntentMain = "actions.intent.MAIN"
	// IntentNoInput is sent when the caller stayed silent and the platform re-prompts.
	IntentNoInput = "actions.intent.NO_INPUT"
)

// PlatformActionsOnGoogle is the platform tag required on fulfillment messages.
const PlatformActionsOnGoogle = "ACTIONS_ON_GOOGLE"

// Error variables for boundary mapping and testability.
var (
	// ErrMalformedRequest indicates the inbound body matched neither accepted shape.
	ErrMalformedRequest = errors.New("request body does not match the webhook schema")
	// ErrMissingParameter indicates a required intent parameter was absent or mistyped.
	ErrMissingParameter = errors.New("required intent parameter missing")
)

// WebhookRequest is the conversational webhook envelope handed in by the
// intent-recognition platform. Immutable once parsed.
type WebhookRequest struct {
	QueryResult                 QueryResult                 `json:"queryResult"`
	OriginalDetectIntentRequest OriginalDetectIntentRequest `json:"originalDetectIntentRequest"`
}

// QueryResult carries the recognized intent and its extracted parameters.
type QueryResult struct {
	Intent     Intent     `json:"intent"`
	Parameters Parameters `json:"parameters"`
}

// Intent identifies the recognized intent by display name.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// OriginalDetectIntentRequest wraps the opaque platform payload sub-tree.
type OriginalDetectIntentRequest struct {
	Payload *Payload `json:"payload,omitempty"`
}

// Payload is the platform payload sub-tree, used only for identity
// extraction and no-input re-prompt detection.
type Payload struct {
	User   *User          `json:"user,omitempty"`
	Inputs []PayloadInput `json:"inputs,omitempty"`
}

// User carries the client-echoed identity fields.
type User struct {
	UserStorage string `json:"userStorage,omitempty"`
	UserID      string `json:"userId,omitempty"`
}

// PayloadInput is one entry of the platform payload's inputs list.
type PayloadInput struct {
	Intent string `json:"intent"`
}

// UserField returns the payload's user sub-tree, reporting whether it is present.
// Each hop of the payload navigation reports presence explicitly rather than
// relying on nil-pointer chasing at the call site.
func (p *Payload) UserField() (*User, bool) {
	if p == nil || p.User == nil {
		return nil, false
	}
	return p.User, true
}

// Storage returns the user's client-echoed storage token, reporting whether it
// is present and non-blank.
func (u *User) Storage() (string, bool) {
	if u == nil || u.UserStorage == "" {
		return "", false
	}
	return u.UserStorage, true
}

// ID returns the user's raw platform identifier, reporting whether it is
// present and non-blank.
func (u *User) ID() (string, bool) {
	if u == nil || u.UserID == "" {
		return "", false
	}
	return u.UserID, true
}

// UserStorage is the JSON object round-tripped through the platform's
// client-side storage to carry the caller identity across turns.
type UserStorage struct {
	UserID string `json:"userId"`
}

// WebhookResponse is the outbound payload: spoken SSML, the re-prompt flag,
// and the identity token to echo back for the next turn.
type WebhookResponse struct {
	FulfillmentMessages []FulfillmentMessage `json:"fulfillmentMessages"`
	Payload             ResponsePayload      `json:"payload"`
}

// FulfillmentMessage is one platform-tagged message of the response.
type FulfillmentMessage struct {
	Platform        string           `json:"platform"`
	SimpleResponses *SimpleResponses `json:"simpleResponses,omitempty"`
}

// SimpleResponses wraps the platform's nested simple-response list.
type SimpleResponses struct {
	SimpleResponses []SimpleResponse `json:"simpleResponses"`
}

// SimpleResponse carries one SSML utterance.
type SimpleResponse struct {
	SSML string `json:"ssml"`
}

// ResponsePayload nests the Google-specific response fields.
type ResponsePayload struct {
	Google GooglePayload `json:"google"`
}

// GooglePayload carries the re-prompt flag and the serialized user storage.
type GooglePayload struct {
	ExpectUserResponse bool   `json:"expectUserResponse"`
	UserStorage        string `json:"userStorage"`
}

// APIStatus represents the status of a non-webhook API response.
type APIStatus string

const (
	// APIStatusOK indicates an API request completed successfully.
	APIStatusOK APIStatus = "ok"
	// APIStatusError indicates an API request failed with an error.
	APIStatusError APIStatus = "error"
)

// APIResponse is the JSON envelope used for error bodies and the liveness
// endpoint. Webhook success responses use WebhookResponse directly.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

// Success creates a successful API response with optional result data.
func Success(result interface{}) APIResponse {
	return APIResponse{Status: string(APIStatusOK), Result: result}
}

// Error creates an error API response with a message.
func Error(message string) APIResponse {
	return APIResponse{Status: string(APIStatusError), Message: message}
}
