// Package identity resolves the opaque per-user token carried in the inbound
// platform payload.
//
// The token is never stored server-side: it is read from the client-echoed
// user storage at the start of a turn and written back into the outbound
// payload at the end, so the platform round-trips it on the next turn.
package identity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/plantycompare/fulfillment/internal/models"
)

// Resolve extracts the caller identity from the platform payload.
//
// Resolution order:
//  1. a non-blank user.userStorage field, JSON-decoded as {userId};
//  2. a non-blank raw user.userId field, returned verbatim;
//  3. a freshly minted token when neither is present.
//
// Malformed userStorage JSON is a hard failure: the token was produced by a
// previous turn of this service, so a corrupt value means the round trip is
// broken and must not be silently replaced with a new identity.
func Resolve(payload *models.Payload) (string, error) {
	user, ok := payload.UserField()
	if !ok {
		id := NewUserID()
		slog.Debug("identity.Resolve: no user in payload, minted new ID", "userId", id)
		return id, nil
	}

	if storage, ok := user.Storage(); ok && strings.TrimSpace(storage) != "" {
		var stored models.UserStorage
		if err := json.Unmarshal([]byte(storage), &stored); err != nil {
			return "", fmt.Errorf("decode user storage: %w", err)
		}
		slog.Debug("identity.Resolve: recovered ID from user storage")
		return stored.UserID, nil
	}

	if id, ok := user.ID(); ok && strings.TrimSpace(id) != "" {
		slog.Debug("identity.Resolve: using raw platform user ID")
		return id, nil
	}

	id := NewUserID()
	slog.Debug("identity.Resolve: no identity in payload, minted new ID", "userId", id)
	return id, nil
}

// NewUserID mints a fresh identity token: 32 lowercase hex characters, the
// dash-free form of a random UUID.
func NewUserID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
