// Package fulfill orchestrates one webhook turn: detect health-check probes,
// parse the conversational envelope, resolve the caller identity, classify
// the intent, and build the spoken response.
package fulfill

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/plantycompare/fulfillment/internal/healthcheck"
	"github.com/plantycompare/fulfillment/internal/identity"
	"github.com/plantycompare/fulfillment/internal/intent"
	"github.com/plantycompare/fulfillment/internal/models"
	"github.com/plantycompare/fulfillment/internal/pricing"
	"github.com/plantycompare/fulfillment/internal/util"
)

// Fixed spoken texts.
const (
	HelpMessage = "You can ask, how much would you need to make in a given city to maintain a comparable lifestyle," +
		" or, you can say exit... What can I help you with?"
	HelpReprompt = "What can I help you with?"
	StopMessage  = "Goodbye!"
)

// Service processes webhook turns. Each turn is independent and stateless
// server-side; the only shared resource is the pricing client's HTTP client.
type Service struct {
	pricing *pricing.Client
}

// NewService creates a turn-processing service backed by the given pricing client.
func NewService(pricingClient *pricing.Client) *Service {
	return &Service{pricing: pricingClient}
}

// HandleTurn processes one raw webhook body and returns the response to emit.
//
// Errors wrapping models.ErrMalformedRequest mean the body matched neither
// accepted shape; any other error is a turn failure (downstream call or
// parameter extraction) with no partial response.
func (s *Service) HandleTurn(ctx context.Context, body []byte) (*models.WebhookResponse, error) {
	turnID := util.GenerateTurnID()
	slog.Debug("Service.HandleTurn: processing turn", "turn_id", turnID, "body_bytes", len(body))

	if healthcheck.IsHealthCheck(body) {
		slog.Info("Service.HandleTurn: health check probe detected", "turn_id", turnID)
		return BuildResponse("", HelpReprompt, ""), nil
	}

	var req models.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		slog.Warn("Service.HandleTurn: webhook request could not be parsed", "turn_id", turnID, "error", err)
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedRequest, err)
	}

	userID, err := identity.Resolve(req.OriginalDetectIntentRequest.Payload)
	if err != nil {
		slog.Error("Service.HandleTurn: identity resolution failed", "turn_id", turnID, "error", err)
		return nil, err
	}

	if isRepromptRequest(&req) {
		slog.Debug("Service.HandleTurn: platform reports a no-input re-prompt turn", "turn_id", turnID)
	}

	displayName := req.QueryResult.Intent.DisplayName
	kind := intent.Classify(displayName)
	slog.Debug("Service.HandleTurn: intent classified", "turn_id", turnID, "display_name", displayName, "kind", kind.String())

	switch kind {
	case intent.KindEquivalentIncomeEstimate:
		return s.handleEstimate(ctx, turnID, &req, userID)
	case intent.KindHelp:
		return BuildResponse(userID, HelpMessage, HelpReprompt), nil
	case intent.KindStop:
		return BuildResponse(userID, StopMessage, ""), nil
	case intent.KindHealthCheck:
		return BuildResponse(userID, HelpReprompt, ""), nil
	default:
		return BuildResponse(userID, HelpReprompt, ""), nil
	}
}

// handleEstimate extracts the estimate parameters, queries the pricing
// service, and formats the spoken answer. Single-shot: no re-prompt.
func (s *Service) handleEstimate(ctx context.Context, turnID string, req *models.WebhookRequest, userID string) (*models.WebhookResponse, error) {
	query, err := extractQuery(req.QueryResult.Parameters)
	if err != nil {
		slog.Error("Service.handleEstimate: parameter extraction failed", "turn_id", turnID, "error", err)
		return nil, err
	}

	amount, err := s.pricing.EquivalentIncome(ctx, query)
	if err != nil {
		slog.Error("Service.handleEstimate: pricing call failed", "turn_id", turnID, "error", err)
		return nil, err
	}

	message := fmt.Sprintf("You'd need to earn %s %ss, to maintain a comparable lifestyle.",
		formatAmount(amount), query.TargetCurrency)
	slog.Info("Service.handleEstimate: estimate computed", "turn_id", turnID,
		"target_city", query.TargetCity, "base_city", query.BaseCity, "amount", amount)
	return BuildResponse(userID, message, ""), nil
}

// extractQuery pulls the estimate parameters out of the intent parameter map.
// TODO: parameterize targetCurrency instead of forcing it equal to baseCurrency.
func extractQuery(params models.Parameters) (pricing.Query, error) {
	targetCity, err := params.String("targetCity")
	if err != nil {
		return pricing.Query{}, err
	}
	baseCity, err := params.String("baseCity")
	if err != nil {
		return pricing.Query{}, err
	}
	baseIncome, err := params.Struct("baseIncome")
	if err != nil {
		return pricing.Query{}, err
	}
	amount, err := baseIncome.Number("amount")
	if err != nil {
		return pricing.Query{}, err
	}
	currency, err := baseIncome.String("currency")
	if err != nil {
		return pricing.Query{}, err
	}

	return pricing.Query{
		TargetCity:       targetCity,
		TargetCurrency:   currency,
		BaseCity:         baseCity,
		BaseIncomeAmount: int(amount),
		BaseCurrency:     currency,
	}, nil
}

// formatAmount renders a rounded amount without a trailing fraction.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
