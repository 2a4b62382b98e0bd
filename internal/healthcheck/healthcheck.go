// Package healthcheck detects synthetic liveness probes in raw webhook bodies.
//
// Probe bodies do not conform to the conversational schema, so detection runs
// on the raw bytes before any schema-specific parsing and must never fail the
// pipeline: anything that does not decode as a probe is simply not one.
package healthcheck

import (
	"log/slog"

	"github.com/plantycompare/fulfillment/internal/models"
	"github.com/tidwall/gjson"
)

// argHealthCheck is the probe argument name carried on the main entry intent.
const argHealthCheck = "is_health_check"

// IsHealthCheck reports whether the raw request body is a liveness probe:
// an input named after the platform's main entry intent carrying an
// is_health_check argument with boolean value true.
//
// Only the first input matching the main entry intent is consulted. Decode
// trouble of any kind is swallowed (logged at debug) and treated as
// "not a health check".
func IsHealthCheck(body []byte) bool {
	if !gjson.ValidBytes(body) {
		slog.Debug("healthcheck.IsHealthCheck: body is not valid JSON, not a health check")
		return false
	}

	inputs := gjson.GetBytes(body, "inputs")
	if !inputs.IsArray() {
		return false
	}

	var probe gjson.Result
	found := false
	inputs.ForEach(func(_, input gjson.Result) bool {
		if input.Get("intent").String() == models.IntentMain {
			probe = input
			found = true
			return false
		}
		return true
	})
	if !found {
		return false
	}

	healthy := false
	probe.Get("arguments").ForEach(func(_, arg gjson.Result) bool {
		if arg.Get("name").String() == argHealthCheck {
			healthy = arg.Get("boolValue").Bool()
			return false
		}
		return true
	})
	return healthy
}
