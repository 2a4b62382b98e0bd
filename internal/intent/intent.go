// Package intent maps recognized intent display names to the closed set of
// request kinds the dispatcher branches on.
package intent

import "strings"

// Kind is the closed enumeration of request kinds. KindHealthCheck doubles as
// the default for unrecognized intent names; adding a kind must be reflected
// at every switch over Kind.
type Kind int

const (
	// KindHealthCheck covers platform liveness probes and unknown intents.
	KindHealthCheck Kind = iota
	// KindEquivalentIncomeEstimate triggers the downstream pricing computation.
	KindEquivalentIncomeEstimate
	// KindHelp answers with usage guidance and keeps the conversation open.
	KindHelp
	// KindStop ends the conversation.
	KindStop
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindHealthCheck:
		return "health_check"
	case KindEquivalentIncomeEstimate:
		return "equivalent_income_estimate"
	case KindHelp:
		return "help"
	case KindStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Intent display names recognized by the classifier.
const (
	DisplayNameWelcome  = "Default Welcome Intent"
	DisplayNameEstimate = "EquivalentIncomeEstimateIntent"
)

// Classify maps an intent display name to a Kind. The mapping is
// case-insensitive and total: names without a mapping fall back to
// KindHealthCheck rather than failing.
//
// KindHelp and KindStop currently have no display name mapping; their handler
// branches stay live so wiring a voice command later is a one-line change here.
func Classify(displayName string) Kind {
	if strings.EqualFold(displayName, DisplayNameWelcome) ||
		strings.EqualFold(displayName, DisplayNameEstimate) {
		return KindEquivalentIncomeEstimate
	}
	return KindHealthCheck
}
