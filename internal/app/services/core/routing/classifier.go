package routing

import "regexp"

// RouteDecision picks which upstream endpoint (if any) receives a result.
type RouteDecision string

const (
	// RoutePrimary is a real field specimen; uploaded to the production
	// endpoint.
	RoutePrimary RouteDecision = "primary"
	// RouteSecondary is a test-labelled specimen; uploaded to the test
	// endpoint.
	RouteSecondary RouteDecision = "secondary"
	// RouteSkip matches no known label shape; no upload is attempted.
	RouteSkip RouteDecision = "skip"
)

// Vial label shapes. The evaluation order below gates which credentials
// receive real vs. test data, so both the patterns and the order are fixed.
var (
	fieldVialPattern    = regexp.MustCompile(`^UA\d{2}-\d+`)
	adHocLabelPattern   = regexp.MustCompile(`^TT[A-Za-z0-9]*$`)
	fixtureVialPattern  = regexp.MustCompile(`^UA\d{2}-TEST\d{3}$`)
	fixtureBatchPattern = regexp.MustCompile(`^TST\d-\d{7}$`)
)

// Classify maps a specimen/vial identifier to a route decision. Primary is
// checked first; the first matching pattern wins.
func Classify(vialID string) RouteDecision {
	if fieldVialPattern.MatchString(vialID) {
		return RoutePrimary
	}
	if adHocLabelPattern.MatchString(vialID) {
		return RouteSecondary
	}
	if fixtureVialPattern.MatchString(vialID) || fixtureBatchPattern.MatchString(vialID) {
		return RouteSecondary
	}
	return RouteSkip
}
