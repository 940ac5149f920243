package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		vialID   string
		expected RouteDecision
	}{
		{"Field Vial", "UA01-555555", RoutePrimary},
		{"Field Vial With Suffix", "UA23-1", RoutePrimary},
		{"Ad Hoc Label Bare", "TT", RouteSecondary},
		{"Ad Hoc Label Alphanumeric", "TTabc123", RouteSecondary},
		{"Fixture Vial", "UA01-TEST001", RouteSecondary},
		{"Fixture Batch", "TST1-0000001", RouteSecondary},
		{"Empty", "", RouteSkip},
		{"Random", "random-123", RouteSkip},
		{"Ad Hoc Label With Dash", "TT-1", RouteSkip},
		{"Lowercase Field Vial", "ua01-555555", RouteSkip},
		{"Fixture Batch Short Serial", "TST1-123", RouteSkip},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.vialID))
		})
	}
}
