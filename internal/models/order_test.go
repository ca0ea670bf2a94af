package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dptr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestOrderFillState(t *testing.T) {
	testCases := []struct {
		name              string
		order             Order
		expectedRemaining string
		expectedFillPct   string
		partiallyFilled   bool
		fullyFilled       bool
	}{
		{
			name: "Untouched Order",
			order: Order{
				Quantity:       d("10"),
				FilledQuantity: d("0"),
			},
			expectedRemaining: "10",
			expectedFillPct:   "0",
			partiallyFilled:   false,
			fullyFilled:       false,
		},
		{
			name: "Partially Filled",
			order: Order{
				Quantity:       d("10"),
				FilledQuantity: d("4"),
			},
			expectedRemaining: "6",
			expectedFillPct:   "40",
			partiallyFilled:   true,
			fullyFilled:       false,
		},
		{
			name: "Fully Filled",
			order: Order{
				Quantity:       d("10"),
				FilledQuantity: d("10"),
			},
			expectedRemaining: "0",
			expectedFillPct:   "100",
			partiallyFilled:   false,
			fullyFilled:       true,
		},
		{
			name: "Overfilled Still Counts As Full",
			order: Order{
				Quantity:       d("10"),
				FilledQuantity: d("10.5"),
			},
			expectedRemaining: "-0.5",
			expectedFillPct:   "105",
			partiallyFilled:   false,
			fullyFilled:       true,
		},
		{
			name: "Zero Quantity",
			order: Order{
				Quantity:       d("0"),
				FilledQuantity: d("0"),
			},
			expectedRemaining: "0",
			expectedFillPct:   "0",
			partiallyFilled:   false,
			fullyFilled:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.order.RemainingQuantity().Equal(d(tc.expectedRemaining)),
				"remaining: got %s", tc.order.RemainingQuantity())
			assert.True(t, tc.order.FillPercentage().Equal(d(tc.expectedFillPct)),
				"fill pct: got %s", tc.order.FillPercentage())
			assert.Equal(t, tc.partiallyFilled, tc.order.IsPartiallyFilled())
			assert.Equal(t, tc.fullyFilled, tc.order.IsFullyFilled())
		})
	}
}

func TestOrderTotalValue(t *testing.T) {
	testCases := []struct {
		name     string
		order    Order
		expected string
	}{
		{
			name: "Limit Order Without Fills Uses Limit Price",
			order: Order{
				Quantity:       d("10"),
				FilledQuantity: d("4"),
				Price:          dptr("50"),
			},
			expected: "200",
		},
		{
			name: "Average Fill Price Wins Over Limit Price",
			order: Order{
				Quantity:         d("10"),
				FilledQuantity:   d("4"),
				Price:            dptr("50"),
				AverageFillPrice: dptr("49.5"),
			},
			expected: "198",
		},
		{
			name: "Market Order Without Fill Price",
			order: Order{
				Quantity:       d("10"),
				FilledQuantity: d("4"),
			},
			expected: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.order.TotalValue().Equal(d(tc.expected)),
				"total value: got %s", tc.order.TotalValue())
		})
	}
}
