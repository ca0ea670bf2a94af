package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, len(verr.Violations))
	for i, v := range verr.Violations {
		fields[i] = v.Field
	}
	return fields
}

func strptr(s string) *string { return &s }

func TestUserValidate(t *testing.T) {
	valid := User{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name           string
		mutate         func(u *User)
		expectedFields []string
	}{
		{
			name:           "Missing Email",
			mutate:         func(u *User) { u.Email = "" },
			expectedFields: []string{"email"},
		},
		{
			name:           "Malformed Email",
			mutate:         func(u *User) { u.Email = "not-an-email" },
			expectedFields: []string{"email"},
		},
		{
			name:           "Short Password Hash",
			mutate:         func(u *User) { u.PasswordHash = "short" },
			expectedFields: []string{"password_hash"},
		},
		{
			name:           "Over-Long First Name",
			mutate:         func(u *User) { u.FirstName = strptr(strings.Repeat("x", 101)) },
			expectedFields: []string{"first_name"},
		},
		{
			name: "Multiple Violations Reported Together",
			mutate: func(u *User) {
				u.Email = "nope"
				u.PasswordHash = ""
			},
			expectedFields: []string{"email", "password_hash"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := valid
			tc.mutate(&user)
			err := user.Validate()
			require.Error(t, err)
			for _, field := range tc.expectedFields {
				assert.Contains(t, violationFields(t, err), field)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	testCases := []struct {
		name     string
		first    *string
		last     *string
		expected string
	}{
		{"Both Set", strptr("Alice"), strptr("Smith"), "Alice Smith"},
		{"Only First", strptr("Alice"), nil, "Alice"},
		{"Only Last", nil, strptr("Smith"), "Smith"},
		{"Neither", nil, nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user := User{FirstName: tc.first, LastName: tc.last}
			assert.Equal(t, tc.expected, user.FullName())
		})
	}
}

func TestExchangeValidate(t *testing.T) {
	valid := Exchange{Name: "binance", DisplayName: "Binance"}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.APIBaseURL = strptr("not a url")
	assert.Contains(t, violationFields(t, bad.Validate()), "api_base_url")

	ok := valid
	ok.APIBaseURL = strptr("https://api.binance.com")
	assert.NoError(t, ok.Validate())
}

func TestTradingPairValidate(t *testing.T) {
	valid := TradingPair{
		Symbol:            "BTCUSDT",
		BaseAsset:         "BTC",
		QuoteAsset:        "USDT",
		PricePrecision:    8,
		QuantityPrecision: 8,
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name          string
		mutate        func(p *TradingPair)
		expectedField string
	}{
		{"Precision Above Cap", func(p *TradingPair) { p.PricePrecision = 19 }, "price_precision"},
		{"Negative Precision", func(p *TradingPair) { p.QuantityPrecision = -1 }, "quantity_precision"},
		{"Negative Min Order Size", func(p *TradingPair) { p.MinOrderSize = dptr("-1") }, "min_order_size"},
		{"Over-Long Symbol", func(p *TradingPair) { p.Symbol = strings.Repeat("A", 21) }, "symbol"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pair := valid
			tc.mutate(&pair)
			assert.Contains(t, violationFields(t, pair.Validate()), tc.expectedField)
		})
	}
}

func TestOrderValidate(t *testing.T) {
	valid := Order{
		Symbol:   "BTCUSDT",
		Type:     OrderTypeLimit,
		Side:     OrderSideBuy,
		Status:   OrderStatusPending,
		Quantity: d("10"),
		Price:    dptr("50"),
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name          string
		mutate        func(o *Order)
		expectedField string
	}{
		{"Unknown Type", func(o *Order) { o.Type = "ICEBERG" }, "type"},
		{"Unknown Side", func(o *Order) { o.Side = "HOLD" }, "side"},
		{"Unknown Status", func(o *Order) { o.Status = "LOST" }, "status"},
		{"Negative Quantity", func(o *Order) { o.Quantity = d("-1") }, "quantity"},
		{"Negative Limit Price", func(o *Order) { o.Price = dptr("-50") }, "price"},
		{"Negative Fee", func(o *Order) { o.Fee = d("-0.1") }, "fee"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := valid
			tc.mutate(&order)
			assert.Contains(t, violationFields(t, order.Validate()), tc.expectedField)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	user := User{Email: "nope", PasswordHash: "ok-length-hash"}
	err := user.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User validation failed")
	assert.Contains(t, err.Error(), "email")
}
