// Package currency validates ISO 4217 currency codes accepted by the
// fare source.
package currency

import (
	"fmt"
	"strings"
)

// Default is used when a search request omits the currency.
const Default = "EUR"

var supported = map[string]struct{}{
	"EUR": {},
	"GBP": {},
	"PLN": {},
	"SEK": {},
	"NOK": {},
	"DKK": {},
	"CZK": {},
	"HUF": {},
	"RON": {},
	"CHF": {},
	"USD": {},
}

// Normalize upper-cases a currency code and rejects codes the fare
// source does not quote in.
func Normalize(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", fmt.Errorf("currency must be a 3-letter code, got %q", code)
	}
	if _, ok := supported[c]; !ok {
		return "", fmt.Errorf("unsupported currency %q", c)
	}
	return c, nil
}

// IsSupported reports whether code is a known quoting currency.
func IsSupported(code string) bool {
	_, err := Normalize(code)
	return err == nil
}
