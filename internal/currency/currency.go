// Package currency normalizes local-currency amounts to EUR, the reporting
// currency every multi-market sum is expressed in.
package currency

import "strings"

// rates maps an ISO code to units of that currency per EUR. The table is
// fixed process-wide and never mutated at runtime.
var rates = map[string]float64{
	"EUR": 1.0,
	"GBP": 0.85,
	"SEK": 11.30,
	"NOK": 11.50,
	"DKK": 7.46,
}

// Rate returns the conversion rate for a code, case-insensitive. Unknown
// codes are treated as already-EUR (rate 1.0).
func Rate(code string) float64 {
	if r, ok := rates[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return r
	}
	return 1.0
}

// ToEUR converts amount from the given currency to EUR. A zero rate can not
// happen with the fixed table, but is guarded anyway.
func ToEUR(amount float64, code string) float64 {
	r := Rate(code)
	if r == 0 {
		return 0
	}
	return amount / r
}
