// Package core holds the pure analytics pipeline: amount normalization,
// ledger aggregation, KPI derivation, and scenario projection. Nothing in
// this package performs I/O or returns errors; malformed input degrades to
// zero values instead.
package core

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnitScale is the fixed exponent between minor and major units:
// 10^18 minor units (wei) per major unit.
const minorUnitScale = 18

// MajorUnits converts a raw minor-unit token into a major-unit amount.
// The token may be a JSON number or a base-10 numeric string; wei amounts
// routinely exceed int64, so parsing goes through arbitrary precision.
// Only plain base-10 integer tokens count: decimals, scientific notation,
// and any other garbage yield exactly zero.
func MajorUnits(raw json.RawMessage) float64 {
	tok := strings.TrimSpace(string(raw))
	if tok == "" || tok == "null" {
		return 0
	}
	if tok[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		tok = strings.TrimSpace(s)
		if tok == "" {
			return 0
		}
	}
	n, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return 0
	}
	f, _ := decimal.NewFromBigInt(n, -minorUnitScale).Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
