package model

import (
	"encoding/json"
	"math"
)

// ParseResponse is the success body of the parsing backend. TotalTransactions is
// informational only, so any JSON number is accepted.
type ParseResponse struct {
	Bank              string           `json:"bank"`
	Transactions      []map[string]any `json:"transactions"`
	TotalTransactions json.Number      `json:"total_transactions"`
}

// Total reads TotalTransactions, falling back to the length of Transactions
// when the field is missing or not a whole number.
func (r *ParseResponse) Total() int {
	if n, err := r.TotalTransactions.Int64(); err == nil {
		return int(n)
	}
	if f, err := r.TotalTransactions.Float64(); err == nil && f == math.Trunc(f) {
		return int(f)
	}
	return len(r.Transactions)
}

// ErrorResponse is the error body of the parsing backend. Detail is usually a
// string but validation errors carry a list of objects.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type HealthResponse struct {
	URL       string `json:"url"`
	Reachable bool   `json:"reachable"`
	Status    int    `json:"status,omitempty"`
	Note      string `json:"note,omitempty"`
}
