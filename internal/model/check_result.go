package model

import "github.com/google/uuid"

// CheckError records a single failed item inside a check cycle.
type CheckError struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Error string    `json:"error"`
}

// CheckResult aggregates one full pass over the due set.
type CheckResult struct {
	Checked int          `json:"checked"`
	Sent    int          `json:"sent"`
	Failed  int          `json:"failed"`
	Errors  []CheckError `json:"errors"`
}
