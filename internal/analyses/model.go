package analyses

import (
	"encoding/json"
	"time"
)

// Analysis is one stored CV analysis run for a job seeker.
type Analysis struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	FileName     string          `json:"fileName"`
	Endpoint     string          `json:"endpoint"`
	OverallScore int             `json:"overallScore"`
	Passed       bool            `json:"passed"`
	Result       json.RawMessage `json:"result,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
