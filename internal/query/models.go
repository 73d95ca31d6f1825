package query

import (
	"github.com/complykit/sox-rag-agent/internal/middleware"
)

const maxQueryLength = 10000

type QueryRequest struct {
	Query           string `json:"query" description:"Natural-language question about the indexed compliance documents"`
	IncludeAnalysis bool   `json:"include_analysis,omitempty" description:"Include detailed query analysis in response (default: false)"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

// Validate caps the query length. Empty queries are allowed through; the
// classifier is required to handle them.
func (q *QueryRequest) Validate() error {
	if len(q.Query) > maxQueryLength {
		return middleware.ErrQueryTooLong
	}
	return nil
}
