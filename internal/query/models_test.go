package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/complykit/sox-rag-agent/internal/middleware"
)

func TestQueryRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{"normal query", "What is SOX?", nil},
		{"empty query is allowed", "", nil},
		{"at the limit", strings.Repeat("a", maxQueryLength), nil},
		{"over the limit", strings.Repeat("a", maxQueryLength+1), middleware.ErrQueryTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &QueryRequest{Query: tt.query}
			err := request.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate: %v, want %v", err, tt.wantErr)
			}
		})
	}
}
