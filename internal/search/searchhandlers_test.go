package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearchUsecase struct {
	calls  int
	query  string
	filter string
	page   int
	err    error
}

func (f *fakeSearchUsecase) Search(ctx context.Context, query, filter string, page int) (*ResultPage, error) {
	f.calls++
	f.query = query
	f.filter = filter
	f.page = page
	return &ResultPage{Status: "ok", Posts: []PostView{}}, f.err
}

func postSearch(h *SearchHandlers, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PostSearch(rec, req)
	return rec
}

func TestPostSearchValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing page", `{"query": "ridge"}`},
		{"negative page", `{"query": "ridge", "page": -2}`},
		{"malformed body", `{"query"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSearchUsecase{}
			h := NewSearchHandlers(svc, zap.NewNop())

			rec := postSearch(h, tt.body)

			var payload map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.Equal(t, "validation error", payload["status"])
			assert.Zero(t, svc.calls)
		})
	}
}

func TestPostSearchOK(t *testing.T) {
	svc := &fakeSearchUsecase{}
	h := NewSearchHandlers(svc, zap.NewNop())

	rec := postSearch(h, `{"query": "#summit", "filter": "tag", "page": 1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])

	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "#summit", svc.query)
	assert.Equal(t, "tag", svc.filter)
	assert.Equal(t, 1, svc.page)
}
