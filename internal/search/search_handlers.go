package search

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trailhead/internal/common"
)

type SearchUsecase interface {
	Search(ctx context.Context, query, filter string, page int) (*ResultPage, error)
}

type SearchHandlers struct {
	svc SearchUsecase
	log *zap.Logger
}

func NewSearchHandlers(svc SearchUsecase, log *zap.Logger) *SearchHandlers {
	return &SearchHandlers{svc: svc, log: log}
}

type searchRequest struct {
	Query  string `json:"query"`
	Filter string `json:"filter"`
	Page   *int   `json:"page"`
}

// PostSearch serves POST /api/v1/search.
func (h *SearchHandlers) PostSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.ValidationError(w, "invalid request body")
		return
	}
	if req.Page == nil || *req.Page < 0 {
		common.ValidationError(w, "page must be a non-negative integer")
		return
	}

	result, err := h.svc.Search(r.Context(), req.Query, req.Filter, *req.Page)
	if err != nil {
		h.log.Error("search request failed", zap.Error(err))
		common.InternalError(w)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
