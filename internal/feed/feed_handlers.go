package feed

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trailhead/internal/common"
	"trailhead/internal/hashid"
)

// FeedUsecase is the assembler contract the handlers call into.
type FeedUsecase interface {
	GetFeed(ctx context.Context, page int, callerID *int64, filter Filter) (*FeedPage, error)
}

type FeedHandlers struct {
	svc   FeedUsecase
	codec *hashid.Codec
	log   *zap.Logger
}

func NewFeedHandlers(svc FeedUsecase, codec *hashid.Codec, log *zap.Logger) *FeedHandlers {
	return &FeedHandlers{svc: svc, codec: codec, log: log}
}

type feedFilterRequest struct {
	Username   string `json:"username"`
	Personal   bool   `json:"personal"`
	Collection string `json:"collection"` // encoded collection token
	Admin      bool   `json:"admin"`
}

type feedRequest struct {
	Page   *int               `json:"page"`
	Filter *feedFilterRequest `json:"filter"`
}

// PostFeed serves POST /api/v1/feed: a page of the feed under an optional
// filter, personalized when the request carries a session.
func (h *FeedHandlers) PostFeed(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.ValidationError(w, "invalid request body")
		return
	}
	if req.Page == nil || *req.Page < 0 {
		common.ValidationError(w, "page must be a non-negative integer")
		return
	}

	callerID := common.CallerID(r.Context())

	filter, ok := h.resolveFilter(req.Filter, callerID)
	if !ok {
		// Unresolvable filter targets collapse to an empty page rather
		// than an error, so token probing leaks nothing.
		common.RespondJSON(w, http.StatusOK, &FeedPage{Status: "ok", Posts: []PostView{}})
		return
	}

	page, err := h.svc.GetFeed(r.Context(), *req.Page, callerID, filter)
	if err != nil {
		h.log.Error("feed request failed", zap.Error(err))
		common.InternalError(w)
		return
	}
	common.RespondJSON(w, http.StatusOK, page)
}

// GetFeed serves GET /api/v1/feed: the landing page, which is always page
// zero of the unfiltered feed.
func (h *FeedHandlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetFeed(r.Context(), 0, common.CallerID(r.Context()), NoFilter{})
	if err != nil {
		h.log.Error("landing feed request failed", zap.Error(err))
		common.InternalError(w)
		return
	}
	common.RespondJSON(w, http.StatusOK, page)
}

// resolveFilter maps the request filter to its variant. The second return
// is false when the target of the filter cannot exist (unknown collection
// token, personal feed without a session).
func (h *FeedHandlers) resolveFilter(req *feedFilterRequest, callerID *int64) (Filter, bool) {
	if req == nil {
		return NoFilter{}, true
	}
	switch {
	case req.Admin:
		return AdminFilter{Username: req.Username}, true
	case req.Personal:
		if callerID == nil {
			return nil, false
		}
		return PersonalFilter{UserID: *callerID}, true
	case req.Collection != "":
		collectionID, ok := h.codec.DecodeCollection(req.Collection)
		if !ok {
			return nil, false
		}
		return CollectionFilter{CollectionID: collectionID}, true
	case req.Username != "":
		return UsernameFilter{Username: req.Username}, true
	default:
		return NoFilter{}, true
	}
}
