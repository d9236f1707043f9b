package feed

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

	"trailhead/internal/common"
	"trailhead/internal/config"
	"trailhead/internal/hashid"
)

type fakeFeedUsecase struct {
	calls    int
	page     int
	callerID *int64
	filter   Filter
	result   *FeedPage
	err      error
}

func (f *fakeFeedUsecase) GetFeed(ctx context.Context, page int, callerID *int64, filter Filter) (*FeedPage, error) {
	f.calls++
	f.page = page
	f.callerID = callerID
	f.filter = filter
	if f.result == nil {
		return &FeedPage{Status: "ok", Posts: []PostView{}}, f.err
	}
	return f.result, f.err
}

func newTestHandlers(t *testing.T, svc FeedUsecase) (*FeedHandlers, *hashid.Codec) {
	t.Helper()
	cfg := &config.Config{
		Hashid: config.HashidConfig{Salt: "test-salt", MinLength: 8},
	}
	codec, err := hashid.NewCodec(cfg)
	require.NoError(t, err)
	return NewFeedHandlers(svc, codec, zap.NewNop()), codec
}

func postFeed(h *FeedHandlers, body string, callerID *int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feed", strings.NewReader(body))
	if callerID != nil {
		req = req.WithContext(common.WithCallerID(req.Context(), *callerID))
	}
	rec := httptest.NewRecorder()
	h.PostFeed(rec, req)
	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestPostFeedValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing page", `{}`},
		{"negative page", `{"page": -1}`},
		{"malformed body", `{"page":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeFeedUsecase{}
			h, _ := newTestHandlers(t, svc)

			rec := postFeed(h, tt.body, nil)

			payload := decodeStatus(t, rec)
			assert.Equal(t, "validation error", payload["status"])
			assert.Zero(t, svc.calls)
		})
	}
}

func TestPostFeedOK(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, _ := newTestHandlers(t, svc)

	caller := int64(42)
	rec := postFeed(h, `{"page": 2}`, &caller)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeStatus(t, rec)
	assert.Equal(t, "ok", payload["status"])

	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, 2, svc.page)
	require.NotNil(t, svc.callerID)
	assert.Equal(t, caller, *svc.callerID)
	assert.Equal(t, NoFilter{}, svc.filter)
}

func TestPostFeedUsernameFilter(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, _ := newTestHandlers(t, svc)

	postFeed(h, `{"page": 0, "filter": {"username": "alice"}}`, nil)

	assert.Equal(t, UsernameFilter{Username: "alice"}, svc.filter)
}

func TestPostFeedPersonalWithoutSession(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, _ := newTestHandlers(t, svc)

	rec := postFeed(h, `{"page": 0, "filter": {"personal": true}}`, nil)

	payload := decodeStatus(t, rec)
	assert.Equal(t, "ok", payload["status"])
	assert.Empty(t, payload["posts"])
	assert.Zero(t, svc.calls)
}

func TestPostFeedPersonalWithSession(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, _ := newTestHandlers(t, svc)

	caller := int64(9)
	postFeed(h, `{"page": 0, "filter": {"personal": true}}`, &caller)

	assert.Equal(t, PersonalFilter{UserID: 9}, svc.filter)
}

func TestPostFeedCollectionToken(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, codec := newTestHandlers(t, svc)

	token := codec.EncodeCollection(31)
	postFeed(h, `{"page": 0, "filter": {"collection": "`+token+`"}}`, nil)

	assert.Equal(t, CollectionFilter{CollectionID: 31}, svc.filter)
}

// An unresolvable collection token is an empty page, not an error, and
// storage is never touched.
func TestPostFeedBadCollectionToken(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, _ := newTestHandlers(t, svc)

	rec := postFeed(h, `{"page": 0, "filter": {"collection": "!!bogus!!"}}`, nil)

	payload := decodeStatus(t, rec)
	assert.Equal(t, "ok", payload["status"])
	assert.Empty(t, payload["posts"])
	assert.Zero(t, svc.calls)
}

func TestGetFeedLandingPage(t *testing.T) {
	svc := &fakeFeedUsecase{}
	h, _ := newTestHandlers(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()
	h.GetFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, 0, svc.page)
	assert.Nil(t, svc.callerID)
	assert.Equal(t, NoFilter{}, svc.filter)
}
