package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "alice")
	require.NoError(t, err)

	_, err = ValidToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ValidToken(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestSessionMiddleware(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "bob")
	require.NoError(t, err)

	var captured *int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CallerID(r.Context())
	})
	handler := Session(testSecret)(next)

	tests := []struct {
		name   string
		header string
		wantID *int64
	}{
		{"valid bearer token", "Bearer " + token, ptr(int64(7))},
		{"no header", "", nil},
		{"malformed header", "Bearer", nil},
		{"invalid token", "Bearer junk", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantID == nil {
				assert.Nil(t, captured)
			} else {
				require.NotNil(t, captured)
				assert.Equal(t, *tt.wantID, *captured)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
