package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPredicates(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "none",
			filter:    NoFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "by username",
			filter:    UsernameFilter{Username: "alice"},
			wantWhere: "u.username = ?",
			wantArgs:  []any{"alice"},
		},
		{
			name:      "personal",
			filter:    PersonalFilter{UserID: 7},
			wantWhere: "(SELECT COUNT(fo.follower_id) FROM follower fo WHERE fo.follower_id = ? AND fo.user_id = u.user_id LIMIT 1) > 0",
			wantArgs:  []any{int64(7)},
		},
		{
			name:      "collection",
			filter:    CollectionFilter{CollectionID: 31},
			wantWhere: "(SELECT COUNT(cp.post_id) FROM collection_post cp WHERE cp.collection_id = ? AND cp.post_id = p.post_id LIMIT 1) > 0",
			wantArgs:  []any{int64(31)},
		},
		{
			name:      "admin",
			filter:    AdminFilter{},
			wantWhere: "(SELECT COUNT(fl.flag_id) FROM flag fl WHERE fl.post_id = p.post_id LIMIT 1) > 0",
			wantArgs:  nil,
		},
		{
			name:      "admin scoped to author",
			filter:    AdminFilter{Username: "bob"},
			wantWhere: "u.username = ? AND (SELECT COUNT(fl.flag_id) FROM flag fl WHERE fl.post_id = p.post_id LIMIT 1) > 0",
			wantArgs:  []any{"bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := tt.filter.Predicate()
			assert.Equal(t, tt.wantWhere, pred.Where)
			assert.Equal(t, tt.wantArgs, pred.Args)
		})
	}
}

// Parameter order is a wire contract with the parameterized base query:
// caller ID first (follower join), then filter parameters, then offset and
// limit.
func TestBuildFeedQueryParameterOrder(t *testing.T) {
	caller := int64(42)

	query, args := buildFeedQuery(&caller, PersonalFilter{UserID: caller}, 3)

	require.Len(t, args, 4)
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, int64(42), args[1])
	assert.Equal(t, 30, args[2])
	assert.Equal(t, 10, args[3])

	assert.Contains(t, query, "LEFT JOIN follower f ON f.follower_id = ?")
	assert.Contains(t, query, "ORDER BY p.created_at DESC")
}

func TestBuildFeedQueryAnonymousUnfiltered(t *testing.T) {
	query, args := buildFeedQuery(nil, nil, 0)

	// Only paging parameters remain: no caller, no filter.
	require.Equal(t, []any{0, 10}, args)

	assert.NotContains(t, query, "follower")
	assert.NotContains(t, query, "following")
	assert.NotContains(t, query, "WHERE")
}

func TestBuildFeedQuerySelectsFollowingOnlyForCaller(t *testing.T) {
	caller := int64(5)

	withCaller, _ := buildFeedQuery(&caller, NoFilter{}, 0)
	assert.Contains(t, withCaller, "f.follower_id AS following")

	anonymous, _ := buildFeedQuery(nil, NoFilter{}, 0)
	assert.False(t, strings.Contains(anonymous, "following"))
}

func TestBuildFeedQueryUsernameFilter(t *testing.T) {
	query, args := buildFeedQuery(nil, UsernameFilter{Username: "carol"}, 1)

	assert.Contains(t, query, "WHERE u.username = ?")
	assert.Equal(t, []any{"carol", 10, 10}, args)
}
