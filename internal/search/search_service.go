package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"trailhead/internal/feed"
	"trailhead/internal/hashid"
)

// Filter names accepted by Search. Anything else falls through to the
// combined predicate.
const (
	FilterTag      = "tag"
	FilterLocation = "location"
	FilterUser     = "user"
)

// UserView is the author summary in a search result. Search carries no
// session, so there is no avatar or follow state here.
type UserView struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type LocationView struct {
	LocationTypeID int64   `json:"locationTypeID"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Icon           string  `json:"icon"`
	FileID         *string `json:"fileID"`
}

// PostView is the wire shape of one search result. Media is a bare list of
// encoded file tokens, unlike the feed's typed media objects; consumers
// depend on the difference, so it stays.
type PostView struct {
	PostID     string        `json:"postID"`
	LocationID *int64        `json:"locationID"`
	Text       string        `json:"text"`
	CreatedAt  time.Time     `json:"createdAt"`
	User       UserView      `json:"user"`
	Media      []string      `json:"media"`
	Location   *LocationView `json:"location"`
}

type ResultPage struct {
	Status string     `json:"status"`
	Posts  []PostView `json:"posts"`
}

type SearchService struct {
	store Store
	codec *hashid.Codec
	log   *zap.Logger
}

func NewSearchService(store Store, codec *hashid.Codec, log *zap.Logger) *SearchService {
	return &SearchService{store: store, codec: codec, log: log}
}

// Search assembles one page of search results for the given query and
// filter. A query that is blank once `#` and `@` markers are stripped, or a
// location token that decodes to nothing, short-circuits to an empty page
// before any query is issued.
func (s *SearchService) Search(ctx context.Context, query, filter string, page int) (*ResultPage, error) {
	pred, ok := s.buildPredicate(query, filter)
	if !ok {
		return &ResultPage{Status: "ok", Posts: []PostView{}}, nil
	}

	var result *ResultPage
	err := s.store.InTransaction(ctx, func(tx Store) error {
		assembled, err := s.assemble(ctx, tx, pred, page)
		if err != nil {
			return err
		}
		result = assembled
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search assembly: %w", err)
	}
	return result, nil
}

// buildPredicate translates the query and filter into the search predicate.
// The second return is false when no query should be issued at all.
func (s *SearchService) buildPredicate(query, filter string) (feed.Predicate, bool) {
	textQuery := strings.TrimSpace(query)
	stripped := strings.NewReplacer("#", "", "@", "").Replace(textQuery)
	if len(stripped) < 1 {
		return feed.Predicate{}, false
	}

	tagQuery := "%" + strings.ReplaceAll(textQuery, "#", "") + "%"
	userQuery := "%" + strings.ReplaceAll(textQuery, "@", "") + "%"
	locationQuery := "%" + textQuery + "%"

	switch filter {
	case FilterTag:
		return feed.Predicate{
			Where: "pt.post_id = p.post_id AND t.tag_id = pt.tag_id AND t.text LIKE ?",
			Args:  []any{tagQuery},
		}, true
	case FilterLocation:
		locationID, ok := s.codec.DecodeLocation(textQuery)
		if !ok {
			return feed.Predicate{}, false
		}
		return feed.Predicate{
			Where: "l.location_id = ?",
			Args:  []any{locationID},
		}, true
	case FilterUser:
		return feed.Predicate{
			Where: "u.username LIKE ?",
			Args:  []any{userQuery},
		}, true
	default:
		return feed.Predicate{
			Where: "(u.username LIKE ?) OR " +
				"(pt.post_id = p.post_id AND t.tag_id = pt.tag_id AND t.text LIKE ?) OR " +
				"(l.name LIKE ? OR l.address LIKE ?)",
			Args: []any{userQuery, tagQuery, locationQuery, locationQuery},
		}, true
	}
}

func (s *SearchService) assemble(ctx context.Context, tx Store, pred feed.Predicate, page int) (*ResultPage, error) {
	rows, err := tx.SearchPosts(ctx, pred, page)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &ResultPage{Status: "ok", Posts: []PostView{}}, nil
	}

	postIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		postIDs = append(postIDs, row.PostID)
	}

	mediaRows, err := tx.MediaForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	media := make(map[int64][]string)
	for _, m := range mediaRows {
		media[m.PostID] = append(media[m.PostID], s.codec.EncodeFile(m.FileID))
	}

	posts := make([]PostView, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, s.stitch(row, media))
	}
	return &ResultPage{Status: "ok", Posts: posts}, nil
}

func (s *SearchService) stitch(row PostRow, media map[int64][]string) PostView {
	view := PostView{
		PostID:     s.codec.EncodePost(row.PostID),
		LocationID: row.LocationID,
		Text:       row.Text,
		CreatedAt:  row.CreatedAt,
		User: UserView{
			Username:    row.Username,
			DisplayName: row.DisplayName,
		},
		Media: media[row.PostID],
	}
	if view.Media == nil {
		view.Media = []string{}
	}

	locView := &LocationView{
		LocationTypeID: row.LocationTypeID,
		Name:           row.LocationName,
		Address:        row.LocationAddress,
		Icon:           feed.LocationIcon(row.LocationTypeID),
	}
	if row.LocationFileID != nil {
		token := s.codec.EncodeFile(*row.LocationFileID)
		locView.FileID = &token
	}
	view.Location = locView

	return view
}
