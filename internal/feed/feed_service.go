package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"trailhead/internal/cache"
	"trailhead/internal/dbmysql"
	"trailhead/internal/hashid"
)

const (
	topReactionCount = 5
	anonFeedCacheKey = "trailhead:feed:anon:%d"
)

// UserView is the author summary embedded in each post. Following is only
// present when the request carried a session.
type UserView struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Image       string `json:"image"`
	Following   *bool  `json:"following,omitempty"`
}

// MediaView is one attached file. Type is "image", "video" or null for
// unknown file types.
type MediaView struct {
	FileID   string  `json:"fileID"`
	Type     *string `json:"type"`
	MimeType string  `json:"mimeType"`
}

// ReactView is one reaction tally with its display text resolved.
type ReactView struct {
	Text   string `json:"text"`
	Amount int64  `json:"amount"`
}

type LocationView struct {
	LocationID     int64   `json:"locationID"`
	LocationTypeID int64   `json:"locationTypeID"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Icon           string  `json:"icon"`
	FileID         *string `json:"fileID"`
}

// PostView is the denormalized, wire-visible shape of one post.
//
// LocationID is the raw internal integer while every other identifier is
// token encoded. Existing consumers depend on the field as-is, so it stays
// until the API is versioned.
type PostView struct {
	PostID     string        `json:"postID"`
	LocationID *int64        `json:"locationID"`
	Text       string        `json:"text"`
	CreatedAt  time.Time     `json:"createdAt"`
	User       UserView      `json:"user"`
	Media      []MediaView   `json:"media"`
	UserReact  string        `json:"userReact,omitempty"`
	Reacts     []ReactView   `json:"reacts"`
	Location   *LocationView `json:"location"`
}

type FeedPage struct {
	Status string     `json:"status"`
	Posts  []PostView `json:"posts"`
}

// LocationIcon classifies a location type into its display icon. Anything
// unrecognized, including no location at all, falls back to the plain
// marker.
func LocationIcon(locationTypeID int64) string {
	switch locationTypeID {
	case dbmysql.LocationTypePark:
		return "nature-people"
	case dbmysql.LocationTypePeak:
		return "image-filter-hdr"
	case dbmysql.LocationTypeAttraction:
		return "star"
	case dbmysql.LocationTypeInformation:
		return "information"
	default:
		return "map-marker"
	}
}

type FeedService struct {
	store Store
	codec *hashid.Codec
	cache *cache.Client
	log   *zap.Logger
}

func NewFeedService(store Store, codec *hashid.Codec, cacheClient *cache.Client, log *zap.Logger) *FeedService {
	return &FeedService{
		store: store,
		codec: codec,
		cache: cacheClient,
		log:   log,
	}
}

// GetFeed assembles one page of the feed: base rows first, then locations,
// reaction tallies, the caller's own reactions and media in bulk, stitched
// into denormalized views with every identifier re-encoded. All queries run
// inside one transaction; a failure anywhere surfaces as an error with no
// partial result.
func (s *FeedService) GetFeed(ctx context.Context, page int, callerID *int64, filter Filter) (*FeedPage, error) {
	cacheable := callerID == nil && isNoFilter(filter)
	if cacheable {
		var cached FeedPage
		if s.cache.GetJSON(ctx, fmt.Sprintf(anonFeedCacheKey, page), &cached) {
			return &cached, nil
		}
	}

	var result *FeedPage
	err := s.store.InTransaction(ctx, func(tx Store) error {
		assembled, err := s.assemble(ctx, tx, page, callerID, filter)
		if err != nil {
			return err
		}
		result = assembled
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("feed assembly: %w", err)
	}

	if cacheable {
		s.cache.SetJSON(ctx, fmt.Sprintf(anonFeedCacheKey, page), result)
	}
	return result, nil
}

func (s *FeedService) assemble(ctx context.Context, tx Store, page int, callerID *int64, filter Filter) (*FeedPage, error) {
	rows, err := tx.PostPage(ctx, callerID, filter, page)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &FeedPage{Status: "ok", Posts: []PostView{}}, nil
	}

	postIDs := make([]int64, 0, len(rows))
	locationIDs := make([]int64, 0, len(rows))
	seenLocations := make(map[int64]bool)
	for _, row := range rows {
		postIDs = append(postIDs, row.PostID)
		if row.LocationID != nil && !seenLocations[*row.LocationID] {
			seenLocations[*row.LocationID] = true
			locationIDs = append(locationIDs, *row.LocationID)
		}
	}

	locations := make(map[int64]LocationRow)
	if len(locationIDs) > 0 {
		locationRows, err := tx.LocationsByIDs(ctx, locationIDs)
		if err != nil {
			return nil, err
		}
		for _, l := range locationRows {
			locations[l.LocationID] = l
		}
	}

	tallies, err := tx.ReactionTallies(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	reacts := partitionTallies(tallies)

	userReacts := make(map[int64]int64)
	if callerID != nil {
		callerRows, err := tx.CallerReactions(ctx, postIDs, *callerID)
		if err != nil {
			return nil, err
		}
		for _, cr := range callerRows {
			userReacts[cr.PostID] = cr.ReactID
		}
	}

	mediaRows, err := tx.MediaForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	media := make(map[int64][]MediaRow)
	for _, m := range mediaRows {
		media[m.PostID] = append(media[m.PostID], m)
	}

	posts := make([]PostView, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, s.stitch(row, callerID, locations, reacts, userReacts, media))
	}
	return &FeedPage{Status: "ok", Posts: posts}, nil
}

// partitionTallies splits the bulk tally result by post and applies the
// per-post cut: lowest count first, at most five kinds. The ascending order
// matches what current consumers see; "top reactions" arguably means the
// opposite, so the ordering is pinned by a test until product confirms.
func partitionTallies(tallies []ReactionTally) map[int64][]ReactionTally {
	byPost := make(map[int64][]ReactionTally)
	for _, t := range tallies {
		byPost[t.PostID] = append(byPost[t.PostID], t)
	}
	for postID, list := range byPost {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Amount < list[j].Amount })
		if len(list) > topReactionCount {
			list = list[:topReactionCount]
		}
		byPost[postID] = list
	}
	return byPost
}

func (s *FeedService) stitch(
	row PostRow,
	callerID *int64,
	locations map[int64]LocationRow,
	reacts map[int64][]ReactionTally,
	userReacts map[int64]int64,
	media map[int64][]MediaRow,
) PostView {
	view := PostView{
		PostID:     s.codec.EncodePost(row.PostID),
		LocationID: row.LocationID,
		Text:       row.Text,
		CreatedAt:  row.CreatedAt,
		Media:      make([]MediaView, 0, len(media[row.PostID])),
		Reacts:     make([]ReactView, 0, len(reacts[row.PostID])),
	}

	view.User = UserView{
		Username:    row.Username,
		DisplayName: row.DisplayName,
	}
	if row.AvatarFileID != nil {
		view.User.Image = s.codec.EncodeFile(*row.AvatarFileID)
	}
	if callerID != nil {
		following := row.Following != nil && *row.Following != 0
		view.User.Following = &following
	}

	for _, m := range media[row.PostID] {
		var mediaType *string
		switch m.FileTypeID {
		case dbmysql.FileTypeImage:
			t := "image"
			mediaType = &t
		case dbmysql.FileTypeVideo:
			t := "video"
			mediaType = &t
		}
		view.Media = append(view.Media, MediaView{
			FileID:   s.codec.EncodeFile(m.FileID),
			Type:     mediaType,
			MimeType: m.MimeType,
		})
	}

	if reactID, ok := userReacts[row.PostID]; ok {
		view.UserReact = ReactText(reactID)
	}
	for _, t := range reacts[row.PostID] {
		view.Reacts = append(view.Reacts, ReactView{
			Text:   ReactText(t.ReactID),
			Amount: t.Amount,
		})
	}

	if row.LocationID != nil {
		if loc, ok := locations[*row.LocationID]; ok {
			locView := &LocationView{
				LocationID:     loc.LocationID,
				LocationTypeID: loc.LocationTypeID,
				Name:           loc.Name,
				Address:        loc.Address,
				Icon:           LocationIcon(loc.LocationTypeID),
			}
			if loc.FileID != nil {
				token := s.codec.EncodeFile(*loc.FileID)
				locView.FileID = &token
			}
			view.Location = locView
		}
	}

	return view
}

func isNoFilter(filter Filter) bool {
	if filter == nil {
		return true
	}
	_, ok := filter.(NoFilter)
	return ok
}
