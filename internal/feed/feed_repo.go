package feed

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// PostRow is one row of the base feed query: post core fields plus the
// author summary joined in. Following carries the follower_id of the join
// row when the caller follows the author, NULL otherwise; it is only
// selected when a caller is present.
type PostRow struct {
	PostID       int64
	LocationID   *int64
	Text         string
	CreatedAt    time.Time
	Username     string
	DisplayName  string
	AvatarFileID *int64
	Following    *int64
}

// LocationRow is a location with its primary photo, if any.
type LocationRow struct {
	LocationID     int64
	LocationTypeID int64
	Name           string
	Address        string
	FileID         *int64
}

// ReactionTally is the count of one reaction kind on one post.
type ReactionTally struct {
	PostID  int64
	ReactID int64
	Amount  int64
}

// CallerReaction is the caller's own reaction on one post.
type CallerReaction struct {
	PostID  int64
	ReactID int64
}

// MediaRow is one file attached to a post, with its type metadata.
type MediaRow struct {
	FileID     int64
	PostID     int64
	FileTypeID int64
	MimeType   string
}

// Store is everything the feed assembler needs from storage. All queries of
// one request run against the same transaction via InTransaction.
type Store interface {
	InTransaction(ctx context.Context, fn func(Store) error) error
	PostPage(ctx context.Context, callerID *int64, filter Filter, page int) ([]PostRow, error)
	LocationsByIDs(ctx context.Context, ids []int64) ([]LocationRow, error)
	ReactionTallies(ctx context.Context, postIDs []int64) ([]ReactionTally, error)
	CallerReactions(ctx context.Context, postIDs []int64, userID int64) ([]CallerReaction, error)
	MediaForPosts(ctx context.Context, postIDs []int64) ([]MediaRow, error)
}

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// InTransaction runs fn against a repository bound to one transaction. The
// transaction is released when fn returns, success or failure. The feed
// only reads, so commit versus rollback is indistinguishable to callers.
func (r *FeedRepository) InTransaction(ctx context.Context, fn func(Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FeedRepository{db: tx})
	})
}

// buildFeedQuery assembles the base page query. Parameter order is a wire
// contract: caller ID (when present, for the follower join), then filter
// parameters, then offset and limit.
func buildFeedQuery(callerID *int64, filter Filter, page int) (string, []any) {
	if filter == nil {
		filter = NoFilter{}
	}
	pred := filter.Predicate()

	var sb strings.Builder
	args := make([]any, 0, len(pred.Args)+3)

	sb.WriteString(`SELECT
		p.post_id,
		p.location_id,
		p.text,
		p.created_at,
		u.username,
		u.display_name,
		uf.file_id AS avatar_file_id`)
	if callerID != nil {
		sb.WriteString(`,
		f.follower_id AS following`)
	}
	sb.WriteString(`
	FROM post p
	JOIN user u ON u.user_id = p.user_id
	LEFT JOIN user_file uf ON uf.user_id = u.user_id`)
	if callerID != nil {
		sb.WriteString(`
	LEFT JOIN follower f ON f.follower_id = ? AND f.user_id = u.user_id`)
		args = append(args, *callerID)
	}
	if pred.Where != "" {
		sb.WriteString(`
	WHERE ` + pred.Where)
		args = append(args, pred.Args...)
	}
	sb.WriteString(`
	ORDER BY p.created_at DESC
	LIMIT ?, ?`)
	args = append(args, page*PageSize, PageSize)

	return sb.String(), args
}

func (r *FeedRepository) PostPage(ctx context.Context, callerID *int64, filter Filter, page int) ([]PostRow, error) {
	query, args := buildFeedQuery(callerID, filter, page)

	var rows []PostRow
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *FeedRepository) LocationsByIDs(ctx context.Context, ids []int64) ([]LocationRow, error) {
	var rows []LocationRow
	err := r.db.WithContext(ctx).Raw(`SELECT
		l.location_id,
		l.location_type_id,
		l.name,
		l.address,
		lf.file_id
	FROM location l
	LEFT JOIN location_file lf ON lf.location_id = l.location_id
	WHERE l.location_id IN ?`, ids).Scan(&rows).Error
	return rows, err
}

// ReactionTallies counts reactions for a whole page in one grouped query;
// the per-post top-5 cut happens in memory.
func (r *FeedRepository) ReactionTallies(ctx context.Context, postIDs []int64) ([]ReactionTally, error) {
	var rows []ReactionTally
	err := r.db.WithContext(ctx).Raw(`SELECT
		post_id,
		react_id,
		COUNT(react_id) AS amount
	FROM post_react
	WHERE post_id IN ?
	GROUP BY post_id, react_id`, postIDs).Scan(&rows).Error
	return rows, err
}

func (r *FeedRepository) CallerReactions(ctx context.Context, postIDs []int64, userID int64) ([]CallerReaction, error) {
	var rows []CallerReaction
	err := r.db.WithContext(ctx).Raw(`SELECT
		post_id,
		react_id
	FROM post_react
	WHERE post_id IN ? AND user_id = ?`, postIDs, userID).Scan(&rows).Error
	return rows, err
}

func (r *FeedRepository) MediaForPosts(ctx context.Context, postIDs []int64) ([]MediaRow, error) {
	var rows []MediaRow
	err := r.db.WithContext(ctx).Raw(`SELECT
		pf.file_id,
		pf.post_id,
		f.file_type_id,
		f.mime_type
	FROM post_file pf
	JOIN file f ON f.file_id = pf.file_id
	WHERE pf.post_id IN ?`, postIDs).Scan(&rows).Error
	return rows, err
}
