package search

import (
	"context"
	"time"

	"gorm.io/gorm"

	"trailhead/internal/feed"
)

// PostRow is one row of the search query: post core fields plus the author
// and location summaries joined in. Search only matches posts that have a
// location, so the location columns are never NULL; the location file is.
type PostRow struct {
	PostID          int64
	LocationID      *int64
	Text            string
	CreatedAt       time.Time
	Username        string
	DisplayName     string
	LocationTypeID  int64
	LocationName    string
	LocationAddress string
	LocationFileID  *int64
}

// MediaFileRow is one attached file reference; search exposes bare file
// tokens, so no type metadata is loaded.
type MediaFileRow struct {
	FileID int64
	PostID int64
}

// Store is everything the search assembler needs from storage.
type Store interface {
	InTransaction(ctx context.Context, fn func(Store) error) error
	SearchPosts(ctx context.Context, pred feed.Predicate, page int) ([]PostRow, error)
	MediaForPosts(ctx context.Context, postIDs []int64) ([]MediaFileRow, error)
}

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// InTransaction runs fn against a repository bound to one transaction,
// released when fn returns.
func (r *SearchRepository) InTransaction(ctx context.Context, fn func(Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SearchRepository{db: tx})
	})
}

// SearchPosts runs the single joined search query. The tag join fans out
// one row per matching tag, so results are grouped back down by post.
func (r *SearchRepository) SearchPosts(ctx context.Context, pred feed.Predicate, page int) ([]PostRow, error) {
	args := make([]any, 0, len(pred.Args)+2)
	args = append(args, pred.Args...)
	args = append(args, page*feed.PageSize, feed.PageSize)

	var rows []PostRow
	err := r.db.WithContext(ctx).Raw(`SELECT
		p.post_id,
		p.location_id,
		p.text,
		p.created_at,
		u.username,
		u.display_name,
		l.location_type_id,
		l.name AS location_name,
		l.address AS location_address,
		lf.file_id AS location_file_id
	FROM post p
	JOIN user u ON u.user_id = p.user_id
	JOIN location l ON l.location_id = p.location_id
	LEFT JOIN post_tag pt ON pt.post_id = p.post_id
	LEFT JOIN tag t ON t.tag_id = pt.tag_id
	LEFT JOIN location_file lf ON lf.location_id = p.location_id
	WHERE (`+pred.Where+`)
	GROUP BY p.post_id
	ORDER BY p.created_at DESC
	LIMIT ?, ?`, args...).Scan(&rows).Error
	return rows, err
}

func (r *SearchRepository) MediaForPosts(ctx context.Context, postIDs []int64) ([]MediaFileRow, error) {
	var rows []MediaFileRow
	err := r.db.WithContext(ctx).Raw(`SELECT
		pf.file_id,
		pf.post_id
	FROM post_file pf
	WHERE pf.post_id IN ?`, postIDs).Scan(&rows).Error
	return rows, err
}
