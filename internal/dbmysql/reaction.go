package dbmysql

import "time"

// PostReact holds one reaction of one user on one post. A user may react
// at most once per post; changing a reaction replaces the row.
type PostReact struct {
	PostID    int64     `gorm:"primaryKey;column:post_id"`
	UserID    int64     `gorm:"primaryKey;column:user_id"`
	ReactID   int64     `gorm:"column:react_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PostReact) TableName() string { return "post_react" }
