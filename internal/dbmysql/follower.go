package dbmysql

import "time"

// Follower records that follower_id follows user_id. Self rows are never
// created, so a personal feed does not include the caller's own posts.
type Follower struct {
	FollowerID int64     `gorm:"primaryKey;column:follower_id"`
	UserID     int64     `gorm:"primaryKey;column:user_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Follower) TableName() string { return "follower" }
