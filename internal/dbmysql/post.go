package dbmysql

import (
	"time"
)

// Post is immutable after creation; edits happen through delete-and-repost.
type Post struct {
	PostID     int64     `gorm:"primaryKey;autoIncrement;column:post_id"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	LocationID *int64    `gorm:"column:location_id;index"`
	Text       string    `gorm:"column:text;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index"`

	User     User      `gorm:"foreignKey:UserID"`
	Location *Location `gorm:"foreignKey:LocationID"`
}

func (Post) TableName() string { return "post" }
