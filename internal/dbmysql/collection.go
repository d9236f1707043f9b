package dbmysql

import "time"

type Collection struct {
	CollectionID int64     `gorm:"primaryKey;autoIncrement;column:collection_id"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	Name         string    `gorm:"column:name;size:100;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Collection) TableName() string { return "collection" }

type CollectionPost struct {
	CollectionID int64 `gorm:"primaryKey;column:collection_id"`
	PostID       int64 `gorm:"primaryKey;column:post_id"`
}

func (CollectionPost) TableName() string { return "collection_post" }
