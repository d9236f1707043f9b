package dbmysql

import "time"

// Flag is a moderation report against a post. The admin feed shows every
// post with at least one flag row.
type Flag struct {
	FlagID    int64     `gorm:"primaryKey;autoIncrement;column:flag_id"`
	PostID    int64     `gorm:"column:post_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Reason    string    `gorm:"column:reason;size:300"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Flag) TableName() string { return "flag" }
