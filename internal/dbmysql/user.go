package dbmysql

import (
	"time"
)

type User struct {
	UserID      int64     `gorm:"primaryKey;autoIncrement;column:user_id"`
	Username    string    `gorm:"column:username;uniqueIndex;size:50;not null"`
	DisplayName string    `gorm:"column:display_name;size:100"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "user" }

// UserFile links a user to their avatar file. At most one row per user.
type UserFile struct {
	UserID int64 `gorm:"primaryKey;column:user_id"`
	FileID int64 `gorm:"primaryKey;column:file_id"`
}

func (UserFile) TableName() string { return "user_file" }
