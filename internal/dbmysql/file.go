package dbmysql

import (
	"time"
)

// File type IDs as seeded in the file_type table.
const (
	FileTypeImage int64 = 1
	FileTypeVideo int64 = 2
)

type File struct {
	FileID     int64     `gorm:"primaryKey;autoIncrement;column:file_id"`
	FileTypeID int64     `gorm:"column:file_type_id;not null"`
	MimeType   string    `gorm:"column:mime_type;size:100;not null"`
	StorageKey string    `gorm:"column:storage_key;size:64"` // GridFS object ID, hex encoded
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (File) TableName() string { return "file" }

type PostFile struct {
	PostID int64 `gorm:"primaryKey;column:post_id"`
	FileID int64 `gorm:"primaryKey;column:file_id"`
}

func (PostFile) TableName() string { return "post_file" }
