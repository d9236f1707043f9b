package dbmysql

type Tag struct {
	TagID int64  `gorm:"primaryKey;autoIncrement;column:tag_id"`
	Text  string `gorm:"column:text;uniqueIndex;size:100;not null"`
}

func (Tag) TableName() string { return "tag" }

type PostTag struct {
	PostID int64 `gorm:"primaryKey;column:post_id"`
	TagID  int64 `gorm:"primaryKey;column:tag_id"`
}

func (PostTag) TableName() string { return "post_tag" }
