package dbmysql

// Location type IDs as seeded in the location_type table.
const (
	LocationTypePark        int64 = 1
	LocationTypePeak        int64 = 2
	LocationTypeAttraction  int64 = 3
	LocationTypeInformation int64 = 4
)

type Location struct {
	LocationID     int64  `gorm:"primaryKey;autoIncrement;column:location_id"`
	LocationTypeID int64  `gorm:"column:location_type_id;not null"`
	Name           string `gorm:"column:name;size:200;not null"`
	Address        string `gorm:"column:address;size:300"`
}

func (Location) TableName() string { return "location" }

// LocationFile links a location to its primary photo. At most one row per location.
type LocationFile struct {
	LocationID int64 `gorm:"primaryKey;column:location_id"`
	FileID     int64 `gorm:"primaryKey;column:file_id"`
}

func (LocationFile) TableName() string { return "location_file" }
