package dbmysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trailhead/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL.
func NewMySQL(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN is not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate creates every table the feed and search queries touch.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserFile{},
		&Location{},
		&LocationFile{},
		&File{},
		&Post{},
		&PostFile{},
		&PostReact{},
		&Tag{},
		&PostTag{},
		&Follower{},
		&Collection{},
		&CollectionPost{},
		&Flag{},
	)
}
