package wire

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trailhead/internal/config"
	"trailhead/internal/feed"
	"trailhead/internal/search"
)

type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *zap.Logger
	Feed   *feed.FeedHandlers
	Search *search.SearchHandlers
}

// ProvideLogger builds the process logger from config.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "development" {
		return zap.NewDevelopment()
	}

	zapCfg := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
		zapCfg.Level = level
	}
	if cfg.Logging.Format == "text" {
		zapCfg.Encoding = "console"
	}
	return zapCfg.Build()
}
