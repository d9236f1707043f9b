//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"trailhead/internal/cache"
	"trailhead/internal/config"
	"trailhead/internal/dbmysql"
	"trailhead/internal/feed"
	"trailhead/internal/hashid"
	"trailhead/internal/search"
)

// InitializeApplication wires the feed service. Wire generates the real
// body in wire_gen.go.
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		ProvideLogger,
		dbmysql.NewMySQL,
		cache.New,
		hashid.NewCodec,
		feed.NewFeedRepository,
		wire.Bind(new(feed.Store), new(*feed.FeedRepository)),
		feed.NewFeedService,
		wire.Bind(new(feed.FeedUsecase), new(*feed.FeedService)),
		feed.NewFeedHandlers,
		search.NewSearchRepository,
		wire.Bind(new(search.Store), new(*search.SearchRepository)),
		search.NewSearchService,
		wire.Bind(new(search.SearchUsecase), new(*search.SearchService)),
		search.NewSearchHandlers,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
