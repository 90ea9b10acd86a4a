// Package core contains the business logic for the news aggregator.
// It is framework-agnostic: HTTP, storage and logging arrive through the
// interfaces package and can be swapped without touching these packages.
//
// The core package is organized into several sub-packages:
//
// - domain: FeedSource, RawItem and NewsItem models
// - parsers: syndication, release and video parsers plus the fetcher
// - aggregator: per-source caps, stable ids and newest-first ordering
// - transform: listing and detail envelopes, including the HTML document
// - cache: cache-aside manager over an interfaces.Store
// - news: the service tying fetch, aggregate, cache and transform together
// - workers: the background refresher
// - errors: typed errors and the cache miss sentinel
// - interfaces: contracts for external dependencies (store, HTTP, logger)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Store:      store,      // implements interfaces.Store
//	    HTTPClient: httpClient, // implements interfaces.HTTPClient
//	    Logger:     logger,     // implements interfaces.Logger
//	}
//
//	svc := news.NewService(deps, news.Options{
//	    Sources:       cfg.Sources.ToDomain(),
//	    MaxTotalItems: 50,
//	    CacheTTL:      time.Hour,
//	})
//
//	page := svc.List(ctx, 1, 4)
//	detail, err := svc.Detail(ctx, page.Data.CardList[0].ID)
package core
