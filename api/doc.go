// Package api provides the HTTP API layer for the news aggregator.
// It uses the Huma framework on a chi router to provide OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and middleware chain
// - handlers/: news, config and health handlers
// - middleware/: request logging, feature flags and per-IP rate limiting
//
// # Endpoints
//
//	GET      /, /health              service identity and endpoint list
//	GET      /api/news/list          paginated card listing (page, page_size)
//	GET      /api/news/detail/{id}   one item as an HTML document, 404 envelope if unknown
//	GET|POST /api/news/refresh       invalidate the cache and re-fetch every source
//	GET      /api/config             configured sources, cache TTL and item cap
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    Flags:       flags,
//	    RateLimiter: middleware.NewRateLimiter(100, time.Minute),
//	})
//	handlers.RegisterHealthRoutes(humaAPI)
//	handlers.NewNewsHandler(newsService, logger).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// News endpoints answer with the client envelope ({code, msg, time, data})
// even for unknown items. Unexpected failures use huma's RFC 7807 errors.
package api
