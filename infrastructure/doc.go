// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory store backed by patrickmn/go-cache
// - cache/redis: Redis-backed store for deployments sharing one cache
// - cache/sqlite: File-backed store that survives restarts
// - http/standard: net/http client with timeout and user agent
// - logger/structured: logrus logger with optional rotating file output
//
// # Cache Implementations
//
// Every store returns errors.ErrCacheMiss for absent or expired keys and
// treats a zero TTL as "never expires".
//
//	store := memory.NewMemoryCache()
//	err := store.Set(ctx, "news:list", payload, time.Hour)
//	keys, err := store.Keys(ctx, "news:detail:")
//
//	store, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
//	store, err := sqlite.NewSQLiteCache("data/news-cache.db", logger)
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(8*time.Second, "", nil)
//	resp, err := client.Get(ctx, "https://github.com/doitsujin/dxvk/releases.atom")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("News refreshed", map[string]interface{}{
//	    "items":   12,
//	    "sources": 17,
//	})
package infrastructure
