// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Store backs the news cache
	Store Store

	// HTTPClient fetches upstream feeds
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
