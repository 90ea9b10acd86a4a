// ABOUTME: News handlers for the Huma API
// ABOUTME: Serves paginated listings, item details, on-demand refresh and the source configuration

package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"news-aggregator-api/core/domain"
	"news-aggregator-api/core/errors"
	"news-aggregator-api/core/interfaces"
	"news-aggregator-api/core/transform"
	"news-aggregator-api/pkg/utils/duration"
)

// NewsService defines the methods needed from the news service
type NewsService interface {
	List(ctx context.Context, page, pageSize int) transform.ListResponse
	Detail(ctx context.Context, id int64) (transform.DetailResponse, error)
	Refresh(ctx context.Context) (int, error)
	Sources() domain.Sources
	CacheTTL() time.Duration
	MaxTotalItems() int
}

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	service NewsService
	logger  interfaces.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(service NewsService, logger interfaces.Logger) *NewsHandler {
	return &NewsHandler{service: service, logger: logger}
}

// RegisterRoutes registers all news-related routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/api/news/list",
		Summary:     "List news",
		Description: "Returns one page of aggregated news cards, newest first",
		Tags:        []string{"News"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "getNewsDetail",
		Method:      http.MethodGet,
		Path:        "/api/news/detail/{id}",
		Summary:     "Get news detail",
		Description: "Returns one news item rendered as an HTML document",
		Tags:        []string{"News"},
	}, h.Detail)

	huma.Register(api, huma.Operation{
		OperationID: "refreshNews",
		Method:      http.MethodPost,
		Path:        "/api/news/refresh",
		Summary:     "Force refresh",
		Description: "Drops cached entries and re-fetches every source",
		Tags:        []string{"News"},
	}, h.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "refreshNewsGet",
		Method:      http.MethodGet,
		Path:        "/api/news/refresh",
		Summary:     "Force refresh",
		Description: "Same as POST, kept for clients that can only issue GET",
		Tags:        []string{"News"},
	}, h.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "getConfig",
		Method:      http.MethodGet,
		Path:        "/api/config",
		Summary:     "View sources",
		Description: "Returns the configured sources and cache settings",
		Tags:        []string{"Config"},
	}, h.Config)
}

// ListInput defines the query parameters for the listing
type ListInput struct {
	Page     int `query:"page" default:"1" doc:"1-based page number"`
	PageSize int `query:"page_size" default:"4" doc:"Cards per page"`
}

// ListOutput defines the listing response
type ListOutput struct {
	Body transform.ListResponse
}

// List handles GET /api/news/list
func (h *NewsHandler) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	return &ListOutput{Body: h.service.List(ctx, input.Page, input.PageSize)}, nil
}

// DetailInput defines the path parameter for the detail lookup
type DetailInput struct {
	ID string `path:"id" doc:"News item id"`
}

// DetailOutput defines the detail response. Status is 404 for unknown ids.
type DetailOutput struct {
	Status int
	Body   transform.DetailResponse
}

// Detail handles GET /api/news/detail/{id}
func (h *NewsHandler) Detail(ctx context.Context, input *DetailInput) (*DetailOutput, error) {
	id, err := strconv.ParseInt(input.ID, 10, 64)
	if err != nil {
		return &DetailOutput{Status: http.StatusNotFound, Body: transform.NotFound()}, nil
	}

	resp, err := h.service.Detail(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return &DetailOutput{Status: http.StatusNotFound, Body: transform.NotFound()}, nil
		}
		return nil, toHumaError(err)
	}

	return &DetailOutput{Status: http.StatusOK, Body: resp}, nil
}

// RefreshBody reports the outcome of a forced refresh
type RefreshBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Items   int    `json:"items"`
}

// RefreshOutput defines the refresh response
type RefreshOutput struct {
	Status int
	Body   RefreshBody
}

// Refresh handles GET and POST /api/news/refresh
func (h *NewsHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	count, err := h.service.Refresh(ctx)
	if err != nil {
		h.logger.Error("Forced refresh failed", map[string]interface{}{
			"error": err.Error(),
			"items": count,
		})
		return &RefreshOutput{
			Status: http.StatusInternalServerError,
			Body:   RefreshBody{Success: false, Message: err.Error(), Items: count},
		}, nil
	}

	return &RefreshOutput{
		Status: http.StatusOK,
		Body:   RefreshBody{Success: true, Message: "Cache refreshed successfully", Items: count},
	}, nil
}

// ConfigBody describes the active configuration
type ConfigBody struct {
	Sources  domain.Sources `json:"sources"`
	CacheTTL string         `json:"cache_ttl"`
	MaxItems int            `json:"max_items"`
}

// ConfigOutput defines the config response
type ConfigOutput struct {
	Body ConfigBody
}

// Config handles GET /api/config
func (h *NewsHandler) Config(ctx context.Context, _ *struct{}) (*ConfigOutput, error) {
	return &ConfigOutput{Body: ConfigBody{
		Sources:  h.service.Sources(),
		CacheTTL: duration.Humanize(h.service.CacheTTL()),
		MaxItems: h.service.MaxTotalItems(),
	}}, nil
}
