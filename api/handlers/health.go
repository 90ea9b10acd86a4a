// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service identity and the list of public endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	// ServiceName is reported by the health endpoint
	ServiceName = "GameHub News Aggregator"

	// ServiceVersion is reported by the health endpoint and the OpenAPI document
	ServiceVersion = "1.0.0"
)

var endpoints = []string{
	"/api/news/list - Get news list",
	"/api/news/detail/:id - Get news detail",
	"/api/news/refresh - Force refresh cache",
	"/api/config - View current sources",
}

// HealthBody is the health check payload
type HealthBody struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// HealthOutput defines the health response
type HealthOutput struct {
	Body HealthBody
}

// RegisterHealthRoutes registers GET / and GET /health
func RegisterHealthRoutes(api huma.API) {
	for _, route := range []struct{ id, path string }{
		{"root", "/"},
		{"health", "/health"},
	} {
		huma.Register(api, huma.Operation{
			OperationID: route.id,
			Method:      http.MethodGet,
			Path:        route.path,
			Summary:     "Health check",
			Tags:        []string{"Health"},
		}, Health)
	}
}

// Health reports that the service is up
func Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	list := make([]string, len(endpoints))
	copy(list, endpoints)

	return &HealthOutput{Body: HealthBody{
		Status:    "ok",
		Service:   ServiceName,
		Version:   ServiceVersion,
		Endpoints: list,
	}}, nil
}
