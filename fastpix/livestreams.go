package fastpix

import (
	"context"
	"net/http"
	"net/url"
)

var (
	streamCreate = endpoint{http.MethodPost, "/live/streams", "create live stream", nil}
	streamList   = endpoint{http.MethodGet, "/live/streams", "retrieve live streams", nil}
	streamGet    = endpoint{http.MethodGet, "/live/streams/{streamId}", "retrieve live stream", []pathParam{streamIDParam}}
	streamUpdate = endpoint{http.MethodPatch, "/live/streams/{streamId}", "update live stream", []pathParam{streamIDParam}}
	streamDelete = endpoint{http.MethodDelete, "/live/streams/{streamId}", "delete live stream", []pathParam{streamIDParam}}

	simulcastCreate = endpoint{http.MethodPost, "/live/streams/{streamId}/simulcast", "create simulcast", []pathParam{streamIDParam}}
	simulcastGet    = endpoint{http.MethodGet, "/live/streams/{streamId}/simulcast/{simulcastId}", "retrieve simulcast", []pathParam{streamIDParam, simulcastIDParam}}
	simulcastUpdate = endpoint{http.MethodPut, "/live/streams/{streamId}/simulcast/{simulcastId}", "update simulcast", []pathParam{streamIDParam, simulcastIDParam}}
	simulcastDelete = endpoint{http.MethodDelete, "/live/streams/{streamId}/simulcast/{simulcastId}", "delete simulcast", []pathParam{streamIDParam, simulcastIDParam}}
)

// LiveStreamService manages live streams and their simulcast targets.
type LiveStreamService struct {
	client *Client
}

// Create starts a new live stream.
func (s *LiveStreamService) Create(ctx context.Context, data Payload) (any, error) {
	return s.client.call(ctx, streamCreate, data, nil)
}

// List retrieves all live streams. query may be nil.
func (s *LiveStreamService) List(ctx context.Context, query url.Values) (any, error) {
	return s.client.call(ctx, streamList, nil, query)
}

// Get retrieves a live stream by ID.
func (s *LiveStreamService) Get(ctx context.Context, streamID string) (any, error) {
	return s.client.call(ctx, streamGet, nil, nil, streamID)
}

// Update modifies a live stream (PATCH).
func (s *LiveStreamService) Update(ctx context.Context, streamID string, data Payload) (any, error) {
	return s.client.call(ctx, streamUpdate, data, nil, streamID)
}

// Delete removes a live stream.
func (s *LiveStreamService) Delete(ctx context.Context, streamID string) (any, error) {
	return s.client.call(ctx, streamDelete, nil, nil, streamID)
}

// CreateSimulcast adds a restream target to a live stream.
func (s *LiveStreamService) CreateSimulcast(ctx context.Context, streamID string, data Payload) (any, error) {
	return s.client.call(ctx, simulcastCreate, data, nil, streamID)
}

// GetSimulcast retrieves one simulcast target of a live stream.
func (s *LiveStreamService) GetSimulcast(ctx context.Context, streamID, simulcastID string) (any, error) {
	return s.client.call(ctx, simulcastGet, nil, nil, streamID, simulcastID)
}

// UpdateSimulcast replaces a simulcast target (PUT).
func (s *LiveStreamService) UpdateSimulcast(ctx context.Context, streamID, simulcastID string, data Payload) (any, error) {
	return s.client.call(ctx, simulcastUpdate, data, nil, streamID, simulcastID)
}

// DeleteSimulcast removes a simulcast target.
func (s *LiveStreamService) DeleteSimulcast(ctx context.Context, streamID, simulcastID string) (any, error) {
	return s.client.call(ctx, simulcastDelete, nil, nil, streamID, simulcastID)
}
