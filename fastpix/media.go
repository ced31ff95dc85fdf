package fastpix

import (
	"context"
	"net/http"
	"net/url"
)

var (
	mediaList         = endpoint{http.MethodGet, "/on-demand", "fetch media list", nil}
	mediaGet          = endpoint{http.MethodGet, "/on-demand/{mediaId}", "fetch media", []pathParam{mediaIDParam}}
	mediaUpdate       = endpoint{http.MethodPatch, "/on-demand/{mediaId}", "update media", []pathParam{mediaIDParam}}
	mediaDelete       = endpoint{http.MethodDelete, "/on-demand/{mediaId}", "delete media", []pathParam{mediaIDParam}}
	mediaPullVideo    = endpoint{http.MethodPost, "/on-demand", "create on-demand request", nil}
	mediaPresignedURL = endpoint{http.MethodPost, "/on-demand/uploads", "create presigned URL request", nil}
	mediaInputInfo    = endpoint{http.MethodGet, "/on-demand/{mediaId}/input-info", "retrieve media input info", []pathParam{mediaIDParam}}
)

var (
	pullVideoDefaults    = Payload{"accessPolicy": "public"}
	presignedURLDefaults = Payload{"corsOrigin": "*"}
)

// MediaService manages on-demand media assets.
type MediaService struct {
	client *Client
}

// List fetches all media. query carries optional pagination and ordering
// parameters and may be nil.
func (s *MediaService) List(ctx context.Context, query url.Values) (any, error) {
	return s.client.call(ctx, mediaList, nil, query)
}

// Get fetches a media asset by ID.
func (s *MediaService) Get(ctx context.Context, mediaID string) (any, error) {
	return s.client.call(ctx, mediaGet, nil, nil, mediaID)
}

// Update patches a media asset.
func (s *MediaService) Update(ctx context.Context, mediaID string, data Payload) (any, error) {
	return s.client.call(ctx, mediaUpdate, data, nil, mediaID)
}

// Delete removes a media asset.
func (s *MediaService) Delete(ctx context.Context, mediaID string) (any, error) {
	return s.client.call(ctx, mediaDelete, nil, nil, mediaID)
}

// CreatePullVideo creates media from a remote URL. accessPolicy defaults to
// "public" when data does not set it.
func (s *MediaService) CreatePullVideo(ctx context.Context, data Payload) (any, error) {
	return s.client.call(ctx, mediaPullVideo, withDefaults(data, pullVideoDefaults), nil)
}

// GetPresignedURL requests a direct upload URL. corsOrigin defaults to "*"
// when data does not set it.
func (s *MediaService) GetPresignedURL(ctx context.Context, data Payload) (any, error) {
	return s.client.call(ctx, mediaPresignedURL, withDefaults(data, presignedURLDefaults), nil)
}

// GetMediaInfo retrieves the input info of a media asset.
func (s *MediaService) GetMediaInfo(ctx context.Context, mediaID string) (any, error) {
	return s.client.call(ctx, mediaInputInfo, nil, nil, mediaID)
}
