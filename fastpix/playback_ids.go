package fastpix

import (
	"context"
	"net/http"
	"net/url"
)

var (
	mediaPlaybackCreate = endpoint{http.MethodPost, "/on-demand/{mediaId}/playback-ids", "create media playback ID", []pathParam{mediaIDParam}}
	mediaPlaybackDelete = endpoint{http.MethodDelete, "/on-demand/{mediaId}/playback-ids", "delete media playback IDs", []pathParam{mediaIDParam}}

	streamPlaybackCreate = endpoint{http.MethodPost, "/live/streams/{streamId}/playback-ids", "create live stream playback ID", []pathParam{streamIDParam}}
	streamPlaybackDelete = endpoint{http.MethodDelete, "/live/streams/{streamId}/playback-ids", "delete live stream playback ID", []pathParam{streamIDParam}}
	streamPlaybackGet    = endpoint{http.MethodGet, "/live/streams/{streamId}/playback-ids/{playbackId}", "retrieve live stream playback ID", []pathParam{streamIDParam, playbackIDParam}}
)

// playbackIDQuery encodes ids as repeated playbackId query parameters.
func playbackIDQuery(ids []string) url.Values {
	if len(ids) == 0 {
		return nil
	}
	return url.Values{"playbackId": ids}
}

// MediaPlaybackIDService issues and revokes playback IDs for media.
type MediaPlaybackIDService struct {
	client *Client
}

// Create issues a playback ID for a media asset.
func (s *MediaPlaybackIDService) Create(ctx context.Context, mediaID string, data Payload) (any, error) {
	return s.client.call(ctx, mediaPlaybackCreate, data, nil, mediaID)
}

// Delete revokes the given playback IDs of a media asset.
func (s *MediaPlaybackIDService) Delete(ctx context.Context, mediaID string, playbackIDs ...string) (any, error) {
	return s.client.call(ctx, mediaPlaybackDelete, nil, playbackIDQuery(playbackIDs), mediaID)
}

// LiveStreamPlaybackIDService issues and revokes playback IDs for live streams.
type LiveStreamPlaybackIDService struct {
	client *Client
}

// Create issues a playback ID. data may be nil, in which case no body is sent.
func (s *LiveStreamPlaybackIDService) Create(ctx context.Context, streamID string, data Payload) (any, error) {
	return s.client.call(ctx, streamPlaybackCreate, data, nil, streamID)
}

// Delete revokes the given playback IDs of a live stream.
func (s *LiveStreamPlaybackIDService) Delete(ctx context.Context, streamID string, playbackIDs ...string) (any, error) {
	return s.client.call(ctx, streamPlaybackDelete, nil, playbackIDQuery(playbackIDs), streamID)
}

// Get retrieves one playback ID of a live stream.
func (s *LiveStreamPlaybackIDService) Get(ctx context.Context, streamID, playbackID string) (any, error) {
	return s.client.call(ctx, streamPlaybackGet, nil, nil, streamID, playbackID)
}
