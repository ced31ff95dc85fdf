package fastpix

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the FastPix API origin.
const DefaultBaseURL = "https://v1.fastpix.io"

// Credentials identify the caller. An APIKey is used verbatim and takes
// precedence; otherwise Username and Password are both required.
type Credentials struct {
	Username string
	Password string
	APIKey   string
}

// Encode returns the value sent after "Basic " in the Authorization header.
func (c Credentials) Encode() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	if c.Username != "" && c.Password != "" {
		return base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password)), nil
	}
	return "", ErrInvalidConfig
}

// Client represents a FastPix API client
type Client struct {
	baseURL    string
	credential string
	headers    http.Header
	httpClient Doer
	logger     zerolog.Logger

	Media                 *MediaService
	LiveStreams           *LiveStreamService
	MediaPlaybackIDs      *MediaPlaybackIDService
	LiveStreamPlaybackIDs *LiveStreamPlaybackIDService
	SigningKeys           *SigningKeyService
}

// NewClient creates a new FastPix client and verifies the credentials by
// listing media. A client is never returned in an unauthenticated state
// unless WithoutValidation is passed.
func NewClient(creds Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	credential, err := creds.Encode()
	if err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Basic "+credential)

	client := &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		credential: credential,
		headers:    headers,
		httpClient: httpClient,
		logger:     logger,
	}
	client.Media = &MediaService{client: client}
	client.LiveStreams = &LiveStreamService{client: client}
	client.MediaPlaybackIDs = &MediaPlaybackIDService{client: client}
	client.LiveStreamPlaybackIDs = &LiveStreamPlaybackIDService{client: client}
	client.SigningKeys = &SigningKeyService{client: client}

	if options.skipValidation {
		return client, nil
	}

	if err := client.Validate(context.Background()); err != nil {
		return nil, err
	}

	return client, nil
}

// Validate confirms the server accepts the client's credentials by fetching
// the media list once.
func (c *Client) Validate(ctx context.Context) error {
	if _, err := c.Media.List(ctx, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	c.logger.Debug().Str("base_url", c.baseURL).Msg("FastPix credentials accepted")
	return nil
}

// Credential returns the encoded credential used in the Authorization header.
func (c *Client) Credential() string {
	return c.credential
}

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
