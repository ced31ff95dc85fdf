// Package fastpix provides a client for the FastPix video platform API.
//
// The client covers on-demand media, live streams and their simulcast
// targets, playback IDs for both, and signing key administration. Every
// operation is a single synchronous request that returns the decoded JSON
// response as-is.
//
// # Usage
//
// Create a client with an access token ID and secret, or with a
// pre-encoded key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := fastpix.NewClient(fastpix.Credentials{
//		Username: "token-id",
//		Password: "secret-key",
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	media, err := client.Media.Get(ctx, "abc123")
//
// NewClient lists media once to verify the credentials, so a wrong key or
// an unreachable server surfaces as a constructor error. Pass
// WithoutValidation to skip the check and call Validate later.
//
// # Error Handling
//
// Server and transport failures are returned as *APIError, annotated with
// the operation that failed:
//
//	var apiErr *fastpix.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing resource
//	}
//
// Caller mistakes are reported before any request is sent: *ParamError
// (wrapping ErrMissingParameter) for empty identifiers, ErrUnsupportedMethod
// from Do, and ErrInvalidConfig from NewClient.
package fastpix
