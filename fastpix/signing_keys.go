package fastpix

import (
	"context"
	"net/http"
)

var (
	signingKeyCreate = endpoint{http.MethodPost, "/iam/signing-keys", "create signing key", nil}
	signingKeyList   = endpoint{http.MethodGet, "/iam/signing-keys", "fetch signing keys", nil}
	signingKeyGet    = endpoint{http.MethodGet, "/iam/signing-keys/{signingKeyId}", "fetch signing key details", []pathParam{signingKeyIDParam}}
	signingKeyDelete = endpoint{http.MethodDelete, "/iam/signing-keys/{signingKeyId}", "delete signing key", []pathParam{signingKeyIDParam}}
)

// SigningKeyService manages the key pairs used to sign playback URLs.
// No signing happens client side.
type SigningKeyService struct {
	client *Client
}

// Create generates a new signing key. The private key is only returned in
// this response.
func (s *SigningKeyService) Create(ctx context.Context) (any, error) {
	return s.client.call(ctx, signingKeyCreate, nil, nil)
}

// List fetches all signing keys.
func (s *SigningKeyService) List(ctx context.Context) (any, error) {
	return s.client.call(ctx, signingKeyList, nil, nil)
}

// Get fetches the details of one signing key.
func (s *SigningKeyService) Get(ctx context.Context, signingKeyID string) (any, error) {
	return s.client.call(ctx, signingKeyGet, nil, nil, signingKeyID)
}

// Delete revokes a signing key.
func (s *SigningKeyService) Delete(ctx context.Context, signingKeyID string) (any, error) {
	return s.client.call(ctx, signingKeyDelete, nil, nil, signingKeyID)
}
