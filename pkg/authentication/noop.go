// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a no-op token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as the subject for development purposes.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	return rawToken, nil
}
