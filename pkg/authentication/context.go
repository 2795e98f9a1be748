// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var subjectContextKey = contextKey{}

// WithSubject returns a new context carrying the verified token subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// GetSubject retrieves the verified token subject from the context.
// Returns an empty string and false if no subject is present.
func GetSubject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectContextKey).(string)
	return s, ok
}
