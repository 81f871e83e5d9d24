package domain

import "context"

type PropertyStore interface {
	Insert(ctx context.Context, p Property) (Property, error)
	FindByID(ctx context.Context, id string) (Property, error)
	Find(ctx context.Context, q ListQuery) ([]Property, error)
	FindByOwner(ctx context.Context, subjectID string) ([]Property, error)
	// ApplyPatch merges the given fields into the document and returns the
	// result. Callers are responsible for stripping protected fields first.
	ApplyPatch(ctx context.Context, id string, patch map[string]any) (Property, error)
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	Insert(ctx context.Context, rv Review) (Review, error)
	FindByProperty(ctx context.Context, propertyID string) ([]Review, error)
	FindByReviewer(ctx context.Context, subjectID string) ([]Review, error)
}

// TokenVerifier validates an opaque bearer credential. The issuing
// service itself is outside this system; this is the only seam it is
// consumed through.
type TokenVerifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}

// Limiter gates inbound requests per client key.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}
