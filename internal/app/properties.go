package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"homenest/internal/domain"
)

// PropertyService owns the decision logic around the properties
// collection: creation stamping, ownership gates on mutation, and the
// protected-field whitelist on partial updates. The store beneath it is
// plain CRUD.
type PropertyService struct {
	store domain.PropertyStore
}

func NewPropertyService(store domain.PropertyStore) *PropertyService {
	return &PropertyService{store: store}
}

// protected fields can never be overwritten through a patch, owner or not.
var protectedFields = []string{"_id", "id", "owner", "createdAt"}

func (s *PropertyService) Create(ctx context.Context, ident domain.Identity, p domain.Property) (domain.Property, error) {
	if strings.TrimSpace(p.Owner.Name) == "" {
		return domain.Property{}, fmt.Errorf("%w: owner name is required", domain.ErrValidation)
	}
	// SubjectID and Email always come from the verified identity, never
	// from the payload.
	p.Owner.SubjectID = ident.SubjectID
	p.Owner.Email = ident.Email
	p.CreatedAt = time.Now().UTC()
	if p.ID == "" {
		p.ID = legacyID(p.CreatedAt)
	}
	return s.store.Insert(ctx, p)
}

// legacyID mirrors the id scheme that predates store-generated ObjectIDs:
// the creation time in unix milliseconds, hex-encoded.
func legacyID(t time.Time) domain.DocID {
	return domain.DocID(strconv.FormatInt(t.UnixMilli(), 16))
}

func (s *PropertyService) List(ctx context.Context, q domain.ListQuery) ([]domain.Property, error) {
	return s.store.Find(ctx, q)
}

func (s *PropertyService) ListOwn(ctx context.Context, ident domain.Identity) ([]domain.Property, error) {
	return s.store.FindByOwner(ctx, ident.SubjectID)
}

func (s *PropertyService) Get(ctx context.Context, rawID string) (domain.Property, error) {
	return s.store.FindByID(ctx, rawID)
}

func (s *PropertyService) Update(ctx context.Context, rawID string, ident domain.Identity, patch map[string]any) (domain.Property, error) {
	cur, err := s.store.FindByID(ctx, rawID)
	if err != nil {
		return domain.Property{}, err
	}
	if cur.Owner.SubjectID != ident.SubjectID {
		return domain.Property{}, fmt.Errorf("%w: not the property owner", domain.ErrForbidden)
	}
	for _, f := range protectedFields {
		delete(patch, f)
	}
	if len(patch) == 0 {
		return cur, nil
	}
	return s.store.ApplyPatch(ctx, rawID, patch)
}

func (s *PropertyService) Delete(ctx context.Context, rawID string, ident domain.Identity) error {
	cur, err := s.store.FindByID(ctx, rawID)
	if err != nil {
		return err
	}
	if cur.Owner.SubjectID != ident.SubjectID {
		return fmt.Errorf("%w: not the property owner", domain.ErrForbidden)
	}
	return s.store.Delete(ctx, rawID)
}
