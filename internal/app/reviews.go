package app

import (
	"context"
	"fmt"
	"time"

	"homenest/internal/domain"
)

type ReviewService struct {
	store domain.ReviewStore
}

func NewReviewService(store domain.ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

func (s *ReviewService) Create(ctx context.Context, ident domain.Identity, rv domain.Review) (domain.Review, error) {
	if rv.PropertyID == "" {
		return domain.Review{}, fmt.Errorf("%w: propertyId is required", domain.ErrValidation)
	}
	rv.ID = "" // ids are store-assigned
	rv.ReviewerSubjectID = ident.SubjectID
	rv.ReviewerEmail = ident.Email
	rv.CreatedAt = time.Now().UTC()
	return s.store.Insert(ctx, rv)
}

func (s *ReviewService) ListByProperty(ctx context.Context, propertyID string) ([]domain.Review, error) {
	return s.store.FindByProperty(ctx, propertyID)
}

func (s *ReviewService) ListOwn(ctx context.Context, ident domain.Identity) ([]domain.Review, error) {
	return s.store.FindByReviewer(ctx, ident.SubjectID)
}
