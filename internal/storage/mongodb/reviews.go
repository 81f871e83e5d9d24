package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"homenest/internal/domain"
)

const reviewsCollection = "reviews"

type Reviews struct{ col *mongo.Collection }

func NewReviews(db *mongo.Database) *Reviews {
	return &Reviews{col: db.Collection(reviewsCollection)}
}

func (s *Reviews) Insert(ctx context.Context, rv domain.Review) (domain.Review, error) {
	res, err := s.col.InsertOne(ctx, rv)
	observe(reviewsCollection, "insert", err)
	if err != nil {
		return domain.Review{}, storeErr(err)
	}
	// Review ids are always store-assigned.
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rv.ID = domain.DocID(oid.Hex())
	}
	return rv, nil
}

func (s *Reviews) FindByProperty(ctx context.Context, propertyID string) ([]domain.Review, error) {
	return s.find(ctx, bson.M{"propertyId": propertyID})
}

func (s *Reviews) FindByReviewer(ctx context.Context, subjectID string) ([]domain.Review, error) {
	return s.find(ctx, bson.M{"reviewerSubjectId": subjectID})
}

func (s *Reviews) find(ctx context.Context, filter bson.M) ([]domain.Review, error) {
	cur, err := s.col.Find(ctx, filter)
	observe(reviewsCollection, "find", err)
	if err != nil {
		return nil, storeErr(err)
	}
	var out []domain.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
