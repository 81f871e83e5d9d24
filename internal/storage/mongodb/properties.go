package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homenest/internal/adapters/observability"
	"homenest/internal/domain"
)

const propertiesCollection = "properties"

type Properties struct{ col *mongo.Collection }

func NewProperties(db *mongo.Database) *Properties {
	return &Properties{col: db.Collection(propertiesCollection)}
}

// storeErr maps driver errors onto the domain taxonomy. No retries: a
// failed operation surfaces immediately.
func storeErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func observe(collection, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	observability.ObserveStore(collection, op, outcome)
}

func (s *Properties) Insert(ctx context.Context, p domain.Property) (domain.Property, error) {
	res, err := s.col.InsertOne(ctx, p)
	observe(propertiesCollection, "insert", err)
	if err != nil {
		return domain.Property{}, storeErr(err)
	}
	if p.ID == "" {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			p.ID = domain.DocID(oid.Hex())
		}
	}
	return p, nil
}

func (s *Properties) FindByID(ctx context.Context, id string) (domain.Property, error) {
	var p domain.Property
	err := s.col.FindOne(ctx, ResolveKey(id).Filter()).Decode(&p)
	observe(propertiesCollection, "findOne", err)
	if err != nil {
		return domain.Property{}, storeErr(err)
	}
	return p, nil
}

func (s *Properties) Find(ctx context.Context, q domain.ListQuery) ([]domain.Property, error) {
	filter := bson.M{}
	if q.Search != "" {
		// Substring match, not a caller-supplied regex.
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
	}
	opts := options.Find()
	if sort := sortSpec(q.Sort); sort != nil {
		opts.SetSort(sort)
	}
	cur, err := s.col.Find(ctx, filter, opts)
	observe(propertiesCollection, "find", err)
	if err != nil {
		return nil, storeErr(err)
	}
	var out []domain.Property
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *Properties) FindByOwner(ctx context.Context, subjectID string) ([]domain.Property, error) {
	cur, err := s.col.Find(ctx, bson.M{"owner.subjectId": subjectID})
	observe(propertiesCollection, "find", err)
	if err != nil {
		return nil, storeErr(err)
	}
	var out []domain.Property
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *Properties) ApplyPatch(ctx context.Context, id string, patch map[string]any) (domain.Property, error) {
	res, err := s.col.UpdateOne(ctx, ResolveKey(id).Filter(), bson.M{"$set": bson.M(patch)})
	observe(propertiesCollection, "updateOne", err)
	if err != nil {
		return domain.Property{}, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.Property{}, domain.ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *Properties) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, ResolveKey(id).Filter())
	observe(propertiesCollection, "deleteOne", err)
	if err != nil {
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func sortSpec(s string) bson.D {
	switch s {
	case "price-asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price-desc":
		return bson.D{{Key: "price", Value: -1}}
	case "date-asc":
		return bson.D{{Key: "createdAt", Value: 1}}
	case "date-desc":
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return nil
}
