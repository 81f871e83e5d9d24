package domain

import "time"

// Review is append-only: there is no update or delete path. PropertyID is
// denormalized; nothing enforces that the property still exists.
type Review struct {
	ID                DocID     `bson:"_id,omitempty" json:"_id,omitempty"`
	PropertyID        string    `bson:"propertyId" json:"propertyId"`
	ReviewerSubjectID string    `bson:"reviewerSubjectId" json:"reviewerSubjectId"`
	ReviewerEmail     string    `bson:"reviewerEmail" json:"reviewerEmail"`
	Rating            float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment           string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt         time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
