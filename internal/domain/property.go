package domain

import "time"

// Owner is stamped from the verified identity at creation time; only the
// display name is client-supplied. SubjectID is the durable ownership key.
type Owner struct {
	SubjectID string `bson:"subjectId" json:"subjectId"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
}

type Property struct {
	ID          DocID     `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price,omitempty" json:"price,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	State       string    `bson:"state,omitempty" json:"state,omitempty"`
	Bedrooms    int       `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int       `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	AreaSqFt    float64   `bson:"areaSqFt,omitempty" json:"areaSqFt,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Owner       Owner     `bson:"owner" json:"owner"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ListQuery drives the public listing. Search is a case-insensitive
// substring match on title. Sort is one of price-asc, price-desc,
// date-asc, date-desc; anything else falls back to store order.
type ListQuery struct {
	Search string
	Sort   string
}
