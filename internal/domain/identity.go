package domain

// Identity is the result of verifying a bearer credential. Email can be
// empty in some token contexts, which is why SubjectID is the only field
// authorization decisions key on.
type Identity struct {
	SubjectID string
	Email     string
}
