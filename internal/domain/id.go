package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DocID is a document identifier in its string form. The collections hold
// two id eras side by side: store-generated ObjectIDs and legacy
// timestamp-hex strings. On decode both normalize to text (an ObjectID
// becomes its 24-char hex form) so the rest of the system only ever sees
// strings.
type DocID string

func (d DocID) String() string { return string(d) }

func (d DocID) IsZero() bool { return d == "" }

// MarshalBSONValue always encodes as a BSON string. Inserts with an
// ObjectID _id go through the driver's own id generation instead, so a
// DocID is only ever written for string-era documents.
func (d DocID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(d))
}

func (d *DocID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := raw.ObjectIDOK()
		if !ok {
			return fmt.Errorf("docid: malformed object id")
		}
		*d = DocID(oid.Hex())
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("docid: malformed string id")
		}
		*d = DocID(s)
	case bsontype.Null:
		*d = ""
	default:
		return fmt.Errorf("docid: unsupported _id type %s", t)
	}
	return nil
}
