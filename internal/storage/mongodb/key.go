package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Key is the resolved form of a path-supplied identifier. The properties
// collection holds two id eras: store-generated ObjectIDs and older
// timestamp-hex strings assigned at create time. Every id-addressed read,
// update and delete goes through ResolveKey so the era decision lives in
// exactly one place.
type Key struct {
	oid    primitive.ObjectID
	str    string
	native bool
}

// ResolveKey classifies a raw identifier. A 24-char hex string is taken
// as a native ObjectID; anything else matches _id as a plain string.
// There is no failure mode: an unrecognized format is just the string
// case, so documents with arbitrary string ids stay reachable.
func ResolveKey(raw string) Key {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return Key{oid: oid, native: true}
	}
	return Key{str: raw}
}

func (k Key) Native() bool { return k.native }

func (k Key) String() string {
	if k.native {
		return k.oid.Hex()
	}
	return k.str
}

// Filter builds the _id lookup filter with the correct value type.
func (k Key) Filter() bson.M {
	if k.native {
		return bson.M{"_id": k.oid}
	}
	return bson.M{"_id": k.str}
}
