package utils

import "go.mongodb.org/mongo-driver/v2/bson"

// Oid parses a hex id from a route parameter or payload.
func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}

// HasRef reports whether an optional ObjectID reference is set.
func HasRef(id bson.ObjectID) bool {
	return id != bson.NilObjectID
}
