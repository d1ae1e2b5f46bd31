// Package objectid generates and validates the 24-character hexadecimal
// identifiers used for accounts and items.
package objectid

import "go.mongodb.org/mongo-driver/v2/bson"

// New returns a fresh identifier.
func New() string {
	return bson.NewObjectID().Hex()
}

// IsValid reports whether s is a well-formed identifier.
func IsValid(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}
