package guard

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Partial-update merge helpers. Update payloads use pointer fields so that
// "absent" and "present but empty" are distinguishable: absent leaves the
// stored value alone, present overwrites it, and an empty string on an
// optional reference clears it.

func MergeString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func MergeFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func MergeTime(dst *time.Time, v *time.Time) {
	if v != nil {
		*dst = *v
	}
}

// MergeRef applies an ObjectID reference supplied as a hex string.
// nil leaves the reference unchanged, "" clears it, and anything else must
// be a valid ObjectID or the merge is rejected as a 400.
func MergeRef(dst *bson.ObjectID, v *string, label string) error {
	if v == nil {
		return nil
	}
	if *v == "" {
		*dst = bson.NilObjectID
		return nil
	}
	oid, err := bson.ObjectIDFromHex(*v)
	if err != nil {
		return BadRequest("Invalid " + label)
	}
	*dst = oid
	return nil
}
