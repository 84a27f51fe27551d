package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func strptr(s string) *string { return &s }

func TestMergeString(t *testing.T) {
	dst := "Engineering"

	MergeString(&dst, nil)
	assert.Equal(t, "Engineering", dst, "absent field leaves value alone")

	MergeString(&dst, strptr("Platform"))
	assert.Equal(t, "Platform", dst)

	MergeString(&dst, strptr(""))
	assert.Equal(t, "", dst, "present-but-empty overwrites plain strings")
}

func TestMergeFloat(t *testing.T) {
	dst := 100000.0
	MergeFloat(&dst, nil)
	assert.Equal(t, 100000.0, dst)

	v := 250000.0
	MergeFloat(&dst, &v)
	assert.Equal(t, 250000.0, dst)
}

func TestMergeRef_NilLeavesUnchanged(t *testing.T) {
	orig := bson.NewObjectID()
	dst := orig
	require.NoError(t, MergeRef(&dst, nil, "parent department"))
	assert.Equal(t, orig, dst)
}

func TestMergeRef_EmptyClears(t *testing.T) {
	dst := bson.NewObjectID()
	require.NoError(t, MergeRef(&dst, strptr(""), "parent department"))
	assert.Equal(t, bson.NilObjectID, dst)
}

func TestMergeRef_SetsValidHex(t *testing.T) {
	want := bson.NewObjectID()
	var dst bson.ObjectID
	require.NoError(t, MergeRef(&dst, strptr(want.Hex()), "parent department"))
	assert.Equal(t, want, dst)
}

func TestMergeRef_RejectsBadHex(t *testing.T) {
	var dst bson.ObjectID
	err := MergeRef(&dst, strptr("not-an-oid"), "parent department")

	var ge *Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 400, ge.Status)
	assert.Equal(t, "Invalid parent department", ge.Message)
}
