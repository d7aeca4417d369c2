package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIndexTag(t *testing.T) {
	specs := parseIndexTag("email", "unique,sparse")
	require.Len(t, specs, 1)
	assert.Equal(t, "unique", specs[0].Kind)
	assert.True(t, specs[0].Sparse)

	specs = parseIndexTag("status", "single:1")
	require.Len(t, specs, 1)
	assert.Equal(t, "single", specs[0].Kind)
	assert.Equal(t, 1, specs[0].Order)

	specs = parseIndexTag("date", "single:-1")
	require.Len(t, specs, 1)
	assert.Equal(t, -1, specs[0].Order)

	specs = parseIndexTag("name", "text")
	require.Len(t, specs, 1)
	assert.Equal(t, "text", specs[0].Kind)

	assert.Empty(t, parseIndexTag("x", ""))
	assert.Empty(t, parseIndexTag("x", "unknown"))
}

type indexedModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email,omitempty" index:"unique,sparse"`
	Status  string             `bson:"status" index:"single:1"`
	Ignored string             `bson:"ignored"`
}

func TestCollectIndexSpecs(t *testing.T) {
	specs := collectIndexSpecs(indexedModel{})
	require.Len(t, specs, 2)

	// Tên field lấy từ bson tag, bỏ phần option omitempty
	assert.Equal(t, "email", specs[0].Field)
	assert.Equal(t, "unique", specs[0].Kind)
	assert.True(t, specs[0].Sparse)

	assert.Equal(t, "status", specs[1].Field)
	assert.Equal(t, "single", specs[1].Kind)

	// Truyền pointer cũng phải hoạt động
	specs = collectIndexSpecs(&indexedModel{})
	assert.Len(t, specs, 2)
}
