package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Score int64              `bson:"score"`
	Note  string             `bson:"note,omitempty"`
}

func TestToMapUsesBsonTags(t *testing.T) {
	id := primitive.NewObjectID()
	doc := sampleDoc{ID: id, Name: "asset", Score: 92}

	result, err := ToMap(doc)
	require.NoError(t, err)

	assert.Equal(t, id, result["_id"])
	assert.Equal(t, "asset", result["name"])
	assert.Equal(t, int64(92), result["score"])

	// Field omitempty đang zero bị loại khỏi map
	_, hasNote := result["note"]
	assert.False(t, hasNote)
}

func TestToMapOmitEmptyObjectID(t *testing.T) {
	result, err := ToMap(sampleDoc{Name: "no-id"})
	require.NoError(t, err)

	_, hasID := result["_id"]
	assert.False(t, hasID)
}
