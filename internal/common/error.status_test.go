package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("failed to get collection: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
}

func TestNewErrorCarriesDetails(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "sai dữ liệu", StatusBadRequest, map[string]string{"field": "email"})

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_001", appErr.Code.Code)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "sai dữ liệu", appErr.Error())
	assert.NotNil(t, appErr.Details)
}

func TestConvertMongoError(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))

	// ErrNotFound phải được giữ nguyên
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))

	// Duplicate key
	dup := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	assert.Equal(t, ErrMongoDuplicate, ConvertMongoError(dup))

	// Command error theo dải mã
	assert.Equal(t, ErrMongoConnection, ConvertMongoError(mongo.CommandError{Code: 150}))
	assert.Equal(t, ErrMongoQuery, ConvertMongoError(mongo.CommandError{Code: 350}))
	assert.Equal(t, ErrMongoWrite, ConvertMongoError(mongo.CommandError{Code: 450}))

	// Lỗi không nhận diện được thành lỗi database chung
	converted := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	require.True(t, errors.As(converted, &appErr))
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}
