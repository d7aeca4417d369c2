package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTimestampsSetsWhenAbsent(t *testing.T) {
	dataMap := map[string]interface{}{"name": "demo"}
	applyTimestamps(dataMap, 1735689600000)

	assert.Equal(t, int64(1735689600000), dataMap["createdAt"])
	assert.Equal(t, int64(1735689600000), dataMap["updatedAt"])
}

func TestApplyTimestampsKeepsBackdatedValues(t *testing.T) {
	// Giá trị backdate đã có sẵn phải được giữ nguyên
	dataMap := map[string]interface{}{
		"createdAt": int64(1700000000000),
		"updatedAt": int64(1700000000000),
	}
	applyTimestamps(dataMap, 1735689600000)

	assert.Equal(t, int64(1700000000000), dataMap["createdAt"])
	assert.Equal(t, int64(1700000000000), dataMap["updatedAt"])
}

func TestApplyTimestampsOverwritesZero(t *testing.T) {
	// BSON roundtrip có thể cho ra int32/int64/float64, zero ở dạng nào cũng bị thay
	for _, zero := range []interface{}{int32(0), int64(0), float64(0), nil} {
		dataMap := map[string]interface{}{"createdAt": zero}
		applyTimestamps(dataMap, 42)
		assert.Equal(t, int64(42), dataMap["createdAt"])
	}
}
