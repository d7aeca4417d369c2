// Package utility chứa các hàm tiện ích dùng chung (chuyển đổi dữ liệu, BSON helpers).
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển một struct (hoặc map) thành map[string]interface{} thông qua BSON marshal/unmarshal.
// Các field được đặt tên theo bson tag của struct, field có omitempty và đang zero sẽ bị loại bỏ.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return result, nil
}
