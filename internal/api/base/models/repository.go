// Package basemodels chứa các model dùng chung cho tầng service/handler.
package basemodels

// PaginateResult đại diện cho kết quả phân trang của một truy vấn Find
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại (bắt đầu từ 1)
	Limit     int64 `json:"limit" bson:"limit"`         // Số item mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Tổng số item thỏa filter
	Items     []T   `json:"items" bson:"items"`         // Danh sách item của trang hiện tại
}
