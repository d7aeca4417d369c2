package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"precise_platform/internal/global"
	"precise_platform/internal/logger"
)

// EnsureDatabaseAndCollections đảm bảo rằng cơ sở dữ liệu và các collection cần thiết tồn tại.
// Các collection chưa có sẽ được tạo mới; tên collection lấy từ global.ColNames.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.ServerConfig.MongoDB_DBName

	// Context tổng 30 giây để duyệt tất cả collections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	// Lấy danh sách collection từ struct ColNames bằng reflection
	collections := []string{}
	v := reflect.ValueOf(global.ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	existing := map[string]bool{}
	for _, name := range collList {
		existing[name] = true
	}

	for _, collectionName := range collections {
		if existing[collectionName] {
			continue
		}
		logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
		if err := db.CreateCollection(ctx, collectionName); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// indexSpec mô tả một index được khai báo qua struct tag
type indexSpec struct {
	Field  string // Tên field trong bson
	Kind   string // unique | single | text
	Order  int    // 1 hoặc -1 (đối với single)
	Sparse bool   // Sparse index (đối với unique)
}

// parseIndexTag phân tích tag index của một field.
// Các dạng hỗ trợ: "unique", "unique,sparse", "single:1", "single:-1", "text".
func parseIndexTag(field string, tag string) []indexSpec {
	specs := []indexSpec{}
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec := indexSpec{Field: field, Order: 1}
		for _, sub := range strings.Split(part, ",") {
			kv := strings.SplitN(sub, ":", 2)
			switch kv[0] {
			case "unique":
				spec.Kind = "unique"
			case "sparse":
				spec.Sparse = true
			case "text":
				spec.Kind = "text"
			case "single":
				spec.Kind = "single"
				if len(kv) == 2 && kv[1] == "-1" {
					spec.Order = -1
				}
			}
		}
		if spec.Kind != "" {
			specs = append(specs, spec)
		}
	}
	return specs
}

// collectIndexSpecs duyệt struct model và gom tất cả index specs từ tags
func collectIndexSpecs(model interface{}) []indexSpec {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	specs := []indexSpec{}
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag := field.Tag.Get("index")
		if tag == "" {
			continue
		}
		// Tên field trong Mongo lấy từ bson tag (bỏ options như omitempty)
		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" {
			continue
		}
		specs = append(specs, parseIndexTag(bsonName, tag)...)
	}
	return specs
}

// CreateIndexes tạo các index cho collection dựa trên struct tags của model.
// Index đã tồn tại (trùng tên) sẽ được bỏ qua.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	specs := collectIndexSpecs(model)
	if len(specs) == 0 {
		return nil
	}

	// Lấy danh sách index hiện có
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes for %s: %w", collection.Name(), err)
	}
	var existingIndexes []bson.M
	if err := cursor.All(ctx, &existingIndexes); err != nil {
		return fmt.Errorf("failed to read indexes for %s: %w", collection.Name(), err)
	}
	existingNames := map[string]bool{}
	for _, idx := range existingIndexes {
		if name, ok := idx["name"].(string); ok {
			existingNames[name] = true
		}
	}

	for _, spec := range specs {
		var keys bson.D
		indexName := fmt.Sprintf("idx_%s_%s", spec.Field, spec.Kind)
		opts := options.Index().SetName(indexName)

		switch spec.Kind {
		case "unique":
			keys = bson.D{{Key: spec.Field, Value: 1}}
			opts.SetUnique(true)
			if spec.Sparse {
				opts.SetSparse(true)
			}
		case "text":
			keys = bson.D{{Key: spec.Field, Value: "text"}}
		default:
			keys = bson.D{{Key: spec.Field, Value: spec.Order}}
		}

		if existingNames[indexName] {
			continue
		}

		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts}); err != nil {
			return fmt.Errorf("không thể tạo index %s cho collection %s: %w", indexName, collection.Name(), err)
		}
		logger.GetAppLogger().Infof("Đã tạo index %s cho collection %s", indexName, collection.Name())
	}

	return nil
}
