package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("users", "users-collection")
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký lại cùng tên thì ghi đè, isNew = false
	isNew, err = r.Register("users", "users-collection-v2")
	require.NoError(t, err)
	assert.False(t, isNew)

	item, exists := r.Get("users")
	assert.True(t, exists)
	assert.Equal(t, "users-collection-v2", item)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()

	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := r.GetOrCreate("answer", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần gọi thứ hai dùng lại item đã có, creator không chạy lại
	item, err = r.GetOrCreate("answer", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls)

	_, err = r.GetOrCreate("fail", func() (int, error) {
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
	_, exists := r.Get("fail")
	assert.False(t, exists)
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("a", "item-a")
	require.NoError(t, err)

	cleaned := ""
	deleted, err := r.Clear("a", func(item string) error {
		cleaned = item
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "item-a", cleaned)

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistryClearAll(t *testing.T) {
	r := NewRegistry[string]()
	for _, name := range []string{"a", "b", "c"} {
		_, err := r.Register(name, name)
		require.NoError(t, err)
	}

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("shared", n)
			_, _ = r.Get("shared")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
