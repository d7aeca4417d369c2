package basehdl

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precise_platform/internal/common"
)

func TestSafeHandlerRecoversFromPanic(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			panic("kaboom")
		})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, common.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, common.ErrCodeInternalServer.Code, body["code"])
}

func TestHandleResponseErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c fiber.Ctx) error {
		HandleResponse(c, nil, common.ErrNotFound)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, common.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, common.ErrCodeDatabaseQuery.Code, body["code"])
}

func TestHandleResponseSuccessEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		HandleResponse(c, fiber.Map{"value": 1}, nil)
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, common.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, common.MsgSuccess, body["message"])
	assert.NotNil(t, body["data"])
}

func TestPaginationQueryNormalize(t *testing.T) {
	page, limit := PaginationQuery{}.Normalize()
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	page, limit = PaginationQuery{Page: 3, Limit: 25}.Normalize()
	assert.Equal(t, int64(3), page)
	assert.Equal(t, int64(25), limit)

	page, limit = PaginationQuery{Page: -1, Limit: 0}.Normalize()
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
}
