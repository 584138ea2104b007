package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"tutorstate/backend/prefers"
	"tutorstate/backend/storage"
	"tutorstate/backend/stores"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, storage.KV) {
	t.Helper()

	kv := storage.NewMemory()
	progress := stores.NewProgressStore(kv, zerolog.Nop())
	theme := stores.NewThemeStore(kv, prefers.Unavailable(), zerolog.Nop())

	app := fiber.New()
	SetupRoutes(app, progress, theme, zerolog.Nop())
	return app, kv
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestGetModules(t *testing.T) {
	app, _ := setupApp(t)

	status, result := doJSON(t, app, "GET", "/api/modules", nil)
	assert.Equal(t, fiber.StatusOK, status)

	modules := result["data"].([]interface{})
	require.Len(t, modules, 10)
	assert.Equal(t, "basics", modules[0].(map[string]interface{})["id"])
}

func TestProgressEndpoints(t *testing.T) {
	app, kv := setupApp(t)

	status, result := doJSON(t, app, "POST", "/api/progress/basics/visit", nil)
	assert.Equal(t, fiber.StatusOK, status)
	basics := result["data"].(map[string]interface{})["basics"].(map[string]interface{})
	assert.Equal(t, false, basics["completed"])
	assert.NotEmpty(t, basics["lastVisited"])

	status, result = doJSON(t, app, "POST", "/api/progress/forms/complete", nil)
	assert.Equal(t, fiber.StatusOK, status)
	forms := result["data"].(map[string]interface{})["forms"].(map[string]interface{})
	assert.Equal(t, true, forms["completed"])

	status, result = doJSON(t, app, "POST", "/api/progress/forms/complete", map[string]interface{}{"completed": false})
	assert.Equal(t, fiber.StatusOK, status)
	forms = result["data"].(map[string]interface{})["forms"].(map[string]interface{})
	assert.Equal(t, false, forms["completed"])

	status, result = doJSON(t, app, "GET", "/api/progress/overview", nil)
	assert.Equal(t, fiber.StatusOK, status)
	overview := result["data"].(map[string]interface{})
	assert.Equal(t, float64(10), overview["total"])
	assert.Equal(t, float64(2), overview["visited"])

	raw, err := kv.Read(stores.ProgressKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"forms"`)

	status, result = doJSON(t, app, "POST", "/api/progress/reset", nil)
	assert.Equal(t, fiber.StatusOK, status)
	basics = result["data"].(map[string]interface{})["basics"].(map[string]interface{})
	assert.Equal(t, "", basics["lastVisited"])
}

func TestProgressUnknownModule(t *testing.T) {
	app, _ := setupApp(t)

	status, result := doJSON(t, app, "POST", "/api/progress/cobol/visit", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, result["success"])

	status, _ = doJSON(t, app, "POST", "/api/progress/cobol/complete", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestThemeEndpoints(t *testing.T) {
	app, kv := setupApp(t)

	status, result := doJSON(t, app, "GET", "/api/theme", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "light", result["data"].(map[string]interface{})["theme"])

	status, result = doJSON(t, app, "POST", "/api/theme/toggle", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "dark", result["data"].(map[string]interface{})["theme"])

	status, result = doJSON(t, app, "PUT", "/api/theme", map[string]string{"theme": "light"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "light", result["data"].(map[string]interface{})["theme"])

	raw, err := kv.Read(stores.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", string(raw))
}

func TestSetThemeRejectsInvalidValue(t *testing.T) {
	app, kv := setupApp(t)

	status, result := doJSON(t, app, "PUT", "/api/theme", map[string]string{"theme": "sepia"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, result["success"])

	raw, err := kv.Read(stores.ThemeKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
