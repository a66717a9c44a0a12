package jwt

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/ats/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "ats-service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/whoami", NewAuthMiddleware(testSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})
	return app
}

func errorCode(t *testing.T, body *json.Decoder) string {
	t.Helper()
	var payload struct {
		Code string `json:"code"`
	}
	require.NoError(t, body.Decode(&payload))
	return payload.Code
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	app := newTestApp(t)
	user := auth.User{ID: uuid.New()}
	token, err := NewGenerator(testSecret, testIssuer, time.Hour).Generate(context.Background(), user)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "header %q", header)
	}
}

func TestMiddlewareMissingToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, CodeNoToken, errorCode(t, json.NewDecoder(resp.Body)))
}

func TestMiddlewareExpiredToken(t *testing.T) {
	app := newTestApp(t)
	token, err := NewGenerator(testSecret, testIssuer, -time.Minute).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, CodeTokenExpired, errorCode(t, json.NewDecoder(resp.Body)))
}

func TestMiddlewareRejectsForeignSignatureAndIssuer(t *testing.T) {
	app := newTestApp(t)

	forged, err := NewGenerator("other-secret", testIssuer, time.Hour).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, CodeInvalidToken, errorCode(t, json.NewDecoder(resp.Body)))

	wrongIssuer, err := NewGenerator(testSecret, "someone-else", time.Hour).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+wrongIssuer)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, CodeInvalidToken, errorCode(t, json.NewDecoder(resp.Body)))
}
