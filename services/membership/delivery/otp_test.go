package delivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"gameden/middleware"
	"gameden/services/membership/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOTPApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	t.Setenv("BYTE_KEY", "test-signing-key")

	app := fiber.New()
	NewOTPHandler(app, usecase.NewOTPUseCase(usecase.DefaultOTPTTL))

	token, err := middleware.GenerateJWT(1, "admin@gameden.in", "admin")
	require.NoError(t, err)
	return app, token
}

func postJSON(t *testing.T, app *fiber.App, token, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	return resp.StatusCode, decoded
}

func TestOTPRoutesRequireAuth(t *testing.T) {
	app, _ := setupOTPApp(t)

	status, _ := postJSON(t, app, "", "/otp/issue", fiber.Map{"phone": "9876543210"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestIssueAndVerifyOTP(t *testing.T) {
	app, token := setupOTPApp(t)

	status, body := postJSON(t, app, token, "/otp/issue", fiber.Map{"phone": "9876543210"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	code := data["code"].(string)
	assert.Len(t, code, 6)

	link := body["whatsapp"].(map[string]any)["link"].(string)
	assert.Contains(t, link, "https://wa.me/919876543210?text=")

	status, body = postJSON(t, app, token, "/otp/verify", fiber.Map{"phone": "9876543210", "code": code})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
}

func TestIssueOTPBadPhone(t *testing.T) {
	app, token := setupOTPApp(t)

	status, body := postJSON(t, app, token, "/otp/issue", fiber.Map{"phone": "1234567890"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestVerifyOTPOutcomes(t *testing.T) {
	app, token := setupOTPApp(t)

	status, _ := postJSON(t, app, token, "/otp/verify", fiber.Map{"phone": "9876543210", "code": "000000"})
	assert.Equal(t, fiber.StatusNotFound, status)

	issueStatus, body := postJSON(t, app, token, "/otp/issue", fiber.Map{"phone": "9876543210"})
	require.Equal(t, fiber.StatusOK, issueStatus)
	code := body["data"].(map[string]any)["code"].(string)

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	status, body = postJSON(t, app, token, "/otp/verify", fiber.Map{"phone": "9876543210", "code": wrong})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid verification code. Please check and try again.", body["message"])
}
