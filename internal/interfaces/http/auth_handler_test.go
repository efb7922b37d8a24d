package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow-hr/dayflow-api/internal/application/auth"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/infrastructure/memstore"
	apphttp "github.com/dayflow-hr/dayflow-api/internal/interfaces/http"
)

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memstore.New()
	users := memstore.NewUserRepository(store)
	require.NoError(t, users.Create(&entity.User{
		ID:    "u-known",
		Email: "known@dayflow.com",
		Role:  entity.RoleEmployee,
	}))
	uc := auth.NewAuthUseCase(users, store, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	app.Post("/api/auth/login", apphttp.NewAuthHandler(uc, 0).Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginHandler_Success(t *testing.T) {
	app := buildAuthApp(t)
	resp := postLogin(t, app, `{"email":"known@dayflow.com","password":"longenough"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["token"])
}

// Rejected credentials answer 401 with the INVALID_CREDENTIALS body code.
func TestLoginHandler_RejectedCredentialsCode(t *testing.T) {
	app := buildAuthApp(t)

	short := postLogin(t, app, `{"email":"known@dayflow.com","password":"12345"}`)
	defer short.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, short.StatusCode)
	body, _ := io.ReadAll(short.Body)
	assert.Contains(t, string(body), "INVALID_CREDENTIALS")

	unknown := postLogin(t, app, `{"email":"stranger@dayflow.com","password":"longenough"}`)
	defer unknown.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
	body, _ = io.ReadAll(unknown.Body)
	assert.Contains(t, string(body), "INVALID_CREDENTIALS")
}

func TestLoginHandler_MissingFields(t *testing.T) {
	app := buildAuthApp(t)
	resp := postLogin(t, app, `{"email":"known@dayflow.com"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}
