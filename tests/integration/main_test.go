package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/api/routes"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/config"
	"github.com/sunspire/solar-crm/internal/config/db"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/testutils"
)

var router *gin.Engine

const adminEmail = "root@example.com"

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	// Public registration only creates customers, so the admin every
	// test logs in as is seeded through the service layer.
	role := "admin"
	if _, err := application.NewUserService(repository.NewRepositories(gormDB)).RegisterUser(user.CreateUserInput{
		Email:     adminEmail,
		Password:  "secret1",
		FirstName: "Root",
		LastName:  "Admin",
		Role:      &role,
	}); err != nil {
		cleanup()
		panic(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// doRequest performs a JSON request against the in-process router.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equalf(t, expectStatus, w.Code, "%s %s: %s", method, path, w.Body.String())
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// loginAsAdmin returns a bearer token for the admin seeded in TestMain.
func loginAsAdmin(t *testing.T) string {
	t.Helper()

	w := doRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    adminEmail,
		"password": "secret1",
	}, http.StatusOK)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// registerAndLogin creates a customer account through the public endpoint
// and returns its user id and a bearer token.
func registerAndLogin(t *testing.T, email string) (uint, string) {
	t.Helper()

	w := doRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "secret1",
		"first_name": "Test",
		"last_name":  "User",
	}, http.StatusCreated)

	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)

	w = doRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret1",
	}, http.StatusOK)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.Token)

	return created.ID, login.Token
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, emailSeq())
}

var seq int

func emailSeq() int {
	seq++
	return seq
}
