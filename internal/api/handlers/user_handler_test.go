package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solar-crm/internal/api/handlers"
	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/repository/mock_repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func userRouter(t *testing.T) (*gin.Engine, *mock_repository.MockUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock_repository.NewMockUserRepo(ctrl)
	h := handlers.NewUserHandler(application.NewUserService(&repository.Repos{User: mockUser}))

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, mockUser
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterIgnoresRequestedRole(t *testing.T) {
	r, mockUser := userRouter(t)

	mockUser.EXPECT().GetUserByEmail("mallory@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.UID = 7
		return nil
	})

	w := postJSON(r, "/api/auth/register",
		`{"email":"mallory@example.com","password":"secret1","first_name":"Mallory","last_name":"Low","role":"admin"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var created user.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, string(user.RoleCustomer), created.Role)
}

func TestLoginCookieMatchesTokenLifetime(t *testing.T) {
	r, mockUser := userRouter(t)

	orig := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, email, role string, ttl time.Duration) (string, error) {
		assert.Equal(t, application.SessionTTL, ttl)
		return "stub-token", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUser.EXPECT().GetUserByEmail("asha@example.com").Return(user.User{
		UID:          1,
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         string(user.RoleCustomer),
		Status:       string(user.StatusActive),
	}, nil)

	w := postJSON(r, "/api/auth/login", `{"email":"asha@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	assert.Contains(t, cookie, fmt.Sprintf("Max-Age=%d", int(application.SessionTTL.Seconds())))
}
