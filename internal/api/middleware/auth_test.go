package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/repository/mock_repository"
	"github.com/sunspire/solar-crm/pkg/types"
)

// asUser injects parsed claims the way JWTAuthMiddleware would.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &types.Claims{UserID: id})
		c.Next()
	}
}

func gateRouter(t *testing.T, id uint, role string) (*gin.Engine, *Auth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockUser.EXPECT().GetUserByID(id).
		Return(user.User{UID: id, Role: role, Status: string(user.StatusActive)}, nil).
		AnyTimes()

	r := gin.New()
	r.Use(asUser(id))
	return r, NewAuth(&repository.Repos{User: mockUser})
}

func TestOwnerGates(t *testing.T) {
	// Every record under test belongs to customer 5.
	ownedBy5 := func(uint) (uint, error) { return 5, nil }
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	get := func(r *gin.Engine, path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	t.Run("admin passes both gates", func(t *testing.T) {
		r, auth := gateRouter(t, 1, string(user.RoleAdmin))
		r.GET("/strict/:id", auth.OwnerOrAdmin(ownedBy5), ok)
		r.GET("/staff/:id", auth.OwnerOrStaff(ownedBy5), ok)

		assert.Equal(t, http.StatusOK, get(r, "/strict/10"))
		assert.Equal(t, http.StatusOK, get(r, "/staff/10"))
	})

	t.Run("technician has no standing on the strict gate", func(t *testing.T) {
		r, auth := gateRouter(t, 9, string(user.RoleTechnician))
		r.GET("/strict/:id", auth.OwnerOrAdmin(ownedBy5), ok)
		r.GET("/staff/:id", auth.OwnerOrStaff(ownedBy5), ok)

		assert.Equal(t, http.StatusForbidden, get(r, "/strict/10"))
		assert.Equal(t, http.StatusOK, get(r, "/staff/10"))
	})

	t.Run("owner passes, other customers do not", func(t *testing.T) {
		r, auth := gateRouter(t, 5, string(user.RoleCustomer))
		r.GET("/strict/:id", auth.OwnerOrAdmin(ownedBy5), ok)
		assert.Equal(t, http.StatusOK, get(r, "/strict/10"))

		r2, auth2 := gateRouter(t, 6, string(user.RoleCustomer))
		r2.GET("/strict/:id", auth2.OwnerOrAdmin(ownedBy5), ok)
		assert.Equal(t, http.StatusForbidden, get(r2, "/strict/10"))
	})
}
