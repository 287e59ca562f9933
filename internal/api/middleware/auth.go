package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/pkg/response"
	"github.com/sunspire/solar-crm/pkg/types"
)

// Auth handles authorization middleware backed by the user store. Parsed
// claims only prove possession of a token; the gate additionally requires
// the id to resolve to an existing active user.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// GetClaims returns the parsed claims stored by JWTAuthMiddleware.
var GetClaims = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

// ResolveUser loads the user record behind the request's claims.
func (a *Auth) ResolveUser(c *gin.Context) (user.User, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return user.User{}, err
	}
	id := ResolveUserID(claims)
	if id == 0 {
		return user.User{}, errors.New("token carries no identity")
	}
	u, err := a.repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, errors.New("user no longer exists")
	}
	return u, nil
}

// OwnerLookup resolves the owning customer id for the entity addressed by
// the :id route parameter.
type OwnerLookup func(id uint) (uint, error)

// Admin allows admins only.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := a.ResolveUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if u.Role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// OwnerOrStaff allows admins and technicians through, and customers whose
// id matches the looked-up owner of the addressed entity. Used on complaint,
// ticket and installation routes; the installation service further narrows
// technicians to the job they are assigned to.
func (a *Auth) OwnerOrStaff(lookup OwnerLookup) gin.HandlerFunc {
	return a.ownerGate(lookup, true)
}

// OwnerOrAdmin is the stricter gate for quotations: admins or the owning
// customer only, technicians have no standing.
func (a *Auth) OwnerOrAdmin(lookup OwnerLookup) gin.HandlerFunc {
	return a.ownerGate(lookup, false)
}

func (a *Auth) ownerGate(lookup OwnerLookup, allowTechnician bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := a.ResolveUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if u.Role == string(user.RoleAdmin) {
			c.Next()
			return
		}
		if allowTechnician && u.Role == string(user.RoleTechnician) {
			c.Next()
			return
		}

		idParam := c.Param("id")
		targetID, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
			return
		}
		ownerID, err := lookup(uint(targetID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "not found"})
			return
		}
		if ownerID != u.UID {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

// UserOrAdmin allows a user to address their own record, admins any.
func (a *Auth) UserOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := a.ResolveUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if u.Role == string(user.RoleAdmin) {
			c.Next()
			return
		}
		idParam := c.Param("id")
		targetID, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
			return
		}
		if uint(targetID) != u.UID {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows local frontends during development plus the
// configured production origin.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
