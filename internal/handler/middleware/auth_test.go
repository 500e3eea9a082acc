//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"lending-core/internal/domain/user"
	"lending-core/internal/handler/middleware"
	"lending-core/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator map[string]user.Actor

func (f fakeValidator) ValidateToken(token string) (user.Actor, error) {
	actor, ok := f[token]
	if !ok {
		return user.Actor{}, errors.New("bad token")
	}
	return actor, nil
}

func newRouter(validator fakeValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(validator)
	r := gin.New()

	echo := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	}
	r.GET("/me", m.RequireAuth(), echo)
	r.GET("/staff", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleLibrarian), echo)
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleAdmin), echo)
	r.GET("/unguarded", m.RequireRoleAtLeast(user.RoleMember), echo)
	return r
}

func TestRequireAuth(t *testing.T) {
	member := user.NewActor(uuid.New(), user.RoleMember)
	r := newRouter(fakeValidator{"member-token": member})

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "member-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, member.ID.String(), body["id"])
		assert.Equal(t, "member", body["role"])
	})

	t.Run("access token cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: "access_token", Value: "member-token"}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil, cookies, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	tokens := fakeValidator{
		"member":    user.NewActor(uuid.New(), user.RoleMember),
		"librarian": user.NewActor(uuid.New(), user.RoleLibrarian),
		"admin":     user.NewActor(uuid.New(), user.RoleAdmin),
	}
	r := newRouter(tokens)

	cases := []struct {
		path  string
		token string
		want  int
	}{
		{"/staff", "member", http.StatusForbidden},
		{"/staff", "librarian", http.StatusOK},
		{"/staff", "admin", http.StatusOK},
		{"/admin", "librarian", http.StatusForbidden},
		{"/admin", "admin", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.path+" as "+tc.token, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, tc.path, nil, tc.token)
			require.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("without RequireAuth the context is incomplete", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/unguarded", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
