package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterly/models"
	"rosterly/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountRepo) Create(acct *models.Account) error {
	f.accounts[acct.ID] = acct
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	if acct, ok := f.accounts[id]; ok {
		return acct, nil
	}
	return nil, assert.AnError
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, acct := range f.accounts {
		if acct.Email == email {
			return acct, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) SetAdmin(email string, isAdmin bool) error { return nil }

func (f *fakeAccountRepo) SetSuspended(email string, suspended bool) error { return nil }

func (f *fakeAccountRepo) UpdateLoginTime(id string, at time.Time) error { return nil }

func adminRouter(repo *fakeAccountRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/api", AuthMiddleware(repo))
	authed.GET("/me", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin := authed.Group("/admin", AdminOnly())
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAdminReachesAdminRoutes(t *testing.T) {
	repo := &fakeAccountRepo{accounts: map[string]*models.Account{
		"a1": {ID: "a1", Email: "ada@example.com", IsAdmin: true},
	}}
	r := adminRouter(repo)

	token, err := utils.GenerateToken("a1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/api/me", token).Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/admin/ping", token).Code)
}

func TestAuthMiddlewareNonAdminForbiddenOnAdminRoutes(t *testing.T) {
	repo := &fakeAccountRepo{accounts: map[string]*models.Account{
		"w1": {ID: "w1", Email: "bo@example.com"},
	}}
	r := adminRouter(repo)

	token, err := utils.GenerateToken("w1", "bo@example.com", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/api/me", token).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/admin/ping", token).Code)
}

func TestAuthMiddlewareSuspendedAccountBlocked(t *testing.T) {
	repo := &fakeAccountRepo{accounts: map[string]*models.Account{
		"s1": {ID: "s1", Email: "sue@example.com", Suspended: true},
	}}
	r := adminRouter(repo)

	token, err := utils.GenerateToken("s1", "sue@example.com", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/api/me", token).Code)
}

func TestAuthMiddlewareRejectsMissingAndInvalidTokens(t *testing.T) {
	r := adminRouter(&fakeAccountRepo{accounts: map[string]*models.Account{}})

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/me", "not-a-token").Code)
}

func TestAdminOnlyRequiresTypedFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(set func(c *gin.Context)) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin", nil)
		set(c)
		AdminOnly()(c)
		return w
	}

	w := run(func(c *gin.Context) { c.Set(ContextIsAdmin, true) })
	assert.Equal(t, http.StatusOK, w.Code)

	w = run(func(c *gin.Context) { c.Set(ContextIsAdmin, false) })
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = run(func(c *gin.Context) {})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
