package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rumahpeduli/cms-api/internal/model"
	"github.com/rumahpeduli/cms-api/internal/repository"
	"github.com/rumahpeduli/cms-api/internal/service"
)

func setupGate(t *testing.T, min model.Role) (*gin.Engine, *service.JWTService, sqlmock.Sqlmock, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	jwtService := service.NewJWTService("test-secret", time.Hour)
	mw := NewJWTMiddleware(jwtService, repository.NewUserRepository(gdb))

	handlerRan := false
	r := gin.New()
	r.PUT("/activities/:id/programs", mw.RequireAuth(), RequireMinRole(min), func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusOK)
	})

	return r, jwtService, mock, &handlerRan
}

func userRow(id uint, role model.Role) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "role", "validated"}).
		AddRow(id, "member@example.org", role.String(), true)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r, _, mock, handlerRan := setupGate(t, model.RoleModerator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/activities/5/programs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
	// The request never reaches the user store, let alone the handler
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	r, _, _, handlerRan := setupGate(t, model.RoleModerator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/activities/5/programs", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
}

func TestRequireMinRole_InsufficientRole(t *testing.T) {
	r, jwtService, mock, handlerRan := setupGate(t, model.RoleModerator)

	token, err := jwtService.GenerateToken(7)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRow(7, model.RoleUser))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/activities/5/programs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *handlerRan)
}

func TestRequireMinRole_RoleReadFromStoreNotToken(t *testing.T) {
	r, jwtService, mock, handlerRan := setupGate(t, model.RoleModerator)

	// Token minted while the user was a plain member still opens the
	// gate once the stored role says moderator
	token, err := jwtService.GenerateToken(7)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRow(7, model.RoleModerator))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/activities/5/programs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
}

func TestRequireAuth_DeletedAccount(t *testing.T) {
	r, jwtService, mock, handlerRan := setupGate(t, model.RoleModerator)

	token, err := jwtService.GenerateToken(7)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/activities/5/programs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
}

func TestOptionalAuth_AnonymousPassesWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mw := NewJWTMiddleware(service.NewJWTService("test-secret", time.Hour), repository.NewUserRepository(gdb))

	r := gin.New()
	r.GET("/activities", mw.OptionalAuth(), func(c *gin.Context) {
		_, ok := CallerRole(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/activities", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated": false}`, w.Body.String())
}
