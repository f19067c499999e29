package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"minesafety/controller/auth"
	"minesafety/model"
	"minesafety/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = []byte("user-test-secret")

type fixture struct {
	router *gin.Engine
	users  *services.GormUserDirectory
	byName map[string]*model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.User{}))

	f := &fixture{users: services.NewGormUserDirectory(db), byName: make(map[string]*model.User)}
	for _, u := range []model.User{
		{Name: "Asha", Email: "asha@mine.test", HashedPassword: "x", Role: model.RoleWorker},
		{Name: "Meena", Email: "meena@mine.test", HashedPassword: "x", Role: model.RoleSupervisor},
		{Name: "Admin", Email: "admin@mine.test", HashedPassword: "x", Role: model.RoleAdmin},
		{Name: "Inspector", Email: "dgms@mine.test", HashedPassword: "x", Role: model.RoleDGMSOfficer},
	} {
		u := u
		require.NoError(t, f.users.CreateUser(context.Background(), &u))
		f.byName[u.Name] = &u
	}

	gin.SetMode(gin.TestMode)
	f.router = gin.New()
	UserController(f.router, f.users, testSecret)
	return f
}

func (f *fixture) request(t *testing.T, method, path, as string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	caller := f.byName[as]
	token, err := auth.CreateAccessToken(testSecret, caller.UserID, caller.Role)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGetAllUsers(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/users", "Admin", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Asha", list[0]["name"])
	assert.Equal(t, "Meena", list[1]["name"])
	assert.NotContains(t, list[0], "HashedPassword")
	assert.NotContains(t, w.Body.String(), "hashed_password")

	w = f.request(t, http.MethodGet, "/api/users", "Meena", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateUserShift(t *testing.T) {
	f := newFixture(t)
	asha := f.byName["Asha"]

	w := f.request(t, http.MethodPut, "/api/users/"+asha.UserID+"/shift", "Admin",
		gin.H{"shiftLocation": "  Pit 3, Level 2 ", "shiftDate": "2026-03-12"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message string     `json:"message"`
		User    model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Shift assignment updated successfully", resp.Message)
	assert.Equal(t, "Pit 3, Level 2", resp.User.ShiftLocation)

	stored, err := f.users.FindUserByID(context.Background(), asha.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Pit 3, Level 2", stored.ShiftLocation)
	require.NotNil(t, stored.ShiftDate)
	assert.True(t, stored.ShiftDate.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)))

	w = f.request(t, http.MethodPut, "/api/users/"+asha.UserID+"/shift", "Admin",
		gin.H{"shiftDate": "2026-03-13T06:00:00Z"})
	require.Equal(t, http.StatusOK, w.Code)
	stored, err = f.users.FindUserByID(context.Background(), asha.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Pit 3, Level 2", stored.ShiftLocation, "location is kept when omitted")
	assert.True(t, stored.ShiftDate.Equal(time.Date(2026, 3, 13, 6, 0, 0, 0, time.UTC)))
}

func TestUpdateUserShiftErrors(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodPut, "/api/users/ghost/shift", "Admin", gin.H{"shiftLocation": "Pit 1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.request(t, http.MethodPut, "/api/users/"+f.byName["Inspector"].UserID+"/shift", "Admin", gin.H{"shiftLocation": "Pit 1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Shift can only be assigned to workers and supervisors")

	w = f.request(t, http.MethodPut, "/api/users/"+f.byName["Meena"].UserID+"/shift", "Admin", gin.H{"shiftDate": "next tuesday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid shift date")

	w = f.request(t, http.MethodPut, "/api/users/"+f.byName["Asha"].UserID+"/shift", "Asha", gin.H{"shiftLocation": "Pit 1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
