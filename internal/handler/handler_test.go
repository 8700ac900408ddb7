package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fcurti/falegnameria-backend/dao"
	"github.com/fcurti/falegnameria-backend/internal/middleware"
	"github.com/fcurti/falegnameria-backend/internal/util"
)

// newTestDB wires a fresh migrated in-memory database as the dao connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dao.Migrate(db))
	dao.SetDB(db)
	return db
}

// newTestRouter builds an engine with the same group layout as the real
// server: a public group and an /admin group behind the session guard.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("curti_flash", store))

	public := r.Group("/")
	admin := r.Group("/admin")
	admin.Use(middleware.AuthAdmin())

	for _, register := range Registers {
		mgr := register(RegisterConfig{})
		mgr.RegisterPublic(public)
		mgr.RegisterAdmin(admin)
	}
	return r
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := util.GetTokenMgr().CreateSession()
	require.NoError(t, err)
	return &http.Cookie{Name: util.SessionCookieName, Value: token}
}

func formPost(r *gin.Engine, target string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// multipartPost submits fields plus files under the named file field.
func multipartPost(t *testing.T, r *gin.Engine, target string, fields url.Values,
	fileField string, files map[string][]byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for key, values := range fields {
		for _, value := range values {
			require.NoError(t, mw.WriteField(key, value))
		}
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile(fileField, name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
