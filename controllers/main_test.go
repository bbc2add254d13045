package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zentrixia-backend/config"
	"zentrixia-backend/controllers"
	"zentrixia-backend/models"
	"zentrixia-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the full router against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	config.InitMetrics()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Appointment{},
		&models.NotificationLog{},
	))
	config.DB = db
	controllers.Notifier = nil

	return routes.SetupRouter()
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerOwner creates an owner account through the API and returns its id
// and bearer token.
func registerOwner(t *testing.T, r *gin.Engine, email string) (string, string) {
	t.Helper()
	body := `{"email":"` + email + `","password":"password123","businessName":"ZENTRIXIA","whatsapp":"5511932071021"}`
	w := doRequest(r, http.MethodPost, "/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	out := decodeBody(t, w)
	token := out["token"].(string)
	user := out["user"].(map[string]interface{})
	return user["id"].(string), token
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// nextBookableDate returns the next Monday, always in the future and never
// the closed weekday.
func nextBookableDate() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
