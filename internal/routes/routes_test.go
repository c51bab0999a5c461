package routes

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/config"
    "github.com/lojavirtual/backend_v1/internal/controllers"
    "github.com/lojavirtual/backend_v1/internal/models"
    "github.com/lojavirtual/backend_v1/internal/store"
    "github.com/lojavirtual/backend_v1/internal/ws"
)

func newTestEngine(t *testing.T, cfg *config.Config) *gin.Engine {
    t.Helper()
    gin.SetMode(gin.TestMode)

    st := store.New(t.TempDir())
    require.NoError(t, st.EnsureExists(controllers.VisualConfigKey, models.DefaultVisualConfig()))
    require.NoError(t, st.EnsureExists(controllers.MarketingConfigKey, models.DefaultMarketingConfig()))

    r := gin.New()
    require.NoError(t, Register(r, st, ws.NewConfigHub(), cfg, zap.NewNop()))
    return r
}

func login(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
    t.Helper()
    body := `{"email":"` + email + `","password":"` + password + `"}`
    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    r.ServeHTTP(w, req)
    return w
}

func TestRegisterDefaultsNonPositiveJWTExpiry(t *testing.T) {
    cfg := &config.Config{
        DataDir:       t.TempDir(),
        UploadsDir:    t.TempDir(),
        AdminEmail:    "admin@example.com",
        AdminPassword: "segredo123",
        AdminFullName: "Administrador",
        JWTSecret:     "test-secret",
        JWTExpiresIn:  "-5",
    }
    r := newTestEngine(t, cfg)

    w := login(t, r, cfg.AdminEmail, cfg.AdminPassword)
    require.Equal(t, http.StatusOK, w.Code)

    var resp struct {
        ExpiresIn int `json:"expires_in"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestRegisterUsesConfiguredJWTExpiry(t *testing.T) {
    cfg := &config.Config{
        DataDir:       t.TempDir(),
        UploadsDir:    t.TempDir(),
        AdminEmail:    "admin@example.com",
        AdminPassword: "segredo123",
        AdminFullName: "Administrador",
        JWTSecret:     "test-secret",
        JWTExpiresIn:  "15",
    }
    r := newTestEngine(t, cfg)

    w := login(t, r, cfg.AdminEmail, cfg.AdminPassword)
    require.Equal(t, http.StatusOK, w.Code)

    var resp struct {
        ExpiresIn int `json:"expires_in"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    assert.Equal(t, 900, resp.ExpiresIn)
}
