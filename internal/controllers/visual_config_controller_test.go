package controllers

import (
    "encoding/json"
    "net/http"
    "os"
    "path/filepath"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/models"
    "github.com/lojavirtual/backend_v1/internal/store"
)

func setupVisual(t *testing.T) (*gin.Engine, string) {
    t.Helper()
    dir := t.TempDir()
    st := store.New(dir)
    require.NoError(t, st.EnsureExists(VisualConfigKey, models.DefaultVisualConfig()))

    vc := &VisualConfigController{Store: st, Log: zap.NewNop()}
    r := gin.New()
    r.GET("/api/configuracoes-visuais", vc.Get)
    r.PUT("/api/configuracoes-visuais", vc.Update)
    return r, dir
}

func getVisual(t *testing.T, r *gin.Engine) models.VisualConfig {
    t.Helper()
    w := perform(r, http.MethodGet, "/api/configuracoes-visuais", "")
    require.Equal(t, http.StatusOK, w.Code)
    var cfg models.VisualConfig
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
    return cfg
}

func TestVisualGetReturnsDefaults(t *testing.T) {
    r, _ := setupVisual(t)

    cfg := getVisual(t, r)
    assert.Equal(t, 150, cfg.Logo.Width)
    assert.True(t, cfg.Banners.Enabled)
    assert.Equal(t, 5000, cfg.Banners.Interval)
}

func TestVisualUpdateMergesTopLevelKeys(t *testing.T) {
    r, _ := setupVisual(t)

    w := perform(r, http.MethodPut, "/api/configuracoes-visuais",
        `{"logo":{"url":"/uploads/nova.png","alt":"Nova","width":200,"height":80}}`)
    require.Equal(t, http.StatusOK, w.Code)

    cfg := getVisual(t, r)
    // logo replaced wholesale
    assert.Equal(t, "/uploads/nova.png", cfg.Logo.URL)
    assert.Equal(t, 200, cfg.Logo.Width)
    // banners untouched by the merge
    assert.True(t, cfg.Banners.Enabled)
    assert.Equal(t, 5000, cfg.Banners.Interval)
}

func TestVisualUpdatePreservesUnknownKeys(t *testing.T) {
    r, _ := setupVisual(t)

    w := perform(r, http.MethodPut, "/api/configuracoes-visuais", `{"tema":"escuro"}`)
    require.Equal(t, http.StatusOK, w.Code)

    w = perform(r, http.MethodGet, "/api/configuracoes-visuais", "")
    require.Equal(t, http.StatusOK, w.Code)
    var raw map[string]json.RawMessage
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
    assert.Contains(t, raw, "tema")
    assert.Contains(t, raw, "logo")
}

func TestVisualUpdateRejectsNonObjectBody(t *testing.T) {
    r, _ := setupVisual(t)

    for _, body := range []string{`[1,2]`, `"texto"`, `42`, `null`} {
        w := perform(r, http.MethodPut, "/api/configuracoes-visuais", body)
        assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
    }
}

func TestVisualUpdateRejectsInvalidLogoDimensions(t *testing.T) {
    r, _ := setupVisual(t)

    w := perform(r, http.MethodPut, "/api/configuracoes-visuais",
        `{"logo":{"url":"/x.png","alt":"x","width":0,"height":50}}`)
    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisualUpdateRejectsInvalidInterval(t *testing.T) {
    r, _ := setupVisual(t)

    w := perform(r, http.MethodPut, "/api/configuracoes-visuais",
        `{"banners":{"enabled":true,"autoplay":true,"interval":0,"items":[]}}`)
    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisualUpdateAssignsIDsToNewItems(t *testing.T) {
    r, _ := setupVisual(t)

    w := perform(r, http.MethodPut, "/api/configuracoes-visuais",
        `{"banners":{"enabled":true,"autoplay":true,"interval":4000,"items":[
            {"url":"/b1.jpg","alt":"b1","active":true},
            {"id":7,"url":"/b2.jpg","alt":"b2","active":false},
            {"url":"/b3.jpg","alt":"b3","active":true}
        ]}}`)
    require.Equal(t, http.StatusOK, w.Code)

    cfg := getVisual(t, r)
    require.Len(t, cfg.Banners.Items, 3)
    assert.Equal(t, int64(8), cfg.Banners.Items[0].ID)
    assert.Equal(t, int64(7), cfg.Banners.Items[1].ID)
    assert.Equal(t, int64(9), cfg.Banners.Items[2].ID)
    // display order preserved
    assert.Equal(t, "/b1.jpg", cfg.Banners.Items[0].URL)
}

func TestVisualPutThenGetMatchesMerge(t *testing.T) {
    r, _ := setupVisual(t)

    w := perform(r, http.MethodPut, "/api/configuracoes-visuais",
        `{"logo":{"url":"/l.png","alt":"l","width":10,"height":10},
          "banners":{"enabled":false,"autoplay":false,"interval":1000,"items":[]}}`)
    require.Equal(t, http.StatusOK, w.Code)

    cfg := getVisual(t, r)
    assert.Equal(t, models.LogoConfig{URL: "/l.png", Alt: "l", Width: 10, Height: 10}, cfg.Logo)
    assert.False(t, cfg.Banners.Enabled)
    assert.Equal(t, 1000, cfg.Banners.Interval)
}

func TestVisualGetCorruptFileIs500(t *testing.T) {
    r, dir := setupVisual(t)
    require.NoError(t, os.WriteFile(filepath.Join(dir, VisualConfigKey+".json"), []byte("nope"), 0o644))

    w := perform(r, http.MethodGet, "/api/configuracoes-visuais", "")
    assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVisualGetMissingFileIs500(t *testing.T) {
    dir := t.TempDir()
    vc := &VisualConfigController{Store: store.New(dir), Log: zap.NewNop()}
    r := gin.New()
    r.GET("/api/configuracoes-visuais", vc.Get)

    w := perform(r, http.MethodGet, "/api/configuracoes-visuais", "")
    assert.Equal(t, http.StatusInternalServerError, w.Code)
}
