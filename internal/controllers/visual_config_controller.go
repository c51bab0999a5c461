package controllers

import (
    "encoding/json"
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/models"
    "github.com/lojavirtual/backend_v1/internal/store"
    "github.com/lojavirtual/backend_v1/internal/ws"
)

const VisualConfigKey = "visual-config"

type VisualConfigController struct {
    Store *store.Store
    Hub   *ws.ConfigHub
    Log   *zap.Logger
}

// Get returns the persisted visual config verbatim. The file is
// created at startup, so a missing or unparsable file is an internal
// fault, not a case to repair here.
func (vc *VisualConfigController) Get(c *gin.Context) {
    raw, err := vc.Store.Read(VisualConfigKey)
    if err != nil || !json.Valid(raw) {
        vc.Log.Error("failed to read visual config", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
        return
    }
    c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// Update merges the payload's top-level keys onto the persisted
// object. Nested objects (logo, banners) are replaced wholesale when
// present, never deep-merged. Marketing config, by contrast, is a full
// replace; the two semantics are intentionally distinct.
func (vc *VisualConfigController) Update(c *gin.Context) {
    var patch map[string]json.RawMessage
    if err := c.ShouldBindJSON(&patch); err != nil || patch == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "O corpo da requisição deve ser um objeto JSON."})
        return
    }

    current := map[string]json.RawMessage{}
    if err := vc.Store.ReadJSON(VisualConfigKey, &current); err != nil {
        vc.Log.Error("failed to read visual config for merge", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
        return
    }
    for k, v := range patch {
        current[k] = v
    }

    if raw, ok := current["logo"]; ok {
        var logo models.LogoConfig
        if err := json.Unmarshal(raw, &logo); err != nil || logo.Width <= 0 || logo.Height <= 0 {
            c.JSON(http.StatusBadRequest, gin.H{"error": "Valores de largura e altura devem ser maiores que zero."})
            return
        }
    }
    if raw, ok := current["banners"]; ok {
        var section models.BannerSection
        if err := json.Unmarshal(raw, &section); err != nil || section.Interval <= 0 {
            c.JSON(http.StatusBadRequest, gin.H{"error": "Intervalo deve ser maior que zero."})
            return
        }
        assignBannerIDs(section.Items)
        merged, err := json.Marshal(section)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
            return
        }
        current["banners"] = merged
    }

    if err := vc.Store.Write(VisualConfigKey, current); err != nil {
        vc.Log.Error("failed to persist visual config", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor ao salvar a configuração."})
        return
    }

    vc.Hub.BroadcastUpdate(current)
    c.JSON(http.StatusOK, gin.H{
        "message": "Configurações visuais atualizadas com sucesso.",
        "config":  current,
    })
}

// assignBannerIDs gives a persisted identity to items that arrived
// without one (the admin client strips provisional ids before sending).
func assignBannerIDs(items []models.Banner) {
    var max int64
    for _, it := range items {
        if it.ID > max {
            max = it.ID
        }
    }
    for i := range items {
        if items[i].ID == 0 {
            max++
            items[i].ID = max
        }
    }
}
