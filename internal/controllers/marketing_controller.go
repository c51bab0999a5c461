package controllers

import (
    "encoding/json"
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/models"
    "github.com/lojavirtual/backend_v1/internal/store"
)

const MarketingConfigKey = "marketing-config"

type MarketingController struct {
    Store *store.Store
    Log   *zap.Logger
}

func (mc *MarketingController) Get(c *gin.Context) {
    raw, err := mc.Store.Read(MarketingConfigKey)
    if err != nil || !json.Valid(raw) {
        mc.Log.Error("failed to read marketing config", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
        return
    }
    c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

type marketingUpdateRequest struct {
    GTMID *string `json:"gtm_id"`
    GA4ID *string `json:"ga4_id"`
}

// Update replaces the marketing config wholesale. Both fields must be
// present and of string type; empty strings are valid.
func (mc *MarketingController) Update(c *gin.Context) {
    var req marketingUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil || req.GTMID == nil || req.GA4ID == nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Os campos gtm_id e ga4_id são obrigatórios."})
        return
    }

    cfg := models.MarketingConfig{GTMID: *req.GTMID, GA4ID: *req.GA4ID}
    if err := mc.Store.Write(MarketingConfigKey, cfg); err != nil {
        mc.Log.Error("failed to persist marketing config", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor ao salvar a configuração."})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "message": "Configuração de marketing atualizada com sucesso.",
        "config":  cfg,
    })
}
