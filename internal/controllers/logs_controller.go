package controllers

import (
    "errors"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/audit"
)

type LogsController struct {
    Audit *audit.Logger
    Log   *zap.Logger
}

// ListWebhookLogs returns the relay audit entries of one UTC day
// (default: today).
func (lc *LogsController) ListWebhookLogs(c *gin.Context) {
    date := c.DefaultQuery("date", time.Now().UTC().Format("2006-01-02"))

    entries, err := lc.Audit.ReadDay(date)
    if err != nil {
        if errors.Is(err, audit.ErrInvalidDate) {
            c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida. Use o formato YYYY-MM-DD."})
            return
        }
        lc.Log.Error("failed to read webhook log", zap.String("date", date), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
        return
    }

    c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}
