package routes

import (
    "path/filepath"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/analytics"
    "github.com/lojavirtual/backend_v1/internal/audit"
    "github.com/lojavirtual/backend_v1/internal/config"
    "github.com/lojavirtual/backend_v1/internal/controllers"
    "github.com/lojavirtual/backend_v1/internal/middleware"
    "github.com/lojavirtual/backend_v1/internal/store"
    "github.com/lojavirtual/backend_v1/internal/utils"
    "github.com/lojavirtual/backend_v1/internal/ws"
)

func Register(r *gin.Engine, st *store.Store, hub *ws.ConfigHub, cfg *config.Config, log *zap.Logger) error {
    expires, err := time.ParseDuration(cfg.JWTExpiresIn + "m")
    if err != nil || expires <= 0 {
        expires = 60 * time.Minute
    }

    passwordHash, err := utils.HashPassword(cfg.AdminPassword)
    if err != nil {
        return err
    }

    auditLog := audit.New(filepath.Join(cfg.DataDir, "webhook-logs"))
    ga4 := &analytics.Client{
        Endpoint:      cfg.GA4Endpoint,
        MeasurementID: cfg.GA4MeasurementID,
        APISecret:     cfg.GA4APISecret,
        Log:           log.Named("ga4"),
    }

    visualCtrl := &controllers.VisualConfigController{Store: st, Hub: hub, Log: log.Named("visual")}
    marketingCtrl := &controllers.MarketingController{Store: st, Log: log.Named("marketing")}
    feedCtrl := &controllers.FeedController{CatalogFile: cfg.CatalogFile, PublicBaseURL: cfg.PublicBaseURL, Log: log.Named("feed")}
    webhookCtrl := &controllers.WebhookController{Audit: auditLog, GA4: ga4, Log: log.Named("webhook")}
    logsCtrl := &controllers.LogsController{Audit: auditLog, Log: log.Named("logs")}
    authCtrl := &controllers.AuthController{
        Account: controllers.AdminAccount{
            Email:        cfg.AdminEmail,
            FullName:     cfg.AdminFullName,
            PasswordHash: passwordHash,
        },
        JWTSecret: cfg.JWTSecret,
        ExpiresIn: expires,
    }

    api := r.Group("/api")
    {
        api.GET("/marketing-config", marketingCtrl.Get)
        api.PUT("/marketing-config", marketingCtrl.Update)
        api.GET("/configuracoes-visuais", visualCtrl.Get)
        api.PUT("/configuracoes-visuais", visualCtrl.Update)
        api.GET("/feed-google.json", feedCtrl.Get)
        api.POST("/webhooks/pagseguro", webhookCtrl.PagSeguro)
        api.GET("/ws/config", ws.ConfigHandler(hub))
        api.POST("/admin/login", authCtrl.Login)
    }

    admin := api.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRoles("admin"))
    {
        admin.GET("/me", authCtrl.Me)
        admin.GET("/webhook-logs", logsCtrl.ListWebhookLogs)
    }

    r.Static("/uploads", cfg.UploadsDir)
    return nil
}
