package main

import (
    "log"
    "os"

    "github.com/gin-gonic/gin"
    "github.com/joho/godotenv"

    "github.com/lojavirtual/backend_v1/internal/config"
    "github.com/lojavirtual/backend_v1/internal/controllers"
    "github.com/lojavirtual/backend_v1/internal/logger"
    "github.com/lojavirtual/backend_v1/internal/models"
    "github.com/lojavirtual/backend_v1/internal/routes"
    "github.com/lojavirtual/backend_v1/internal/store"
    "github.com/lojavirtual/backend_v1/internal/ws"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg := config.Load()
    zl := logger.New()
    defer zl.Sync()

    st := store.New(cfg.DataDir)
    if err := st.EnsureExists(controllers.VisualConfigKey, models.DefaultVisualConfig()); err != nil {
        log.Fatalf("visual config init failed: %v", err)
    }
    if err := st.EnsureExists(controllers.MarketingConfigKey, models.DefaultMarketingConfig()); err != nil {
        log.Fatalf("marketing config init failed: %v", err)
    }

    hub := ws.NewConfigHub()
    go hub.Run()

    r := gin.Default()
    if err := routes.Register(r, st, hub, cfg, zl); err != nil {
        log.Fatalf("route registration failed: %v", err)
    }

    port := cfg.Port
    if port == "" {
        port = "3000"
    }

    if err := r.Run(":" + port); err != nil {
        log.Println("server exited with error:", err)
        os.Exit(1)
    }
}
