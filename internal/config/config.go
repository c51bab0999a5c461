package config

import (
    "os"
    "path/filepath"
)

type Config struct {
    Port          string
    PublicBaseURL string
    DataDir       string
    UploadsDir    string
    CatalogFile   string
    // Google Analytics 4 Measurement Protocol
    GA4MeasurementID string
    GA4APISecret     string
    GA4Endpoint      string
    // Admin session
    AdminEmail    string
    AdminPassword string
    AdminFullName string
    JWTSecret     string
    JWTExpiresIn  string // minutes
}

func Load() *Config {
    dataDir := getenv("DATA_DIR", "./data")
    return &Config{
        Port:          getenv("PORT", "3000"),
        PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:3000"),
        DataDir:       dataDir,
        UploadsDir:    getenv("UPLOADS_DIR", "./uploads"),
        CatalogFile:   getenv("CATALOG_FILE", filepath.Join(dataDir, "products.json")),

        GA4MeasurementID: getenv("GA4_MEASUREMENT_ID", ""),
        GA4APISecret:     getenv("GA4_API_SECRET", ""),
        GA4Endpoint:      getenv("GA4_ENDPOINT", "https://www.google-analytics.com"),

        AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
        AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
        AdminFullName: getenv("ADMIN_FULL_NAME", "Administrador"),
        JWTSecret:     getenv("JWT_SECRET", "supersecret_change_me"),
        JWTExpiresIn:  getenv("JWT_EXPIRES_IN", "60"),
    }
}

// HasGA4Credentials reports whether analytics forwarding is configured.
func (c *Config) HasGA4Credentials() bool {
    return c.GA4MeasurementID != "" && c.GA4APISecret != ""
}

func getenv(key, fallback string) string {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    return v
}
