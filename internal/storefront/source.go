package storefront

import (
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/models"
)

const fetchTimeout = 5 * time.Second

// Origin distinguishes a genuine fetch from the fail-open fallback in
// logs and telemetry.
type Origin string

const (
    OriginRemote   Origin = "remote"
    OriginFallback Origin = "fallback"
)

// Source is the storefront's configuration source with fallback chain:
// primary fetch with bounded timeout, shape validation, then the
// hardcoded fallback. The storefront must stay renderable with zero
// backend availability.
type Source struct {
    BaseURL    string
    HTTPClient *http.Client
    Log        *zap.Logger
}

func NewSource(baseURL string, log *zap.Logger) *Source {
    return &Source{
        BaseURL:    baseURL,
        HTTPClient: &http.Client{Timeout: fetchTimeout},
        Log:        log,
    }
}

// Load never fails: any fetch or validation problem yields the
// fallback config, tagged as such.
func (s *Source) Load(ctx context.Context) (models.VisualConfig, Origin) {
    cfg, err := s.fetch(ctx)
    if err != nil {
        s.Log.Warn("visual config fetch failed, using fallback",
            zap.String("origin", string(OriginFallback)), zap.Error(err))
        return FallbackVisualConfig(), OriginFallback
    }
    s.Log.Info("visual config fetched", zap.String("origin", string(OriginRemote)))
    return cfg, OriginRemote
}

func (s *Source) fetch(ctx context.Context) (models.VisualConfig, error) {
    var cfg models.VisualConfig

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/api/configuracoes-visuais", nil)
    if err != nil {
        return cfg, err
    }
    resp, err := s.HTTPClient.Do(req)
    if err != nil {
        return cfg, err
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return cfg, fmt.Errorf("unexpected status %d", resp.StatusCode)
    }

    var shape map[string]json.RawMessage
    if err := json.NewDecoder(resp.Body).Decode(&shape); err != nil {
        return cfg, err
    }
    logoRaw, hasLogo := shape["logo"]
    bannersRaw, hasBanners := shape["banners"]
    if !hasLogo || !hasBanners {
        return cfg, fmt.Errorf("response missing logo or banners")
    }
    if err := json.Unmarshal(logoRaw, &cfg.Logo); err != nil {
        return cfg, err
    }
    if err := json.Unmarshal(bannersRaw, &cfg.Banners); err != nil {
        return cfg, err
    }
    return cfg, nil
}

// FallbackVisualConfig is the hardcoded rendering placeholder used
// when the backend is unreachable or answers with an invalid shape.
func FallbackVisualConfig() models.VisualConfig {
    return models.VisualConfig{
        Logo: models.LogoConfig{
            URL:    "/fallback-logo.png",
            Alt:    "Default Logo",
            Width:  150,
            Height: 50,
        },
        Banners: models.BannerSection{
            Enabled:  true,
            Autoplay: true,
            Interval: 5000,
            Items: []models.Banner{
                {ID: 1, URL: "/fallback-banner-1.jpg", Link: "#", Active: true, Alt: "Fallback Banner 1"},
                {ID: 2, URL: "/fallback-banner-2.jpg", Link: "#", Active: false, Alt: "Fallback Banner 2"},
                {ID: 3, URL: "/fallback-banner-3.jpg", Link: "#", Active: true, Alt: "Fallback Banner 3"},
            },
        },
    }
}
