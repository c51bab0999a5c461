package adminclient

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "time"

    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/models"
)

// Client talks to the visual config endpoints on behalf of the admin
// panel. Fetch fails open onto the embedded mock so editing can start
// even with the backend down.
type Client struct {
    BaseURL    string
    HTTPClient *http.Client
    Log        *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
    return &Client{
        BaseURL:    baseURL,
        HTTPClient: &http.Client{Timeout: 10 * time.Second},
        Log:        log,
    }
}

// FetchVisualConfig returns the server config, or the mock config and
// false when the fetch fails.
func (c *Client) FetchVisualConfig(ctx context.Context) (models.VisualConfig, bool) {
    cfg, err := c.fetch(ctx)
    if err != nil {
        c.Log.Warn("failed to fetch visual config, using mock data", zap.Error(err))
        return MockVisualConfig(), false
    }
    return cfg, true
}

func (c *Client) fetch(ctx context.Context) (models.VisualConfig, error) {
    var cfg models.VisualConfig
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/configuracoes-visuais", nil)
    if err != nil {
        return cfg, err
    }
    resp, err := c.HTTPClient.Do(req)
    if err != nil {
        return cfg, err
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return cfg, fmt.Errorf("unexpected status %d", resp.StatusCode)
    }
    if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
        return cfg, err
    }
    return cfg, nil
}

func (c *Client) putVisualConfig(ctx context.Context, payload models.VisualConfig) error {
    body, err := json.Marshal(payload)
    if err != nil {
        return err
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.BaseURL+"/api/configuracoes-visuais", bytes.NewReader(body))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    resp, err := c.HTTPClient.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
        return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
    }
    return nil
}

// MockVisualConfig mirrors the embedded development mock of the admin
// panel. Its banner ids are below the provisional threshold, so they
// are stripped again on submit.
func MockVisualConfig() models.VisualConfig {
    return models.VisualConfig{
        Logo: models.LogoConfig{
            URL:    "https://via.placeholder.com/150x50.png?text=Logo",
            Alt:    "Logo da Loja",
            Width:  150,
            Height: 50,
        },
        Banners: models.BannerSection{
            Enabled:  true,
            Autoplay: true,
            Interval: 5000,
            Items: []models.Banner{
                {
                    ID:       1,
                    URL:      "https://via.placeholder.com/1920x600.png?text=Banner+1",
                    Alt:      "Banner de Promoção",
                    Title:    "Super Promoção",
                    Subtitle: "Até 50% de desconto",
                    Link:     "/promocao",
                    Active:   true,
                },
                {
                    ID:       2,
                    URL:      "https://via.placeholder.com/1920x600.png?text=Banner+2",
                    Alt:      "Nova Coleção",
                    Title:    "Chegou a Nova Coleção",
                    Subtitle: "Confira as novidades",
                    Link:     "/colecao",
                    Active:   false,
                },
            },
        },
    }
}
