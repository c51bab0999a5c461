package analytics

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "net/url"

    "github.com/google/uuid"
    "go.uber.org/zap"
)

// Client sends events to the GA4 Measurement Protocol collector.
// One non-retried POST per event; the collector answers 204 on accept.
type Client struct {
    Endpoint      string // e.g. https://www.google-analytics.com
    MeasurementID string
    APISecret     string
    HTTPClient    *http.Client
    Log           *zap.Logger
}

type PurchaseItem struct {
    ItemID   string  `json:"item_id"`
    ItemName string  `json:"item_name"`
    Price    float64 `json:"price"`
    Quantity int     `json:"quantity"`
}

type PurchaseEvent struct {
    TransactionID string
    Value         float64
    Currency      string
    Items         []PurchaseItem
}

// Configured reports whether both credentials are present.
func (c *Client) Configured() bool {
    return c != nil && c.MeasurementID != "" && c.APISecret != ""
}

// SendPurchase forwards a purchase event. Any non-204 status is an
// error carrying the collector's response body.
func (c *Client) SendPurchase(ctx context.Context, ev PurchaseEvent) error {
    body := map[string]any{
        "client_id": uuid.NewString(),
        "events": []map[string]any{
            {
                "name": "purchase",
                "params": map[string]any{
                    "transaction_id": ev.TransactionID,
                    "value":          ev.Value,
                    "currency":       ev.Currency,
                    "items":          ev.Items,
                },
            },
        },
    }
    payload, err := json.Marshal(body)
    if err != nil {
        return err
    }

    q := url.Values{}
    q.Set("measurement_id", c.MeasurementID)
    q.Set("api_secret", c.APISecret)
    endpoint := c.Endpoint + "/mp/collect?" + q.Encode()

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")

    client := c.HTTPClient
    if client == nil {
        client = http.DefaultClient
    }
    resp, err := client.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusNoContent {
        respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
        return fmt.Errorf("ga4 collect returned status %d: %s", resp.StatusCode, string(respBody))
    }
    if c.Log != nil {
        c.Log.Info("ga4 purchase event forwarded",
            zap.String("transaction_id", ev.TransactionID),
            zap.Float64("value", ev.Value))
    }
    return nil
}
