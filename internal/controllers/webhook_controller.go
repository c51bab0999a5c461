package controllers

import (
    "bytes"
    "encoding/json"
    "io"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/analytics"
    "github.com/lojavirtual/backend_v1/internal/audit"
    "github.com/lojavirtual/backend_v1/internal/utils"
)

type WebhookController struct {
    Audit *audit.Logger
    GA4   *analytics.Client
    Log   *zap.Logger
}

// PagSeguro receives payment notifications. Past the empty-payload
// check the provider must always get a success response: a failure
// here would trigger provider-side retry storms, so every internal
// error is logged and swallowed.
func (wc *WebhookController) PagSeguro(c *gin.Context) {
    body, err := io.ReadAll(c.Request.Body)
    if err != nil {
        body = nil
    }

    var payload map[string]json.RawMessage
    if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &payload) != nil || len(payload) == 0 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Payload vazio."})
        return
    }

    entry := audit.Entry{
        ID:            uuid.NewString(),
        Timestamp:     time.Now().UTC(),
        Payload:       json.RawMessage(body),
        PayloadSHA256: utils.SHA256Hex(string(body)),
    }

    if !wc.GA4.Configured() {
        entry.Analytics = audit.OutcomeSkipped
    } else {
        ev := purchaseEvent(payload)
        entry.TransactionID = ev.TransactionID
        if err := wc.GA4.SendPurchase(c.Request.Context(), ev); err != nil {
            entry.Analytics = audit.OutcomeError
            entry.Error = err.Error()
            wc.Log.Warn("ga4 forward failed", zap.String("transaction_id", ev.TransactionID), zap.Error(err))
        } else {
            entry.Analytics = audit.OutcomeForwarded
        }
    }

    if err := wc.Audit.Append(entry); err != nil {
        wc.Log.Error("webhook audit append failed", zap.Error(err))
    }

    c.JSON(http.StatusOK, gin.H{"ok": true})
}

// purchaseEvent synthesizes the GA4 purchase from the notification.
// Line items are a fixed placeholder until the provider payload
// carries real order lines.
func purchaseEvent(payload map[string]json.RawMessage) analytics.PurchaseEvent {
    txID := stringField(payload, "transaction_id")
    if txID == "" {
        txID = "loja-" + uuid.NewString()
    }

    var amount FlexibleString
    if raw, ok := payload["amount"]; ok {
        _ = json.Unmarshal(raw, &amount)
    }
    value := amount.Float64()

    return analytics.PurchaseEvent{
        TransactionID: txID,
        Value:         value,
        Currency:      "BRL",
        Items: []analytics.PurchaseItem{
            {ItemID: "pedido", ItemName: "Pedido Loja Virtual", Price: value, Quantity: 1},
        },
    }
}

func stringField(payload map[string]json.RawMessage, key string) string {
    raw, ok := payload[key]
    if !ok {
        return ""
    }
    var fs FlexibleString
    if err := json.Unmarshal(raw, &fs); err != nil {
        return ""
    }
    return fs.String()
}
