package controllers

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "sync/atomic"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/analytics"
    "github.com/lojavirtual/backend_v1/internal/audit"
)

type webhookFixture struct {
    router   *gin.Engine
    audit    *audit.Logger
    requests *int64
}

func setupWebhook(t *testing.T, ga4Status int, withCredentials bool) webhookFixture {
    t.Helper()

    var requests int64
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        atomic.AddInt64(&requests, 1)
        if ga4Status == http.StatusNoContent {
            w.WriteHeader(http.StatusNoContent)
            return
        }
        w.WriteHeader(ga4Status)
        w.Write([]byte("collector error"))
    }))
    t.Cleanup(srv.Close)

    ga4 := &analytics.Client{Endpoint: srv.URL, Log: zap.NewNop()}
    if withCredentials {
        ga4.MeasurementID = "G-TEST"
        ga4.APISecret = "secret"
    }

    auditLog := audit.New(t.TempDir())
    wc := &WebhookController{Audit: auditLog, GA4: ga4, Log: zap.NewNop()}
    r := gin.New()
    r.POST("/api/webhooks/pagseguro", wc.PagSeguro)

    return webhookFixture{router: r, audit: auditLog, requests: &requests}
}

func todayEntries(t *testing.T, l *audit.Logger) []audit.Entry {
    t.Helper()
    entries, err := l.ReadDay(time.Now().UTC().Format("2006-01-02"))
    require.NoError(t, err)
    return entries
}

func TestWebhookEmptyPayloadIs400(t *testing.T) {
    fx := setupWebhook(t, http.StatusNoContent, true)

    for _, body := range []string{"", "   ", "{}"} {
        w := perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro", body)
        assert.Equal(t, http.StatusBadRequest, w.Code, "body: %q", body)
    }
    assert.Empty(t, todayEntries(t, fx.audit))
    assert.Zero(t, atomic.LoadInt64(fx.requests))
}

func TestWebhookWithoutCredentialsSkipsAnalytics(t *testing.T) {
    fx := setupWebhook(t, http.StatusNoContent, false)

    w := perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro", `{"transaction_id":"x"}`)
    require.Equal(t, http.StatusOK, w.Code)
    assert.JSONEq(t, `{"ok":true}`, w.Body.String())

    // no outbound analytics request was issued
    assert.Zero(t, atomic.LoadInt64(fx.requests))

    entries := todayEntries(t, fx.audit)
    require.Len(t, entries, 1)
    assert.Equal(t, audit.OutcomeSkipped, entries[0].Analytics)
    assert.JSONEq(t, `{"transaction_id":"x"}`, string(entries[0].Payload))
    assert.NotEmpty(t, entries[0].PayloadSHA256)
}

func TestWebhookForwardsPurchase(t *testing.T) {
    fx := setupWebhook(t, http.StatusNoContent, true)

    w := perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro",
        `{"transaction_id":"tx-9","amount":"150.50"}`)
    require.Equal(t, http.StatusOK, w.Code)

    assert.Equal(t, int64(1), atomic.LoadInt64(fx.requests))

    entries := todayEntries(t, fx.audit)
    require.Len(t, entries, 1)
    assert.Equal(t, audit.OutcomeForwarded, entries[0].Analytics)
    assert.Equal(t, "tx-9", entries[0].TransactionID)
}

func TestWebhookAnalyticsFailureStillAcknowledges(t *testing.T) {
    fx := setupWebhook(t, http.StatusForbidden, true)

    w := perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro", `{"transaction_id":"tx-err"}`)
    require.Equal(t, http.StatusOK, w.Code)
    assert.JSONEq(t, `{"ok":true}`, w.Body.String())

    entries := todayEntries(t, fx.audit)
    require.Len(t, entries, 1)
    assert.Equal(t, audit.OutcomeError, entries[0].Analytics)
    assert.Contains(t, entries[0].Error, "collector error")
}

func TestWebhookGeneratesFallbackTransactionID(t *testing.T) {
    fx := setupWebhook(t, http.StatusNoContent, true)

    w := perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro", `{"amount":42}`)
    require.Equal(t, http.StatusOK, w.Code)

    entries := todayEntries(t, fx.audit)
    require.Len(t, entries, 1)
    assert.Contains(t, entries[0].TransactionID, "loja-")
}

func TestWebhookOneLogLinePerCall(t *testing.T) {
    fx := setupWebhook(t, http.StatusNoContent, false)

    perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro", `{"transaction_id":"a"}`)
    perform(fx.router, http.MethodPost, "/api/webhooks/pagseguro", `{"transaction_id":"b"}`)

    entries := todayEntries(t, fx.audit)
    assert.Len(t, entries, 2)
}

func TestPurchaseEventAmountParsing(t *testing.T) {
    payload := map[string]json.RawMessage{
        "transaction_id": json.RawMessage(`"tx"`),
        "amount":         json.RawMessage(`"99.90"`),
    }
    ev := purchaseEvent(payload)
    assert.Equal(t, "tx", ev.TransactionID)
    assert.Equal(t, 99.9, ev.Value)
    assert.Equal(t, "BRL", ev.Currency)
    require.Len(t, ev.Items, 1)
    assert.Equal(t, 99.9, ev.Items[0].Price)

    // numeric amount is accepted too
    payload["amount"] = json.RawMessage(`42.5`)
    assert.Equal(t, 42.5, purchaseEvent(payload).Value)

    // garbage amount degrades to zero
    payload["amount"] = json.RawMessage(`{"x":1}`)
    assert.Zero(t, purchaseEvent(payload).Value)
}
