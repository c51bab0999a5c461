package ws

import (
    "encoding/json"
    "log"
    "time"

    "github.com/gorilla/websocket"
)

const (
    writeWait      = 10 * time.Second
    pongWait       = 60 * time.Second
    pingPeriod     = (pongWait * 9) / 10
    sendBufferSize = 16
)

const EventVisualConfigUpdated = "visual-config-updated"

// ConfigEvent is pushed to storefronts and admin panels whenever the
// visual configuration changes, so they can re-fetch without polling.
type ConfigEvent struct {
    Type      string    `json:"type"`
    Config    any       `json:"config"`
    UpdatedAt time.Time `json:"updated_at"`
}

// ConfigHub handles websocket clients listening for config updates.
type ConfigHub struct {
    register   chan *configClient
    unregister chan *configClient
    broadcast  chan []byte
    clients    map[*configClient]struct{}
}

func NewConfigHub() *ConfigHub {
    return &ConfigHub{
        register:   make(chan *configClient),
        unregister: make(chan *configClient),
        broadcast:  make(chan []byte, 64),
        clients:    make(map[*configClient]struct{}),
    }
}

func (h *ConfigHub) Run() {
    for {
        select {
        case client := <-h.register:
            h.clients[client] = struct{}{}
        case client := <-h.unregister:
            if _, ok := h.clients[client]; ok {
                delete(h.clients, client)
                close(client.send)
                client.conn.Close()
            }
        case msg := <-h.broadcast:
            for client := range h.clients {
                select {
                case client.send <- msg:
                default:
                    delete(h.clients, client)
                    close(client.send)
                    client.conn.Close()
                }
            }
        }
    }
}

// BroadcastUpdate pushes the new visual config to all connected clients.
func (h *ConfigHub) BroadcastUpdate(config any) {
    if h == nil {
        return
    }
    data, err := json.Marshal(ConfigEvent{
        Type:      EventVisualConfigUpdated,
        Config:    config,
        UpdatedAt: time.Now().UTC(),
    })
    if err != nil {
        log.Printf("ws: failed to marshal config event: %v", err)
        return
    }
    h.broadcast <- data
}

type configClient struct {
    hub  *ConfigHub
    conn *websocket.Conn
    send chan []byte
}

func newConfigClient(hub *ConfigHub, conn *websocket.Conn) *configClient {
    return &configClient{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}
}

func (c *configClient) readPump() {
    defer func() {
        c.hub.unregister <- c
    }()
    c.conn.SetReadLimit(512)
    c.conn.SetReadDeadline(time.Now().Add(pongWait))
    c.conn.SetPongHandler(func(string) error {
        c.conn.SetReadDeadline(time.Now().Add(pongWait))
        return nil
    })
    for {
        if _, _, err := c.conn.ReadMessage(); err != nil {
            break
        }
    }
}

func (c *configClient) writePump() {
    ticker := time.NewTicker(pingPeriod)
    defer func() {
        ticker.Stop()
        c.conn.Close()
    }()
    for {
        select {
        case msg, ok := <-c.send:
            c.conn.SetWriteDeadline(time.Now().Add(writeWait))
            if !ok {
                c.conn.WriteMessage(websocket.CloseMessage, []byte{})
                return
            }
            if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
                return
            }
        case <-ticker.C:
            c.conn.SetWriteDeadline(time.Now().Add(writeWait))
            if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
                return
            }
        }
    }
}
