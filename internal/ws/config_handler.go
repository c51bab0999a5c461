package ws

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
    CheckOrigin: func(r *http.Request) bool {
        // Public read-only stream; nothing sensitive is pushed.
        return true
    },
}

// ConfigHandler upgrades the connection and registers it on the hub.
func ConfigHandler(hub *ConfigHub) gin.HandlerFunc {
    return func(c *gin.Context) {
        conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
        if err != nil {
            return
        }
        client := newConfigClient(hub, conn)
        hub.register <- client
        go client.writePump()
        go client.readPump()
    }
}
