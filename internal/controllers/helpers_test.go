package controllers

import (
    "net/http/httptest"
    "strings"

    "github.com/gin-gonic/gin"
)

func init() {
    gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(method, path, strings.NewReader(body))
    if body != "" {
        req.Header.Set("Content-Type", "application/json")
    }
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    return w
}
