package logger

import (
    "os"

    "go.uber.org/zap"
)

// New builds the process-wide logger. Release mode (GIN_MODE=release)
// gets JSON production output, anything else gets the console encoder.
func New() *zap.Logger {
    if os.Getenv("GIN_MODE") == "release" {
        l, err := zap.NewProduction()
        if err != nil {
            return zap.NewNop()
        }
        return l
    }
    l, err := zap.NewDevelopment()
    if err != nil {
        return zap.NewNop()
    }
    return l
}
