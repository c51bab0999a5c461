package main

import (
    "context"
    "encoding/json"
    "errors"
    "flag"
    "fmt"
    "log"
    "os"
    "strings"

    "github.com/joho/godotenv"

    "github.com/lojavirtual/backend_v1/internal/adminclient"
    "github.com/lojavirtual/backend_v1/internal/logger"
)

// admincli is a headless version of the admin panel's visual settings
// page: it loads the current config, applies the requested edits and
// submits the full config back.
func main() {
    _ = godotenv.Load()

    base := flag.String("base", envOr("PUBLIC_BASE_URL", "http://localhost:3000"), "backend base URL")
    show := flag.Bool("show", false, "print the current config and exit")

    logoURL := flag.String("logo-url", "", "logo image URL")
    logoAlt := flag.String("logo-alt", "", "logo alt text")
    logoWidth := flag.Int("logo-width", 0, "logo width in px")
    logoHeight := flag.Int("logo-height", 0, "logo height in px")

    enabled := flag.String("enabled", "", "banner section enabled (true/false)")
    autoplay := flag.String("autoplay", "", "banner autoplay (true/false)")
    interval := flag.Int("interval", 0, "banner rotation interval in ms")

    addBanner := flag.String("add-banner", "", "new banner as url|alt|title|subtitle|link")
    removeBanner := flag.Int64("remove-banner", 0, "id of the banner to remove")
    flag.Parse()

    zl := logger.New()
    defer zl.Sync()

    ctx := context.Background()
    editor := adminclient.NewEditor(adminclient.New(*base, zl))
    if !editor.Load(ctx) {
        fmt.Fprintln(os.Stderr, "aviso: backend indisponível, editando dados de exemplo")
    }

    if *show {
        out, err := json.MarshalIndent(editor.Config(), "", "  ")
        if err != nil {
            log.Fatalf("failed to encode config: %v", err)
        }
        fmt.Println(string(out))
        return
    }

    logoPatch := adminclient.LogoPatch{}
    if *logoURL != "" {
        logoPatch.URL = logoURL
    }
    if *logoAlt != "" {
        logoPatch.Alt = logoAlt
    }
    if *logoWidth > 0 {
        logoPatch.Width = logoWidth
    }
    if *logoHeight > 0 {
        logoPatch.Height = logoHeight
    }
    editor.UpdateLogo(logoPatch)

    settingsPatch := adminclient.BannerSettingsPatch{}
    if v, ok := parseBoolFlag(*enabled); ok {
        settingsPatch.Enabled = &v
    }
    if v, ok := parseBoolFlag(*autoplay); ok {
        settingsPatch.Autoplay = &v
    }
    if *interval > 0 {
        settingsPatch.Interval = interval
    }
    editor.UpdateBannerSettings(settingsPatch)

    if *addBanner != "" {
        parts := strings.SplitN(*addBanner, "|", 5)
        get := func(i int) *string {
            if i < len(parts) {
                return &parts[i]
            }
            return nil
        }
        banner := editor.AddBanner()
        editor.UpdateBannerItem(banner.ID, adminclient.BannerItemPatch{
            URL:      get(0),
            Alt:      get(1),
            Title:    get(2),
            Subtitle: get(3),
            Link:     get(4),
        })
    }
    if *removeBanner != 0 {
        editor.RemoveBanner(*removeBanner)
    }

    if _, err := editor.Submit(ctx); err != nil {
        var vErr *adminclient.ValidationError
        if errors.As(err, &vErr) {
            fmt.Fprintln(os.Stderr, "Erro:", vErr.Message)
            os.Exit(1)
        }
        fmt.Fprintln(os.Stderr, "Erro ao salvar configurações:", err)
        os.Exit(1)
    }
    fmt.Println("Salvo com sucesso!")
}

func parseBoolFlag(v string) (bool, bool) {
    switch strings.ToLower(strings.TrimSpace(v)) {
    case "true", "1", "yes":
        return true, true
    case "false", "0", "no":
        return false, true
    default:
        return false, false
    }
}

func envOr(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
