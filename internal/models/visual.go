package models

// ProvisionalIDThreshold separates real banner ids from client-side
// placeholders: ids below it are mock/new entries that must not be
// persisted as-is (timestamp-millis ids generated by the admin editor
// are always far above it).
const ProvisionalIDThreshold = 10000

type LogoConfig struct {
    URL    string `json:"url"`
    Alt    string `json:"alt"`
    Width  int    `json:"width"`
    Height int    `json:"height"`
}

type Banner struct {
    ID       int64  `json:"id,omitempty"`
    URL      string `json:"url"`
    Alt      string `json:"alt"`
    Title    string `json:"title"`
    Subtitle string `json:"subtitle"`
    Link     string `json:"link"`
    Active   bool   `json:"active"`
}

// BannerSection groups the carousel settings with its ordered items.
// Interval is in milliseconds.
type BannerSection struct {
    Enabled  bool     `json:"enabled"`
    Autoplay bool     `json:"autoplay"`
    Interval int      `json:"interval"`
    Items    []Banner `json:"items"`
}

type VisualConfig struct {
    Logo    LogoConfig    `json:"logo"`
    Banners BannerSection `json:"banners"`
}

// DefaultVisualConfig is written on first server start when no
// visual-config file exists yet.
func DefaultVisualConfig() VisualConfig {
    return VisualConfig{
        Logo: LogoConfig{
            URL:    "/uploads/logo.png",
            Alt:    "Loja Virtual",
            Width:  150,
            Height: 50,
        },
        Banners: BannerSection{
            Enabled:  true,
            Autoplay: true,
            Interval: 5000,
            Items:    []Banner{},
        },
    }
}
