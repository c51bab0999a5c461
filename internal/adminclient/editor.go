package adminclient

import (
    "context"
    "time"

    "github.com/lojavirtual/backend_v1/internal/models"
)

// ValidationError blocks a submit before any network call is made.
type ValidationError struct {
    Message string
}

func (e *ValidationError) Error() string {
    return e.Message
}

// Editor holds the local edit state of the visual config. Each field
// group (logo, banner settings, individual banner item) has its own
// update path that merges only the fields actually set.
type Editor struct {
    client *Client
    config models.VisualConfig
}

func NewEditor(client *Client) *Editor {
    return &Editor{client: client}
}

// Load fetches the current config (mock on failure) into the editor.
// Returns whether the data came from the server.
func (e *Editor) Load(ctx context.Context) bool {
    cfg, fromServer := e.client.FetchVisualConfig(ctx)
    e.config = cfg
    return fromServer
}

func (e *Editor) Config() models.VisualConfig {
    return e.config
}

type LogoPatch struct {
    URL    *string
    Alt    *string
    Width  *int
    Height *int
}

func (e *Editor) UpdateLogo(p LogoPatch) {
    if p.URL != nil {
        e.config.Logo.URL = *p.URL
    }
    if p.Alt != nil {
        e.config.Logo.Alt = *p.Alt
    }
    if p.Width != nil {
        e.config.Logo.Width = *p.Width
    }
    if p.Height != nil {
        e.config.Logo.Height = *p.Height
    }
}

type BannerSettingsPatch struct {
    Enabled  *bool
    Autoplay *bool
    Interval *int
}

func (e *Editor) UpdateBannerSettings(p BannerSettingsPatch) {
    if p.Enabled != nil {
        e.config.Banners.Enabled = *p.Enabled
    }
    if p.Autoplay != nil {
        e.config.Banners.Autoplay = *p.Autoplay
    }
    if p.Interval != nil {
        e.config.Banners.Interval = *p.Interval
    }
}

type BannerItemPatch struct {
    URL      *string
    Alt      *string
    Title    *string
    Subtitle *string
    Link     *string
    Active   *bool
}

// UpdateBannerItem patches the item with the given id; reports whether
// it was found.
func (e *Editor) UpdateBannerItem(id int64, p BannerItemPatch) bool {
    for i := range e.config.Banners.Items {
        item := &e.config.Banners.Items[i]
        if item.ID != id {
            continue
        }
        if p.URL != nil {
            item.URL = *p.URL
        }
        if p.Alt != nil {
            item.Alt = *p.Alt
        }
        if p.Title != nil {
            item.Title = *p.Title
        }
        if p.Subtitle != nil {
            item.Subtitle = *p.Subtitle
        }
        if p.Link != nil {
            item.Link = *p.Link
        }
        if p.Active != nil {
            item.Active = *p.Active
        }
        return true
    }
    return false
}

// AddBanner appends a new active banner with a timestamp-derived id.
// The id is provisional only in the sense that the server is free to
// replace it; timestamp ids sit far above the mock-id threshold and
// survive submit.
func (e *Editor) AddBanner() models.Banner {
    banner := models.Banner{
        ID:     time.Now().UnixMilli(),
        Active: true,
    }
    e.config.Banners.Items = append(e.config.Banners.Items, banner)
    return banner
}

func (e *Editor) RemoveBanner(id int64) {
    items := e.config.Banners.Items[:0]
    for _, it := range e.config.Banners.Items {
        if it.ID != id {
            items = append(items, it)
        }
    }
    e.config.Banners.Items = items
}

// Submit validates locally, strips mock ids, PUTs the full config and
// re-fetches to reconcile with server-assigned state. Validation
// failures block the request entirely.
func (e *Editor) Submit(ctx context.Context) (models.VisualConfig, error) {
    if e.config.Logo.Width <= 0 || e.config.Logo.Height <= 0 || e.config.Banners.Interval <= 0 {
        return models.VisualConfig{}, &ValidationError{
            Message: "Valores de Largura, Altura e Intervalo devem ser maiores que zero.",
        }
    }

    payload := e.config
    payload.Banners.Items = make([]models.Banner, len(e.config.Banners.Items))
    copy(payload.Banners.Items, e.config.Banners.Items)
    for i := range payload.Banners.Items {
        if payload.Banners.Items[i].ID < models.ProvisionalIDThreshold {
            payload.Banners.Items[i].ID = 0
        }
    }

    if err := e.client.putVisualConfig(ctx, payload); err != nil {
        return models.VisualConfig{}, err
    }

    cfg, err := e.client.fetch(ctx)
    if err != nil {
        return models.VisualConfig{}, err
    }
    e.config = cfg
    return cfg, nil
}
