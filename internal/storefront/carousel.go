package storefront

import (
    "sync"
    "time"

    "github.com/lojavirtual/backend_v1/internal/models"
)

const defaultCarouselInterval = 4 * time.Second

// Carousel rotates through the active banners only. Auto-advance runs
// while more than one active banner exists; the timer is rebuilt when
// the banner set or interval changes and torn down by Stop.
type Carousel struct {
    mu       sync.Mutex
    items    []models.Banner
    index    int
    interval time.Duration
    autoplay bool
    running  bool
    ticker   *time.Ticker
    done     chan struct{}
}

func NewCarousel(section models.BannerSection) *Carousel {
    interval := time.Duration(section.Interval) * time.Millisecond
    if interval <= 0 {
        interval = defaultCarouselInterval
    }
    // A disabled section renders nothing, active banners included.
    var items []models.Banner
    if section.Enabled {
        items = activeBanners(section.Items)
    }
    return &Carousel{
        items:    items,
        interval: interval,
        autoplay: section.Autoplay,
    }
}

func activeBanners(items []models.Banner) []models.Banner {
    out := make([]models.Banner, 0, len(items))
    for _, it := range items {
        if it.Active {
            out = append(out, it)
        }
    }
    return out
}

// Start (re)establishes the autoplay timer. A started carousel stays
// armed even while fewer than two banners are active: the timer comes
// back as soon as the set grows again.
func (c *Carousel) Start() {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.running = true
    c.stopLocked()
    c.startLocked()
}

// Stop tears the timer down. Must be called when the carousel is
// removed so no goroutine keeps ticking against a dead view.
func (c *Carousel) Stop() {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.running = false
    c.stopLocked()
}

func (c *Carousel) startLocked() {
    if !c.running || !c.autoplay || len(c.items) < 2 {
        return
    }
    c.ticker = time.NewTicker(c.interval)
    c.done = make(chan struct{})
    go func(t *time.Ticker, done chan struct{}) {
        for {
            select {
            case <-t.C:
                c.autoAdvance(t)
            case <-done:
                return
            }
        }
    }(c.ticker, c.done)
}

// autoAdvance ignores ticks from a ticker that was already torn down,
// so a stopped carousel never moves again.
func (c *Carousel) autoAdvance(t *time.Ticker) {
    c.mu.Lock()
    defer c.mu.Unlock()
    if c.ticker != t || len(c.items) == 0 {
        return
    }
    c.index = (c.index + 1) % len(c.items)
}

func (c *Carousel) stopLocked() {
    if c.ticker != nil {
        c.ticker.Stop()
        close(c.done)
        c.ticker = nil
        c.done = nil
    }
}

// Next advances cyclically, wrapping from the last banner back to 0.
func (c *Carousel) Next() {
    c.mu.Lock()
    defer c.mu.Unlock()
    if len(c.items) == 0 {
        return
    }
    c.index = (c.index + 1) % len(c.items)
}

// Select is the manual override via the indicator dots.
func (c *Carousel) Select(i int) bool {
    c.mu.Lock()
    defer c.mu.Unlock()
    if i < 0 || i >= len(c.items) {
        return false
    }
    c.index = i
    return true
}

func (c *Carousel) Current() (models.Banner, bool) {
    c.mu.Lock()
    defer c.mu.Unlock()
    if len(c.items) == 0 {
        return models.Banner{}, false
    }
    return c.items[c.index], true
}

func (c *Carousel) Index() int {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.index
}

func (c *Carousel) ActiveCount() int {
    c.mu.Lock()
    defer c.mu.Unlock()
    return len(c.items)
}

// SetBanners replaces the banner set and rebuilds the timer.
func (c *Carousel) SetBanners(items []models.Banner) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.items = activeBanners(items)
    if c.index >= len(c.items) {
        c.index = 0
    }
    c.stopLocked()
    c.startLocked()
}

// SetInterval changes the rotation interval and rebuilds the timer.
func (c *Carousel) SetInterval(ms int) {
    c.mu.Lock()
    defer c.mu.Unlock()
    if ms <= 0 {
        return
    }
    c.interval = time.Duration(ms) * time.Millisecond
    c.stopLocked()
    c.startLocked()
}
