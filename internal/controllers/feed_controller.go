package controllers

import (
    "encoding/json"
    "net/http"
    "os"
    "strconv"
    "strings"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/lojavirtual/backend_v1/internal/models"
)

const (
    feedCondition = "new"
    feedCategory  = "Vestuário e acessórios"
)

type FeedController struct {
    CatalogFile   string
    PublicBaseURL string
    Log           *zap.Logger
}

// Get maps the product catalog to the Google Merchant feed shape.
func (fc *FeedController) Get(c *gin.Context) {
    raw, err := os.ReadFile(fc.CatalogFile)
    if err != nil {
        fc.Log.Error("failed to read product catalog", zap.String("file", fc.CatalogFile), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
        return
    }
    var products []models.Product
    if err := json.Unmarshal(raw, &products); err != nil {
        fc.Log.Error("failed to parse product catalog", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
        return
    }

    items := make([]models.FeedItem, 0, len(products))
    for _, p := range products {
        items = append(items, fc.feedItem(p))
    }
    c.JSON(http.StatusOK, gin.H{"items": items})
}

func (fc *FeedController) feedItem(p models.Product) models.FeedItem {
    slug := p.Slug
    if slug == "" {
        slug = strconv.FormatInt(p.ID, 10)
    }

    imageLink := ""
    if img, ok := p.PrincipalImage(); ok {
        imageLink = fc.absoluteURL(img.URL)
    }

    availability := "out of stock"
    if p.Stock > 0 {
        availability = "in stock"
    }

    return models.FeedItem{
        ID:           strconv.FormatInt(p.ID, 10),
        Title:        p.Name,
        Description:  p.Description,
        Link:         fc.absoluteURL("/produto/" + slug),
        ImageLink:    imageLink,
        Brand:        p.Brand,
        Price:        p.Price.StringFixed(2) + " BRL",
        Availability: availability,
        Condition:    feedCondition,
        Category:     feedCategory,
    }
}

func (fc *FeedController) absoluteURL(path string) string {
    if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
        return path
    }
    base := strings.TrimRight(fc.PublicBaseURL, "/")
    if !strings.HasPrefix(path, "/") {
        path = "/" + path
    }
    return base + path
}
