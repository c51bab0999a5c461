package models

import "github.com/shopspring/decimal"

type ProductImage struct {
    URL       string `json:"url"`
    Principal bool   `json:"principal"`
}

// Product mirrors one entry of the read-only catalog file.
type Product struct {
    ID          int64           `json:"id"`
    Name        string          `json:"name"`
    Slug        string          `json:"slug"`
    Description string          `json:"description"`
    Brand       string          `json:"brand"`
    Price       decimal.Decimal `json:"price"`
    Stock       int             `json:"stock"`
    Images      []ProductImage  `json:"images"`
}

// PrincipalImage returns the image flagged as the product's primary one.
func (p Product) PrincipalImage() (ProductImage, bool) {
    for _, img := range p.Images {
        if img.Principal {
            return img, true
        }
    }
    return ProductImage{}, false
}

// FeedItem is one entry of the Google Merchant product feed.
type FeedItem struct {
    ID           string `json:"id"`
    Title        string `json:"title"`
    Description  string `json:"description"`
    Link         string `json:"link"`
    ImageLink    string `json:"image_link"`
    Brand        string `json:"brand"`
    Price        string `json:"price"`
    Availability string `json:"availability"`
    Condition    string `json:"condition"`
    Category     string `json:"category"`
}
