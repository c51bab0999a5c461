package models

// MarketingConfig holds the third-party tag ids injected into the
// storefront. Both may be empty until the admin fills them in.
type MarketingConfig struct {
    GTMID string `json:"gtm_id"`
    GA4ID string `json:"ga4_id"`
}

func DefaultMarketingConfig() MarketingConfig {
    return MarketingConfig{}
}
