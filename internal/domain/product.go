package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Price is in cents.
type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           int64            `json:"price"`
	Image           string           `json:"image"`
	Category        string           `json:"category"`
	Origin          string           `json:"origin"`
	InStock         bool             `json:"in_stock"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	NutritionalInfo *NutritionalInfo `json:"nutritional_info,omitempty"`
	StorageInfo     string           `json:"storage_info,omitempty"`
	Ripeness        string           `json:"ripeness,omitempty"`
}

// NutritionalInfo is per-100g nutrition data.
type NutritionalInfo struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
	Fiber    float64 `json:"fiber"`
}

// PriceDecimal is Price in dollars.
func (p *Product) PriceDecimal() decimal.Decimal {
	return decimal.New(p.Price, -2)
}

// Review is a shopper review of a product.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	Helpful   int    `json:"helpful"`
	Verified  bool   `json:"verified"`
}

// ProductSort is a catalog ordering.
type ProductSort string

const (
	SortDefault   ProductSort = ""
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortNameAsc   ProductSort = "name_asc"
	SortNameDesc  ProductSort = "name_desc"
	SortRating    ProductSort = "rating"
)

// ProductFilter narrows a catalog listing. Empty fields match everything.
type ProductFilter struct {
	Categories []string
	Origins    []string
	Query      string
	MinPrice   *int64
	MaxPrice   *int64
	InStock    bool
	Sort       ProductSort
}
