package nutrition

import (
	"FoodGuard-Backend/pkg/risk"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultCacheSize = 512
)

var ErrProductNotFound = errors.New("product not found in nutrition provider")

type (
	// Product is a barcode lookup result normalized for the risk engine.
	Product struct {
		Barcode     string
		Name        string
		Brand       string
		Categories  []string
		Ingredients []string
		Allergens   []string
		Nutrition   *risk.Nutrition
		ServingSize string
	}

	Provider interface {
		LookupBarcode(ctx context.Context, barcode string) (*Product, error)
	}

	Client struct {
		http   *resty.Client
		cache  *lru.Cache[string, *Product]
		logger *zap.Logger
	}

	productResponse struct {
		Status        int    `json:"status"`
		StatusVerbose string `json:"status_verbose"`
		Code          string `json:"code"`
		Product       struct {
			ProductName     string         `json:"product_name"`
			Brands          string         `json:"brands"`
			Categories      string         `json:"categories"`
			IngredientsText string         `json:"ingredients_text"`
			AllergensTags   []string       `json:"allergens_tags"`
			ServingSize     string         `json:"serving_size"`
			Nutriments      map[string]any `json:"nutriments"`
		} `json:"product"`
	}
)

// nutriment key -> normalized macronutrient name (grams per 100g, kcal for calories)
var macroFields = map[string]string{
	"energy-kcal_100g":   "calories",
	"proteins_100g":      "protein",
	"carbohydrates_100g": "carbohydrates",
	"sugars_100g":        "sugar",
	"fat_100g":           "fat",
	"fiber_100g":         "fiber",
}

// Minerals are reported in grams; the knowledge base thresholds are in mg.
var microFields = map[string]string{
	"sodium_100g":     "sodium",
	"potassium_100g":  "potassium",
	"calcium_100g":    "calcium",
	"iron_100g":       "iron",
	"phosphorus_100g": "phosphorus",
}

func NewClient(baseURL string, timeout time.Duration, cacheSize int, logger *zap.Logger) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lru.New[string, *Product](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition cache: %w", err)
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "FoodGuard-Backend/1.0")

	return &Client{http: client, cache: cache, logger: logger}, nil
}

// LookupBarcode fetches a product by barcode. Callers treat any error as
// "nutrition absent" and carry on with what the user supplied.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (*Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, ErrProductNotFound
	}
	if p, ok := c.cache.Get(barcode); ok {
		return p, nil
	}

	var body productResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("code", barcode).
		SetResult(&body).
		Get("/api/v2/product/{code}.json")
	if err != nil {
		c.logger.Warn("Nutrition provider call failed",
			zap.String("barcode", barcode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to call nutrition provider: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound || (resp.IsSuccess() && body.Status == 0) {
		return nil, ErrProductNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("nutrition provider returned status %d", resp.StatusCode())
	}

	product := toProduct(barcode, body)
	c.cache.Add(barcode, product)

	c.logger.Debug("Nutrition provider lookup",
		zap.String("barcode", barcode),
		zap.String("name", product.Name),
		zap.Bool("has_nutrition", !product.Nutrition.Empty()),
	)
	return product, nil
}

func toProduct(barcode string, body productResponse) *Product {
	p := body.Product
	product := &Product{
		Barcode:     barcode,
		Name:        strings.TrimSpace(p.ProductName),
		Brand:       firstOf(p.Brands),
		Categories:  splitList(p.Categories),
		Ingredients: risk.SplitIngredients(p.IngredientsText),
		ServingSize: p.ServingSize,
	}

	for _, tag := range p.AllergensTags {
		// tags look like "en:peanuts"
		if i := strings.IndexByte(tag, ':'); i >= 0 {
			tag = tag[i+1:]
		}
		if tag = strings.TrimSpace(tag); tag != "" {
			product.Allergens = append(product.Allergens, tag)
		}
	}

	nutrition := &risk.Nutrition{
		Macronutrients: map[string]float64{},
		Micronutrients: map[string]float64{},
	}
	for field, name := range macroFields {
		if v, ok := number(p.Nutriments[field]); ok {
			nutrition.Macronutrients[name] = v
		}
	}
	for field, name := range microFields {
		if v, ok := number(p.Nutriments[field]); ok {
			nutrition.Micronutrients[name] = v * 1000
		}
	}
	if !nutrition.Empty() {
		product.Nutrition = nutrition
	}
	return product
}

// number accepts the provider's mix of JSON numbers and numeric strings.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func firstOf(list string) string {
	parts := splitList(list)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func splitList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
