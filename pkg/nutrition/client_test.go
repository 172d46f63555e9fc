package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const biscuitJSON = `{
  "status": 1,
  "code": "8991234567890",
  "product": {
    "product_name": "Glucose Biscuits",
    "brands": "Parle, Parle Products",
    "categories": "Snacks, Biscuits",
    "ingredients_text": "wheat flour, sugar, glucose syrup",
    "allergens_tags": ["en:gluten", "en:milk"],
    "serving_size": "30 g",
    "nutriments": {
      "sugars_100g": 25.4,
      "sodium_100g": "0.32",
      "proteins_100g": 7,
      "energy-kcal_100g": 450
    }
  }
}`

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v2/product/8991234567890.json":
			_, _ = w.Write([]byte(biscuitJSON))
		case "/api/v2/product/00000000.json":
			_, _ = w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":0}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupBarcode_MapsProduct(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c, err := NewClient(srv.URL, time.Second, 8, nil)
	require.NoError(t, err)

	p, err := c.LookupBarcode(context.Background(), "8991234567890")
	require.NoError(t, err)

	assert.Equal(t, "Glucose Biscuits", p.Name)
	assert.Equal(t, "Parle", p.Brand)
	assert.Equal(t, []string{"Snacks", "Biscuits"}, p.Categories)
	assert.Equal(t, []string{"wheat flour", "sugar", "glucose syrup"}, p.Ingredients)
	assert.Equal(t, []string{"gluten", "milk"}, p.Allergens)
	assert.Equal(t, "30 g", p.ServingSize)

	require.NotNil(t, p.Nutrition)
	assert.Equal(t, 25.4, p.Nutrition.Macronutrients["sugar"])
	assert.Equal(t, 7.0, p.Nutrition.Macronutrients["protein"])
	assert.Equal(t, 450.0, p.Nutrition.Macronutrients["calories"])
	assert.InDelta(t, 320.0, p.Nutrition.Micronutrients["sodium"], 0.001)
}

func TestLookupBarcode_Cached(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c, err := NewClient(srv.URL, time.Second, 8, nil)
	require.NoError(t, err)

	_, err = c.LookupBarcode(context.Background(), "8991234567890")
	require.NoError(t, err)
	_, err = c.LookupBarcode(context.Background(), "8991234567890")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLookupBarcode_NotFound(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	c, err := NewClient(srv.URL, time.Second, 8, nil)
	require.NoError(t, err)

	_, err = c.LookupBarcode(context.Background(), "00000000")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = c.LookupBarcode(context.Background(), "12345678")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = c.LookupBarcode(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupBarcode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(biscuitJSON))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, 20*time.Millisecond, 8, nil)
	require.NoError(t, err)
	c.http.SetRetryCount(0)

	p, err := c.LookupBarcode(context.Background(), "8991234567890")
	assert.Error(t, err)
	assert.Nil(t, p)
}
