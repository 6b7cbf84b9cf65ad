package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponmalar/snackstore/internal/catalog"
	"github.com/ponmalar/snackstore/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	snap, err := catalog.Load(context.Background(), "")
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(snap, storage.NewMemory()))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["products"])
	assert.ElementsMatch(t, []interface{}{"Savory", "Sweet"}, body["categories"])
}

func TestAddToCartAndCheckoutFlow(t *testing.T) {
	srv := newTestServer(t)

	// add murukku twice; the cart must merge into one line of 500g
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]interface{}{"product_id": "murukku", "quantity": 250})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]interface{}{"product_id": "murukku", "quantity": 250})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	lines := body["lines"].([]interface{})
	require.Len(t, lines, 1)
	line := lines[0].(map[string]interface{})
	assert.Equal(t, float64(500), line["quantity"])

	// murukku is 0.6/g, so 500g subtotals 300
	assert.Equal(t, "300", body["subtotal"])

	// checkout
	resp, order := doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]interface{}{
		"customer": map[string]string{
			"name": "Meena", "phone": "9876543210",
			"address": "12 Car Street", "city": "Madurai", "pincode": "625001",
		},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Ordered", order["status"])
	assert.Equal(t, "300", order["total"])

	// cart cleared afterwards
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["lines"])

	// order listed
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/orders", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
}

func TestOrdersMostRecentFirst(t *testing.T) {
	srv := newTestServer(t)

	placeOne := func(productID string) string {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]interface{}{"product_id": productID})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp, order := doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]interface{}{
			"customer": map[string]string{
				"name": "Meena", "phone": "9876543210",
				"address": "12 Car Street", "city": "Madurai", "pincode": "625001",
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		return order["id"].(string)
	}

	first := placeOne("murukku")
	second := placeOne("mixture")

	_, body := doJSON(t, http.MethodGet, srv.URL+"/orders", nil)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].(map[string]interface{})["id"])
	assert.Equal(t, first, orders[1].(map[string]interface{})["id"])
}

func TestCheckoutEmptyCartConflicts(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]interface{}{
		"customer": map[string]string{
			"name": "Meena", "phone": "9876543210",
			"address": "12 Car Street", "city": "Madurai", "pincode": "625001",
		},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "cart_is_empty", body["error"])
}

func TestCheckoutMissingFields(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]interface{}{"product_id": "murukku"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]interface{}{
		"customer": map[string]string{"name": "Meena"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing_required_fields", body["error"])
	assert.ElementsMatch(t, []interface{}{"phone", "address", "city", "pincode"}, body["missing_fields"])
}

func TestUpdateQuantityBelowFloor(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]interface{}{"product_id": "murukku", "quantity": 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPatch, srv.URL+"/cart/items/murukku", map[string]interface{}{"quantity": 50})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "quantity_below_minimum", body["error"])

	// line unchanged
	_, body = doJSON(t, http.MethodGet, srv.URL+"/cart", nil)
	lines := body["lines"].([]interface{})
	require.Len(t, lines, 1)
	assert.Equal(t, float64(100), lines[0].(map[string]interface{})["quantity"])
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodPatch, srv.URL+"/cart/items/ghost", map[string]interface{}{"quantity": 200})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "item_not_in_cart", body["error"])
}

func TestApplyCoupon(t *testing.T) {
	srv := newTestServer(t)
	// 500g of murukku at 0.6/g = 300 subtotal
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]interface{}{"product_id": "murukku", "quantity": 500})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cart/coupon", map[string]interface{}{"code": "welcome10"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "300", body["subtotal"])
	assert.Equal(t, "30", body["discount"])
	assert.Equal(t, "270", body["total"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/cart/coupon", map[string]interface{}{"code": "BADCODE"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "coupon_not_found", body["error"])
}

func TestAdminGuard(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/admin/products", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "admin_login_required", body["error"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/admin/login", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/admin/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["products"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/admin/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/admin/products", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminEditsDoNotTouchStorefrontCatalog(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/admin/login", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/admin/products/murukku", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the public catalog still serves the deleted product
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/products/murukku", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthLoginWritesProfile(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", map[string]string{
		"email": "meena@example.com", "password": "whatever",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "meena@example.com", body["email"])
	assert.Equal(t, "meena", body["name"], "name defaults to the email local part")
}
