package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront-api/internal/domain"
)

func TestGetCartReturnsItemsAndTotal(t *testing.T) {
	deps := defaultDeps()
	deps.CartSvc = &stubCart{items: []domain.CartItem{
		{ID: "l1", ProductID: "p1", Quantity: 2, PriceCentsAtAdd: 1000},
		{ID: "l2", ProductID: "p2", Quantity: 1, PriceCentsAtAdd: 500},
	}}
	router := newTestRouter(deps)

	rec, env := doRequest(t, router, http.MethodGet, "/cart", customerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var data struct {
		Items      []domain.CartItem `json:"items"`
		TotalCents int64             `json:"totalCents"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(data.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(data.Items))
	}
	if data.TotalCents != 2500 {
		t.Fatalf("expected total 2500, got %d", data.TotalCents)
	}
}

func TestGetEmptyCartIsEmptyListNotNull(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, env := doRequest(t, router, http.MethodGet, "/cart", customerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var data struct {
		Items      []domain.CartItem `json:"items"`
		TotalCents int64             `json:"totalCents"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.Items == nil {
		t.Fatal("items should decode to an empty list, not null")
	}
	if data.TotalCents != 0 {
		t.Fatalf("expected total 0, got %d", data.TotalCents)
	}
}

func TestAddCartItem(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, env := doRequest(t, router, http.MethodPost, "/cart/items", customerToken,
		`{"productId":"p1","quantity":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var item domain.CartItem
	if err := json.Unmarshal(env.Data, &item); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if item.ProductID != "p1" || item.Quantity != 2 {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestAddCartItemMissingFields(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPost, "/cart/items", customerToken, `{"quantity":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	deps := defaultDeps()
	deps.CartSvc = &stubCart{addErr: domain.ErrNotFound}
	router := newTestRouter(deps)

	rec, _ := doRequest(t, router, http.MethodPost, "/cart/items", customerToken,
		`{"productId":"missing","quantity":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPut, "/cart/items/l1", customerToken, `{"quantity":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec, _ = doRequest(t, router, http.MethodDelete, "/cart/items/l1", customerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodDelete, "/cart", customerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", rec.Code)
	}
}
