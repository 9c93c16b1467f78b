package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hanikdev/storefront-golang/internal/handlers"
	"github.com/hanikdev/storefront-golang/internal/routes"
	"github.com/hanikdev/storefront-golang/internal/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	if err := store.Seed(context.Background(), st); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return routes.SetupRouter(handlers.New(st), st)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func register(t *testing.T, router *gin.Engine, name, email string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
}

func login(t *testing.T, router *gin.Engine, email, password string) (token, userID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	resp := decode(t, w)
	token, _ = resp["token"].(string)
	if token == "" {
		t.Fatalf("login %s returned no token: %s", email, w.Body.String())
	}
	user, _ := resp["user"].(map[string]any)
	if _, leaked := user["password"]; leaked {
		t.Errorf("login response leaks a password field")
	}
	userID, _ = user["id"].(string)
	return token, userID
}

func TestAuthEndpoints(t *testing.T) {
	router := newTestServer(t)

	register(t, router, "Rana", "rana@test.com")

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Rana Again", "email": "rana@test.com", "password": "password456",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register: status %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "rana@test.com", "password": "wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad credentials: status %d, want 400", w.Code)
	}

	login(t, router, "rana@test.com", "password123")
}

func TestProductEndpointsAndAdminGate(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list products: status %d", w.Code)
	}
	var products []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("seeded catalog has %d products, want 3", len(products))
	}

	newProduct := gin.H{
		"name": "USB-C Hub", "description": "Seven ports.", "price": 40, "stock": 10, "discount": 10,
	}

	if w := doJSON(t, router, http.MethodPost, "/api/products", "", newProduct); w.Code != http.StatusUnauthorized {
		t.Errorf("create without token: status %d, want 401", w.Code)
	}

	register(t, router, "Customer", "customer@test.com")
	customerToken, _ := login(t, router, "customer@test.com", "password123")
	if w := doJSON(t, router, http.MethodPost, "/api/products", customerToken, newProduct); w.Code != http.StatusForbidden {
		t.Errorf("create as customer: status %d, want 403", w.Code)
	}

	adminToken, _ := login(t, router, store.SeedAdminEmail, store.SeedAdminPassword)
	w = doJSON(t, router, http.MethodPost, "/api/products", adminToken, newProduct)
	if w.Code != http.StatusCreated {
		t.Fatalf("create as admin: status %d body %s", w.Code, w.Body.String())
	}
	created := decode(t, w)
	if created["effectivePrice"].(float64) != 36 {
		t.Errorf("effectivePrice = %v, want 36", created["effectivePrice"])
	}
	id := created["id"].(string)

	// Non-numeric price must be rejected at the boundary.
	bad := gin.H{"name": "X", "description": "d", "price": "not-a-number", "stock": 1}
	if w := doJSON(t, router, http.MethodPost, "/api/products", adminToken, bad); w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric price: status %d, want 400", w.Code)
	}

	update := gin.H{"name": "USB-C Hub v2", "description": "Eight ports.", "price": 49.5, "stock": 5}
	w = doJSON(t, router, http.MethodPut, "/api/products/"+id, adminToken, update)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodPut, "/api/products/missing", adminToken, update); w.Code != http.StatusNotFound {
		t.Errorf("update unknown product: status %d, want 404", w.Code)
	}

	if w := doJSON(t, router, http.MethodDelete, "/api/products/"+id, adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("delete: status %d", w.Code)
	}
}

func TestOrderEndpoints(t *testing.T) {
	router := newTestServer(t)

	register(t, router, "Buyer", "buyer@test.com")
	register(t, router, "Other", "other@test.com")
	buyerToken, buyerID := login(t, router, "buyer@test.com", "password123")
	otherToken, _ := login(t, router, "other@test.com", "password123")
	adminToken, _ := login(t, router, store.SeedAdminEmail, store.SeedAdminPassword)

	orderBody := gin.H{
		"products": []gin.H{{"productId": "p1", "name": "Headphones", "price": 10, "quantity": 2}},
		"total":    20,
		"user":     buyerID,
	}
	w := doJSON(t, router, http.MethodPost, "/api/orders", buyerToken, orderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: status %d body %s", w.Code, w.Body.String())
	}
	order := decode(t, w)
	if order["status"] != "pending" {
		t.Errorf("new order status = %v, want pending", order["status"])
	}
	if order["total"].(float64) != 20 {
		t.Errorf("total = %v, want the client-supplied 20", order["total"])
	}
	orderID := order["id"].(string)
	orderPath := fmt.Sprintf("/api/orders/%s", orderID)

	// Owner sees it, another customer does not.
	if w := doJSON(t, router, http.MethodGet, orderPath, buyerToken, nil); w.Code != http.StatusOK {
		t.Errorf("owner get: status %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, orderPath, otherToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("other get: status %d, want 403", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/orders/my", buyerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("my orders: status %d", w.Code)
	}
	var mine []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode my orders: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("my orders returned %d, want 1", len(mine))
	}

	// Buyer confirms the transfer: bank details + status verifying in one update.
	w = doJSON(t, router, http.MethodPut, orderPath, buyerToken, gin.H{
		"status": "verifying",
		"bankDetails": gin.H{
			"accountName": "Buyer B", "selectedBank": "gulf",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("attach bank details: status %d body %s", w.Code, w.Body.String())
	}
	updated := decode(t, w)
	if updated["status"] != "verifying" {
		t.Errorf("status = %v, want verifying", updated["status"])
	}
	if updated["bankDetails"] == nil {
		t.Error("bankDetails missing from update response")
	}

	// Admin-only surfaces.
	if w := doJSON(t, router, http.MethodGet, "/api/orders", buyerToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("list all as customer: status %d, want 403", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/api/orders", adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("list all as admin: status %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPut, orderPath+"/status", buyerToken, gin.H{"status": "processing"}); w.Code != http.StatusForbidden {
		t.Errorf("set status as customer: status %d, want 403", w.Code)
	}

	// Backward transition is a conflict.
	if w := doJSON(t, router, http.MethodPut, orderPath+"/status", adminToken, gin.H{"status": "pending"}); w.Code != http.StatusConflict {
		t.Errorf("backward transition: status %d, want 409", w.Code)
	}

	for _, status := range []string{"processing", "completed"} {
		w = doJSON(t, router, http.MethodPut, orderPath+"/status", adminToken, gin.H{"status": status})
		if w.Code != http.StatusOK {
			t.Fatalf("set status %s: status %d body %s", status, w.Code, w.Body.String())
		}
	}

	if w := doJSON(t, router, http.MethodDelete, orderPath, buyerToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("delete as customer: status %d, want 403", w.Code)
	}
	if w := doJSON(t, router, http.MethodDelete, orderPath, adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("delete as admin: status %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, orderPath, adminToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", w.Code)
	}
}
