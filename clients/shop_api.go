package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shoe-store/models"
)

// ShopAPI talks to the remote shop backend that owns pricing, inventory,
// orders, users, and reviews. Calls are sequential and are not retried;
// a failed call is terminal for the current attempt.
type ShopAPI struct {
	baseURL string
	client  *http.Client
}

func NewShopAPI(baseURL string, timeout time.Duration) *ShopAPI {
	return &ShopAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// APIError carries the server-supplied message for a non-2xx response so the
// UI can surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote API request failed with status %d", e.StatusCode)
}

func (a *ShopAPI) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var serverMsg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &serverMsg) == nil {
			apiErr.Message = serverMsg.Message
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (a *ShopAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := a.do(ctx, http.MethodGet, "/api/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (a *ShopAPI) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := a.do(ctx, http.MethodGet, "/api/products/"+productID, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (a *ShopAPI) CreateProduct(ctx context.Context, token string, product models.Product) error {
	return a.do(ctx, http.MethodPost, "/api/products", token, product, nil)
}

func (a *ShopAPI) UpdateProduct(ctx context.Context, token, productID string, product models.Product) error {
	return a.do(ctx, http.MethodPut, "/api/products/"+productID, token, product, nil)
}

func (a *ShopAPI) DeleteProduct(ctx context.Context, token, productID string) error {
	return a.do(ctx, http.MethodDelete, "/api/products/"+productID, token, nil, nil)
}

func (a *ShopAPI) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var result models.LoginResponse
	if err := a.do(ctx, http.MethodPost, "/api/users/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *ShopAPI) GetProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := a.do(ctx, http.MethodGet, "/api/users/", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *ShopAPI) ListUsers(ctx context.Context, token string) ([]models.UserProfile, error) {
	var users []models.UserProfile
	if err := a.do(ctx, http.MethodGet, "/api/users/all", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *ShopAPI) CreateOrder(ctx context.Context, token string, order models.OrderSubmission) error {
	return a.do(ctx, http.MethodPost, "/api/orders", token, order, nil)
}

func (a *ShopAPI) GetUserOrders(ctx context.Context, token string) ([]models.Order, error) {
	var result struct {
		Orders []models.Order `json:"orders"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/orders/user", token, nil, &result); err != nil {
		return nil, err
	}
	return result.Orders, nil
}

type OrdersPage struct {
	Orders     []models.Order `json:"orders"`
	TotalPages int            `json:"totalPages"`
}

func (a *ShopAPI) ListOrders(ctx context.Context, token string, page, limit int) (*OrdersPage, error) {
	var result OrdersPage
	path := fmt.Sprintf("/api/orders/%d/%d", page, limit)
	if err := a.do(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *ShopAPI) UpdateOrder(ctx context.Context, token, orderID string, update models.UpdateOrderRequest) error {
	return a.do(ctx, http.MethodPut, "/api/orders/"+orderID, token, update, nil)
}

func (a *ShopAPI) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := a.do(ctx, http.MethodGet, "/api/reviews", "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
