package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 5 * time.Second

// APIError carries the backend's status code and message for a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the CyberShop REST API. A token source, when set, is
// consulted on every request and attached as a bearer credential.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource func() string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetTokenSource installs the hook the session store uses to gate the
// Authorization header.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ProductParams mirrors the catalog listing query. Zero values are omitted
// from the request; both price bounds must be set for the range to be sent.
type ProductParams struct {
	Page       int
	Limit      int
	SortBy     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Categories string
	Keyword    string
}

func (p ProductParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
	}
	if p.MinPrice != nil && p.MaxPrice != nil {
		v.Set("minPrice", p.MinPrice.String())
		v.Set("maxPrice", p.MaxPrice.String())
	}
	if p.Categories != "" {
		v.Set("categories", p.Categories)
	}
	if p.Keyword != "" {
		v.Set("keyword", p.Keyword)
	}
	return v
}

func (c *Client) ListProducts(ctx context.Context, params ProductParams) (*models.ProductPage, error) {
	var page models.ProductPage
	if err := c.do(ctx, http.MethodGet, "/api/products", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/products", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil, nil)
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/user/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{Username: username, Password: password}
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/user/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user/%d", id), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var resp struct {
		Order *models.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	var resp struct {
		Comment *models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/comments", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Comment, nil
}

func (c *Client) ListComments(ctx context.Context, productID int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/comments/%d", productID), nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
