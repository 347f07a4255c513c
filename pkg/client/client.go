// Package client is the data layer the inventory screens sit on: it talks to
// the products API and turns wire JSON, with its mixed field casing, into
// uniform records.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Product is the normalized view-model record.
type Product struct {
	ID       int
	Name     string
	ImageURL string
	Stock    string
	Catagory string
	Location string
	Status   string
}

// Client calls the products API under one base URL (e.g.
// http://host:3013/api).
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: http.DefaultClient}
}

// APIError is a non-2xx response, carrying the server's error message when
// it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// wireProduct decodes a row as the server sends it. encoding/json matches
// keys case-insensitively, so the tags also pick up lowercase variants; the
// extra category field covers servers that spell the column correctly.
type wireProduct struct {
	ID       int     `json:"ID"`
	Name     *string `json:"Name"`
	Image    *string `json:"Image"`
	Stock    *string `json:"Stock"`
	Catagory *string `json:"Catagory"`
	Category *string `json:"category"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
}

func (c *Client) normalize(w wireProduct) Product {
	catagory := str(w.Catagory)
	if catagory == "" {
		catagory = str(w.Category)
	}
	return Product{
		ID:       w.ID,
		Name:     str(w.Name),
		ImageURL: c.resolveImage(str(w.Image)),
		Stock:    str(w.Stock),
		Catagory: catagory,
		Location: str(w.Location),
		Status:   str(w.Status),
	}
}

// resolveImage keeps absolute URLs and resolves anything else against the
// API base; null becomes "".
func (c *Client) resolveImage(img string) string {
	switch {
	case img == "":
		return ""
	case strings.HasPrefix(img, "http"):
		return img
	default:
		return c.BaseURL + img
	}
}

// List fetches every product.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	var rows []wireProduct
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(rows))
	for _, w := range rows {
		out = append(out, c.normalize(w))
	}
	return out, nil
}

// Get fetches one product by id.
func (c *Client) Get(ctx context.Context, id int) (Product, error) {
	var w wireProduct
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &w); err != nil {
		return Product{}, err
	}
	return c.normalize(w), nil
}

// Fields are the form values of a create or update. Nil fields are left out
// of the request entirely, which on update means "keep the stored value".
type Fields struct {
	Name     *string
	Stock    *string
	Catagory *string
	Location *string
	Status   *string

	// Image, when non-nil, uploads a new image file named ImageName.
	Image     io.Reader
	ImageName string
}

// CreateResult is the server's answer to a create.
type CreateResult struct {
	ProductID int     `json:"productId"`
	Image     *string `json:"image"`
}

// Create submits a new product. Name is required by the server.
func (c *Client) Create(ctx context.Context, f Fields) (CreateResult, error) {
	body, contentType, err := encodeForm(f)
	if err != nil {
		return CreateResult{}, err
	}
	var res CreateResult
	if err := c.do(ctx, http.MethodPost, "/products", contentType, body, &res); err != nil {
		return CreateResult{}, err
	}
	return res, nil
}

// Update submits a partial edit and returns the product's image URL after
// the call (unchanged unless a new image was uploaded).
func (c *Client) Update(ctx context.Context, id int, f Fields) (*string, error) {
	body, contentType, err := encodeForm(f)
	if err != nil {
		return nil, err
	}
	var res struct {
		Image *string `json:"image"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), contentType, body, &res); err != nil {
		return nil, err
	}
	return res.Image, nil
}

// Delete removes a product.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), "", nil, nil)
}

// Filter is the list screen's search box: case-insensitive substring match
// across every display field, done in memory.
func Filter(items []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := []Product{}
	for _, p := range items {
		hay := strings.ToLower(strings.Join([]string{p.Name, p.Catagory, p.Location, p.Status, p.Stock}, " "))
		if strings.Contains(hay, q) {
			out = append(out, p)
		}
	}
	return out
}

// do performs one request. Any non-2xx status or undecodable body comes back
// as an error; there are no retries.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func encodeForm(f Fields) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, val := range map[string]*string{
		"Name":     f.Name,
		"Stock":    f.Stock,
		"Catagory": f.Catagory,
		"location": f.Location,
		"status":   f.Status,
	} {
		if val == nil {
			continue
		}
		if err := w.WriteField(key, *val); err != nil {
			return nil, "", err
		}
	}
	if f.Image != nil {
		part, err := w.CreateFormFile("Image", f.ImageName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
