package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"repair_hub/internal/config"

	"github.com/go-resty/resty/v2"
)

// Client talks to the Supabase REST (PostgREST) and Storage APIs.
type Client struct {
	httpClient *resty.Client
	baseURL    string
}

// apiError is the error payload shared by PostgREST and Storage.
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Error   string `json:"error"`
}

func (e *apiError) text() string {
	switch {
	case e == nil:
		return ""
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}

// NewClient builds a Supabase client authenticated with the project API key.
func NewClient(cfg config.SupabaseConfig) *Client {
	base := strings.TrimSuffix(cfg.URL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetTimeout(15 * time.Second)

	return &Client{httpClient: restyClient, baseURL: base}
}

// SelectByFirm loads every row of table whose firm_id equals firmID, newest
// first by orderColumn, into result (a pointer to a slice).
func (c *Client) SelectByFirm(ctx context.Context, table, firmID, orderColumn string, result any) error {
	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"select":  "*",
			"firm_id": "eq." + firmID,
			"order":   orderColumn + ".desc",
		}).
		SetResult(result).
		SetError(apiErr).
		Get("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return checkResponse(resp, apiErr, "select "+table)
}

// Insert adds row and fails when its primary key already exists.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	return c.write(ctx, table, row, "return=minimal")
}

// Upsert inserts row or merges it into the existing one with the same key.
func (c *Client) Upsert(ctx context.Context, table string, row any) error {
	return c.write(ctx, table, row, "resolution=merge-duplicates,return=minimal")
}

func (c *Client) write(ctx context.Context, table string, row any, prefer string) error {
	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", prefer).
		SetBody(row).
		SetError(apiErr).
		Post("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("write %s: %w", table, err)
	}
	return checkResponse(resp, apiErr, "write "+table)
}

// UploadObject stores data in a public bucket and returns its public URL.
func (c *Client) UploadObject(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(data).
		SetError(apiErr).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, escapePath(objectPath)))
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	if err := checkResponse(resp, apiErr, "upload "+objectPath); err != nil {
		return "", err
	}
	return c.PublicURL(bucket, objectPath), nil
}

func (c *Client) PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, escapePath(objectPath))
}

func checkResponse(resp *resty.Response, apiErr *apiError, op string) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}
	return fmt.Errorf("supabase %s: status=%d, message=%s", op, resp.StatusCode(), apiErr.text())
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
