package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/orderpad/orderpad/internal/models"
)

var (
	// ErrEmptyOrder is returned when a submission is attempted with no items.
	// No network call is made in that case.
	ErrEmptyOrder = errors.New("order is empty")

	// ErrSubmitFailed covers transport failures, malformed responses and
	// success:false answers from the save endpoint. Details are logged at the
	// boundary; callers only need the failure signal.
	ErrSubmitFailed = errors.New("order submission failed")
)

// Confirmation is a successful submission result.
type Confirmation struct {
	Code string
}

// Client talks to the remote catalog and save endpoints.
type Client struct {
	http         *resty.Client
	productsPath string
	savePath     string
	log          *slog.Logger
}

// New creates an API client for the given base URL and endpoint paths.
func New(baseURL, productsPath, savePath string, timeout time.Duration, log *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:         httpClient,
		productsPath: productsPath,
		savePath:     savePath,
		log:          log,
	}
}

// FetchProducts returns the current catalog. Every call re-fetches; nothing is
// cached. Failures of any kind degrade to an empty catalog — callers treat
// empty as the uniform failure signal.
func (c *Client) FetchProducts(ctx context.Context) []models.Product {
	var body models.CatalogResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(c.productsPath)
	if err != nil {
		c.log.Error("catalog fetch failed", "error", err)
		return nil
	}
	if resp.IsError() {
		c.log.Error("catalog fetch failed", "status", resp.StatusCode())
		return nil
	}
	if !body.Success {
		c.log.Error("catalog API reported failure")
		return nil
	}

	return body.Products
}

// SubmitOrder posts the order items to the save endpoint and interprets the
// confirmation. It never propagates a transport error past this boundary.
func (c *Client) SubmitOrder(ctx context.Context, items []models.OrderItem) (*Confirmation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var body models.SaveResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.OrderRequest{Products: items}).
		SetResult(&body).
		Post(c.savePath)
	if err != nil {
		c.log.Error("order submission failed", "error", err)
		return nil, ErrSubmitFailed
	}
	if resp.IsError() {
		c.log.Error("order submission failed", "status", resp.StatusCode())
		return nil, ErrSubmitFailed
	}
	if !body.Success {
		c.log.Error("save API reported failure")
		return nil, ErrSubmitFailed
	}

	c.log.Info("order submitted", "code", body.Code, "items_count", len(items))
	return &Confirmation{Code: body.Code}, nil
}
