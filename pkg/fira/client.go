// Package fira is a thin client for the FIRA webshop order API.
package fira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/oauth2"
)

var log = logging.MustGetLogger("fira")

const (
	DefaultBaseURL    = "https://app.fira.finance"
	DefaultAuthHeader = "FIRA-Api-Key"

	AuthSchemeBearer = "bearer"
	AuthSchemeHeader = "header"

	customOrderPath = "/api/v1/webshop/order/custom"
	orderPath       = "/api/v1/webshop/order/"
)

// Config holds the client configuration
type Config struct {
	BaseURL    string
	APIKey     string
	AuthScheme string // "bearer" or "header"
	AuthHeader string // header name used by the "header" scheme
	Timeout    time.Duration
}

// InvoiceResult is FIRA's answer normalized to the fields callers use.
type InvoiceResult struct {
	ExternalID    string `json:"external_id"`
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
	PDFURL        string `json:"pdf_url"`
	RawResponse   string `json:"raw_response"`
}

type orderResponse struct {
	ID             json.RawMessage `json:"id"`
	WebshopOrderID json.RawMessage `json:"webshopOrderId"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	Status         string          `json:"status"`
	PDFURL         string          `json:"pdfUrl"`
}

// Client talks to FIRA. A client without an API key never touches the network.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new FIRA client
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(cfg),
		},
	}
}

// newTransport attaches the credential. Bearer mode goes through an
// oauth2 static token source; header mode sets a single custom header.
func newTransport(cfg Config) http.RoundTripper {
	if cfg.APIKey == "" {
		return http.DefaultTransport
	}

	if strings.EqualFold(cfg.AuthScheme, AuthSchemeBearer) {
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey}),
			Base:   http.DefaultTransport,
		}
	}

	header := cfg.AuthHeader
	if header == "" {
		header = DefaultAuthHeader
	}
	return &headerTransport{
		header: header,
		value:  cfg.APIKey,
		base:   http.DefaultTransport,
	}
}

type headerTransport struct {
	header string
	value  string
	base   http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set(t.header, t.value)
	return t.base.RoundTrip(r)
}

// IsConfigured checks if a credential is present
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// SubmitOrder sends order to FIRA. Without a credential it logs a warning
// and returns (nil, nil). Any failure is returned as *IntegrationError and
// is not retried.
func (c *Client) SubmitOrder(ctx context.Context, order *WebshopOrder) (*InvoiceResult, error) {
	if !c.IsConfigured() {
		log.Warningf("FIRA API key not set, skipping order %s", order.WebshopOrderID)
		return nil, nil
	}

	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+customOrderPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("FIRA order %s request failed: %v", order.WebshopOrderID, err)
		return nil, &IntegrationError{Op: "submit order", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &IntegrationError{Op: "submit order", StatusCode: resp.StatusCode, Err: err}
	}

	if !isSuccess(resp.StatusCode) {
		log.Errorf("FIRA order %s returned status %d", order.WebshopOrderID, resp.StatusCode)
		return nil, &IntegrationError{
			Op:         "submit order",
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	result, err := decodeResult(raw)
	if err != nil {
		log.Warningf("FIRA order %s accepted but response was not understood: %v", order.WebshopOrderID, err)
		result = &InvoiceResult{RawResponse: string(raw)}
	}

	log.Infof("FIRA order %s submitted, external id %q, status %q",
		order.WebshopOrderID, result.ExternalID, result.Status)

	return result, nil
}

// GetOrderStatus fetches an order previously sent to FIRA. The lookup is
// advisory: it returns nil on any failure and never an error.
func (c *Client) GetOrderStatus(ctx context.Context, id string) *InvoiceResult {
	if !c.IsConfigured() {
		log.Warning("FIRA API key not set, skipping status lookup")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+orderPath+url.PathEscape(id), nil)
	if err != nil {
		log.Warningf("FIRA status %s: %v", id, err)
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warningf("FIRA status %s request failed: %v", id, err)
		return nil
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		log.Warningf("FIRA status %s returned status %d", id, resp.StatusCode)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warningf("FIRA status %s: %v", id, err)
		return nil
	}

	result, err := decodeResult(raw)
	if err != nil {
		log.Warningf("FIRA status %s: %v", id, err)
		return nil
	}
	if result.ExternalID == "" {
		result.ExternalID = id
	}
	return result
}

func decodeResult(raw []byte) (*InvoiceResult, error) {
	var body orderResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	externalID := rawString(body.ID)
	if externalID == "" {
		externalID = rawString(body.WebshopOrderID)
	}

	return &InvoiceResult{
		ExternalID:    externalID,
		InvoiceNumber: body.InvoiceNumber,
		Status:        body.Status,
		PDFURL:        body.PDFURL,
		RawResponse:   string(raw),
	}, nil
}

// rawString accepts both "123" and 123 for identifier fields.
func rawString(v json.RawMessage) string {
	if len(v) == 0 || string(v) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
