// Package sheets talks to the spreadsheet gateway: a single HTTP endpoint
// fronting the shop's Google Sheets, addressed by sheet id and guarded by a
// shared bearer token.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

type Client struct {
	httpClient *http.Client
	endpoint   string
	sheetID    string
	token      string
}

func NewClient(endpoint, sheetID, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		sheetID:    sheetID,
		token:      token,
	}
}

func (c *Client) Name() string { return "sheets" }

type inventoryResponse struct {
	Products []map[string]any `json:"products"`
}

// Fetch requests the inventory sheet and normalizes each returned object
// through the shared field-synonym table. An absent products list is an
// empty catalog, not an error; a row that fails normalization is skipped.
func (c *Client) Fetch(ctx context.Context) ([]domain.Product, error) {
	u := fmt.Sprintf("%s?action=getInventory&sheetId=%s", c.endpoint, url.QueryEscape(c.sheetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("inventory fetch: unexpected status %d", resp.StatusCode)
	}

	var body inventoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("inventory fetch: decode: %w", err)
	}

	products := make([]domain.Product, 0, len(body.Products))
	for _, raw := range body.Products {
		row := make(map[string]string, len(raw))
		for k, v := range raw {
			row[k] = stringify(v)
		}
		p, err := domain.FromRow(row)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
