package dummyjson

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/logging"
	"github.com/tidwall/gjson"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 5 << 20

// Client fetches supplemental product listings from a DummyJSON-style API
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
	debug      bool
}

// NewClient creates a new product API client. A limit of 0 or less leaves the
// page size to the server.
func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		limit:   limit,
	}
}

// SetDebug enables logging of raw response bodies
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchProducts issues a single listing request and extracts the products
// array. There is no retry; callers treat any error as an empty supplement.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.RemoteRecord, error) {
	log := logging.Component("dummyjson")

	reqURL, err := c.listURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteFetchFailure, err)
	}
	log.WithField("url", reqURL).Debug("fetching supplemental products")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ChemAware/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteFetchFailure, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxBodySize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrRemoteFetchFailure, err)
	}
	if c.debug {
		log.Debugf("response status=%d body=%s", resp.StatusCode, truncate(string(body), 512))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteFetchFailure, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON body", domain.ErrRemoteFetchFailure)
	}

	records := ExtractRecords(body)
	log.Infof("fetched %d supplemental products", len(records))
	return records, nil
}

// ExtractRecords pulls the loosely-typed product rows out of a listing body.
// Rows without an id are skipped.
func ExtractRecords(body []byte) []domain.RemoteRecord {
	rows := gjson.GetBytes(body, "products").Array()
	records := make([]domain.RemoteRecord, 0, len(rows))
	for _, row := range rows {
		if !row.IsObject() {
			continue
		}
		id := row.Get("id")
		if !id.Exists() || id.String() == "" {
			continue
		}
		rec := domain.RemoteRecord{
			ID:          id.String(),
			Title:       row.Get("title").String(),
			Category:    row.Get("category").String(),
			Brand:       row.Get("brand").String(),
			Description: row.Get("description").String(),
		}
		for _, img := range row.Get("images").Array() {
			if s := img.String(); s != "" {
				rec.Images = append(rec.Images, s)
			}
		}
		records = append(records, rec)
	}
	return records
}

func (c *Client) listURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if c.limit > 0 {
		q := u.Query()
		q.Set("limit", strconv.Itoa(c.limit))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
