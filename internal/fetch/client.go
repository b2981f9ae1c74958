// Package fetch pages through a DataTables server-side-processing endpoint,
// discovering the record count with a probe request and issuing sequential
// page requests until the whole dataset is in memory.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/baxromumarov/payplan/internal/payplan"
)

const (
	// DefaultBaseURL is the UT Austin pay-plan DataTables endpoint.
	DefaultBaseURL = "https://utdirect.utexas.edu/apps/hr/payplan/nlogon/profiles/datatable/data/"

	DefaultPageSize = 100

	defaultTimeout = 15 * time.Second
)

// pageResponse mirrors the DataTables server-side-processing reply.
// RecordsTotal is a pointer so a missing field is distinguishable from zero.
type pageResponse struct {
	RecordsTotal *int                `json:"recordsTotal"`
	Data         []payplan.RawRecord `json:"data"`

	raw []byte
}

type Client struct {
	baseURL  string
	pageSize int
	client   *http.Client
}

func NewClient(baseURL string, pageSize int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
	}
}

type pageRequest struct {
	draw   int
	start  int
	length int
}

// buildURL encodes one server-side-processing request: per-column flags for
// the six fixed columns (the two salary-range columns are not orderable
// upstream), ascending order on column 0, and the paging window.
func (c *Client) buildURL(req pageRequest) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("draw", strconv.Itoa(req.draw))
	for i := 0; i < payplan.FieldCount; i++ {
		col := fmt.Sprintf("columns[%d]", i)
		q.Set(col+"[data]", strconv.Itoa(i))
		q.Set(col+"[searchable]", "true")
		orderable := "true"
		if i >= 4 {
			orderable = "false"
		}
		q.Set(col+"[orderable]", orderable)
		q.Set(col+"[search][regex]", "false")
	}
	q.Set("order[0][column]", "0")
	q.Set("order[0][dir]", "asc")
	q.Set("start", strconv.Itoa(req.start))
	q.Set("length", strconv.Itoa(req.length))
	q.Set("search[value]", "")
	q.Set("search[regex]", "false")

	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) getPage(ctx context.Context, req pageRequest) (*pageResponse, error) {
	target, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("read page: %w", err)}
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode page: %w", err)}
	}
	page.raw = body
	return &page, nil
}

// Probe issues a single length-1 request to discover the dataset size.
func (c *Client) Probe(ctx context.Context) (int, error) {
	page, err := c.getPage(ctx, pageRequest{draw: 0, start: 0, length: 1})
	if err != nil {
		return 0, err
	}
	if page.RecordsTotal == nil {
		return 0, &ProtocolError{Missing: "recordsTotal", Body: string(page.raw)}
	}
	return *page.RecordsTotal, nil
}

// FetchAll probes for the record count, then pages through the dataset
// sequentially. Rows are returned in request order. The draw counter tracks
// the page index; the endpoint requires it for response correlation.
// A result shorter than the advertised count is an error, not a partial
// success.
func (c *Client) FetchAll(ctx context.Context) ([]payplan.RawRecord, error) {
	total, err := c.Probe(ctx)
	if err != nil {
		return nil, err
	}

	pageCount := (total + c.pageSize - 1) / c.pageSize
	all := make([]payplan.RawRecord, 0, total)
	for i := 0; i < pageCount; i++ {
		page, err := c.getPage(ctx, pageRequest{
			draw:   i,
			start:  i * c.pageSize,
			length: c.pageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
	}

	if len(all) != total {
		return nil, &FetchError{Err: fmt.Errorf("fetched %d records, endpoint advertised %d", len(all), total)}
	}
	return all, nil
}
