package resultsfilter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"learnpath/internal/contract"
	"learnpath/internal/dto"
)

const maxBodyBytes = 4 << 20

// Fetcher retrieves recommendation data for a filter state.
type Fetcher interface {
	Fetch(ctx context.Context, state FilterState) (*dto.DataResponse, error)
}

// HTTPFetcher issues GET {base}/data?score=&topic=&time= requests.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client means http.DefaultClient.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// DataURL encodes state as a /data request URL. Topics are comma-joined.
func DataURL(baseURL string, state FilterState) string {
	topics := make([]string, len(state.Topics))
	for i, t := range state.Topics {
		topics[i] = url.QueryEscape(t)
	}
	return fmt.Sprintf("%s/data?score=%s&topic=%s&time=%s",
		strings.TrimRight(baseURL, "/"),
		strconv.FormatFloat(state.Score, 'f', -1, 64),
		strings.Join(topics, ","),
		strconv.FormatFloat(state.Time, 'f', -1, 64),
	)
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, state FilterState) (*dto.DataResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, DataURL(f.baseURL, state), nil)
	if err != nil {
		return nil, fmt.Errorf("build data request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch data: status %d", resp.StatusCode)
	}
	return contract.DecodeData(body)
}
