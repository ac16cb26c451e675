package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const providerName = "coingecko"

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	DefaultPerPage = 100

	coinsEndpoint = "coins"
	apiKeyHeader  = "x-cg-demo-api-key"
)

// CoinGecko is a client for the public CoinGecko API.
type CoinGecko struct {
	client  *http.Client
	baseURL string
	apiKey  string
	perPage int
}

// NewCoinGecko creates a new CoinGecko instance. Empty baseURL and
// non positive perPage fall back to the defaults.
func NewCoinGecko(baseURL, apiKey string, perPage int) *CoinGecko {
	const defaultTimeout = time.Second * 10
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	client := &http.Client{
		Timeout: defaultTimeout,
	}
	return &CoinGecko{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		perPage: perPage,
	}
}

func (cg *CoinGecko) Name() string {
	return providerName
}

// GetAllCoins returns one page of coins with their market data.
func (cg *CoinGecko) GetAllCoins(ctx context.Context) ([]Coin, error) {
	url := cg.baseURL + "/" + coinsEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	if cg.apiKey != "" {
		req.Header.Add(apiKeyHeader, cg.apiKey)
	}
	q := req.URL.Query()
	q.Add("localization", "false")
	q.Add("sparkline", "false")
	q.Add("per_page", strconv.Itoa(cg.perPage))
	q.Add("page", "1")
	req.URL.RawQuery = q.Encode()

	rsp, err := cg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", providerName, err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, rsp.Status)
	}
	respBody, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, err
	}

	var coins []Coin
	if err := json.Unmarshal(respBody, &coins); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for i, c := range coins {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: coin at index %d has no id", ErrMalformedResponse, i)
		}
	}
	return coins, nil
}
