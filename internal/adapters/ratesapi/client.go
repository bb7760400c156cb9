package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fxconvert/internal/domain"
)

type Client struct {
	http    *http.Client
	baseURL string
}

// FetchRates downloads the rate document for the given base currency.
// The document looks like {"date": "2024-01-01", "usd": {"eur": 0.9, ...}};
// key order of the nested rates object is preserved because the default
// target currency and the selector ordering depend on it.
func (c *Client) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + base + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to create request for currency %q: %w", base, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to execute request for currency %q: %w", base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.RateTable{}, fmt.Errorf("unexpected status code %d for currency %q: %s", resp.StatusCode, base, resp.Status)
	}

	table, err := decodeRateDocument(resp.Body, base)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to decode response for currency %q: %w", base, err)
	}
	return table, nil
}

// decodeRateDocument walks the document token by token so the rates object
// keys come out in document order (a plain map decode would lose it).
func decodeRateDocument(r io.Reader, base string) (domain.RateTable, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return domain.RateTable{}, err
	}

	table := domain.RateTable{Base: base}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return domain.RateTable{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return domain.RateTable{}, fmt.Errorf("unexpected token %v in document", keyTok)
		}

		switch key {
		case "date":
			if err = dec.Decode(&table.Date); err != nil {
				return domain.RateTable{}, err
			}
		case base:
			if table.Codes, table.Rates, err = decodeRatesObject(dec); err != nil {
				return domain.RateTable{}, err
			}
		default:
			var skip json.RawMessage
			if err = dec.Decode(&skip); err != nil {
				return domain.RateTable{}, err
			}
		}
	}

	if table.Rates == nil {
		return domain.RateTable{}, fmt.Errorf("document has no %q rates object", base)
	}
	return table, nil
}

func decodeRatesObject(dec *json.Decoder) ([]string, map[string]float64, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, nil, err
	}

	var codes []string
	rates := make(map[string]float64)
	for dec.More() {
		codeTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		code, ok := codeTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v in rates object", codeTok)
		}

		var rate float64
		if err = dec.Decode(&rate); err != nil {
			return nil, nil, fmt.Errorf("rate for %q is not a number: %w", code, err)
		}
		codes = append(codes, code)
		rates[code] = rate
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return codes, rates, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}
