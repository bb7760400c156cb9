package ratesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "date": "2024-01-01",
            "usd": {"eur": 0.9, "gbp": 0.8}
        }`))
	}))
	t.Cleanup(srv.Close)

	baseURL := srv.URL + "/v1/currencies/"
	c := NewClient(srv.Client(), baseURL)

	table, err := c.FetchRates(context.Background(), "usd")
	require.NoError(t, err)
	require.Equal(t, "/v1/currencies/usd.json", gotPath)
	require.Equal(t, "usd", table.Base)
	require.Equal(t, "2024-01-01", table.Date)
	require.Equal(t, []string{"eur", "gbp"}, table.Codes)
	require.InDelta(t, 0.9, table.Rates["eur"], 1e-9)
	require.InDelta(t, 0.8, table.Rates["gbp"], 1e-9)
}

func TestClient_PreservesDocumentOrder(t *testing.T) {
	// deliberately non-lexicographic key order
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date": "2024-01-01", "usd": {"zar": 18.5, "aed": 3.67, "mxn": 17.1}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	table, err := c.FetchRates(context.Background(), "usd")
	require.NoError(t, err)
	require.Equal(t, []string{"zar", "aed", "mxn"}, table.Codes)
	require.Equal(t, "zar", table.DefaultTarget())
}

func TestClient_SkipsUnknownTopLevelFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"meta": {"source": "mirror"}, "date": "2024-01-01", "usd": {"eur": 0.9}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	table, err := c.FetchRates(context.Background(), "usd")
	require.NoError(t, err)
	require.Equal(t, []string{"eur"}, table.Codes)
}

func TestClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background(), "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 500")
	require.Contains(t, err.Error(), "usd")
}

func TestClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background(), "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response for currency \"usd\"")
}

func TestClient_MissingRatesObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"date": "2024-01-01"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background(), "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "document has no \"usd\" rates object")
}

func TestClient_NonNumericRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"usd": {"eur": "not-a-number"}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.FetchRates(context.Background(), "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate for \"eur\" is not a number")
}

func TestClient_BaseURLParseError(t *testing.T) {
	c := NewClient(&http.Client{}, "http://::1]")
	_, err := c.FetchRates(context.Background(), "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse base URL")
}
