package blockspan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"top-sales-tracker/internal/logger"
	"top-sales-tracker/internal/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	logger.InitLogger("test")
}

const singleSaleBody = `{"results":[{"transfer_type":"sale","price_usd":"1234.5","price_native":"0.5","price_currency":"ETH","contract_address":"0xabc","id":"1","block_timestamp":"2024-01-01T00:00:00Z"}]}`

func TestClient_GetTopSales_SendsQueryAndKey(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotKey, gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotKey = r.Header.Get("X-API-KEY")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(singleSaleBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	query := types.TopSalesQuery{
		Chain:             types.NetworkArbitrumMain,
		Timeframe:         types.TimeframeSevenDays,
		ExcludeDex:        false,
		IncludeNFTDetails: true,
	}

	resp, err := client.GetTopSales(context.Background(), "test-api-key", query)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	assert.Equal(t, "/v1/nfts/topnfts/", gotPath)
	assert.Equal(t, []string{"arbitrum-main"}, gotQuery["chain"])
	assert.Equal(t, []string{"7_DAYS"}, gotQuery["timeframe"])
	assert.Equal(t, []string{"false"}, gotQuery["exclude_dex"])
	assert.Equal(t, []string{"true"}, gotQuery["include_nft_details"])
	assert.Equal(t, "test-api-key", gotKey)
	assert.Equal(t, "application/json", gotAccept)

	sale := resp.Results[0]
	require.NotNil(t, sale.TransferType)
	assert.Equal(t, "sale", *sale.TransferType)
	assert.True(t, sale.PriceUSD.Valid)
	assert.Equal(t, "1234.5", sale.PriceUSD.Decimal.String())
	assert.Equal(t, "0.5", sale.PriceNative.Decimal.String())
	require.NotNil(t, sale.ContractAddress)
	assert.Equal(t, "0xabc", *sale.ContractAddress)
}

func TestClient_GetTopSales_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unauthorized maps to authentication failure",
			status:  http.StatusUnauthorized,
			body:    `{"message":"invalid key"}`,
			wantErr: types.ErrAuthenticationFailure,
		},
		{
			name:    "server error maps to query failure",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: types.ErrQueryFailure,
		},
		{
			name:    "forbidden is not an authentication failure",
			status:  http.StatusForbidden,
			body:    `{}`,
			wantErr: types.ErrQueryFailure,
		},
		{
			name:    "malformed body maps to query failure",
			status:  http.StatusOK,
			body:    `{"results": [`,
			wantErr: types.ErrQueryFailure,
		},
		{
			name:    "non object record maps to query failure",
			status:  http.StatusOK,
			body:    `{"results":[42]}`,
			wantErr: types.ErrQueryFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.GetTopSales(context.Background(), "key", types.NewTopSalesQuery(types.DefaultSelection()))

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "requests must never be retried")
		})
	}
}

func TestClient_GetTopSales_ToleratesBadFields(t *testing.T) {
	body := `{"results":[
		{"transfer_type":"sale","price_usd":"1234.5","price_native":0.5,"price_currency":"ETH","contract_address":"0xabc","id":"1","block_timestamp":"2024-01-01T00:00:00Z"},
		{"transfer_type":"sale","price_usd":"","price_native":"not-a-number","price_currency":"ETH","contract_address":12345,"id":42,"block_timestamp":null},
		{"transfer_type":true,"price_usd":{"value":1},"id":[1]}
	]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).GetTopSales(context.Background(), "key", types.NewTopSalesQuery(types.DefaultSelection()))
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	first := resp.Results[0]
	assert.Equal(t, "1234.5", first.PriceUSD.Decimal.String())
	require.True(t, first.PriceNative.Valid)
	assert.Equal(t, "0.5", first.PriceNative.Decimal.String())

	second := resp.Results[1]
	assert.False(t, second.PriceUSD.Valid)
	assert.False(t, second.PriceNative.Valid)
	require.NotNil(t, second.ID)
	assert.Equal(t, "42", *second.ID)
	require.NotNil(t, second.ContractAddress)
	assert.Equal(t, "12345", *second.ContractAddress)
	assert.Nil(t, second.BlockTimestamp)
	require.NotNil(t, second.PriceCurrency)
	assert.Equal(t, "ETH", *second.PriceCurrency)

	third := resp.Results[2]
	assert.Nil(t, third.TransferType)
	assert.False(t, third.PriceUSD.Valid)
	assert.Nil(t, third.ID)
	assert.Nil(t, third.PriceCurrency)
}

func TestClient_GetTopSales_FailureLoggedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetTopSales(context.Background(), "key", types.NewTopSalesQuery(types.DefaultSelection()))
	require.Error(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "[REDACTED]", entries[0].ContextMap()["headers"].(http.Header).Get("X-API-KEY"))
}

func TestClient_GetTopSales_EmptyAndMissingResults(t *testing.T) {
	for name, body := range map[string]string{
		"empty results":   `{"results":[]}`,
		"null results":    `{"results":null}`,
		"missing results": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			resp, err := NewClient(server.URL).GetTopSales(context.Background(), "key", types.NewTopSalesQuery(types.DefaultSelection()))
			require.NoError(t, err)
			assert.Empty(t, resp.Results)
		})
	}
}

func TestClient_GetTopSales_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).GetTopSales(context.Background(), "key", types.NewTopSalesQuery(types.DefaultSelection()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrQueryFailure))
}

func TestClient_GetTopSales_RejectsInvalidQuery(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")
	_, err := client.GetTopSales(context.Background(), "key", types.TopSalesQuery{Chain: "solana-main", Timeframe: types.TimeframeOneDay})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidSelection))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://api.blockspan.com", NewClient("").GetBaseURL())
}
