package blockspan

import (
	"context"
	"net/http"
	"strconv"
	"time"

	httpClient "top-sales-tracker/internal/client/http"
	"top-sales-tracker/internal/constants"
	"top-sales-tracker/internal/types"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Client manages communication with the Blockspan NFT API.
type Client struct {
	httpClient *httpClient.HTTPClient
	baseURL    string
}

// NewClient creates a new Blockspan API client. Each call to GetTopSales is exactly one
// outbound request.
func NewClient(baseURL string, options ...httpClient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = constants.BlockspanDefaultBaseURL
	}

	clientOptions := []httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(defaultTimeout),
		httpClient.WithSensitiveHeader(constants.BlockspanAPIKeyHeader),
	}
	clientOptions = append(clientOptions, options...)

	return &Client{
		httpClient: httpClient.NewHTTPClient(clientOptions...),
		baseURL:    baseURL,
	}
}

// GetTopSales fetches the top NFT sales for the query. A rejected key is reported as
// types.ErrAuthenticationFailure; every other failure as types.ErrQueryFailure.
// The HTTP client logs the request; outcomes are logged by the caller.
func (c *Client) GetTopSales(ctx context.Context, apiKey string, query types.TopSalesQuery) (*types.TopSalesResponse, error) {
	if !query.Chain.Valid() || !query.Timeframe.Valid() {
		return nil, errors.Wrapf(types.ErrInvalidSelection, "chain %q timeframe %q", query.Chain, query.Timeframe)
	}

	requestOptions := []httpClient.RequestOption{
		httpClient.WithQueryParam("chain", query.Chain.String()),
		httpClient.WithQueryParam("timeframe", query.Timeframe.String()),
		httpClient.WithQueryParam("exclude_dex", types.FormatExcludeDex(query.ExcludeDex)),
		httpClient.WithQueryParam("include_nft_details", strconv.FormatBool(query.IncludeNFTDetails)),
		httpClient.WithHeader("accept", "application/json"),
		httpClient.WithHeader(constants.BlockspanAPIKeyHeader, apiKey),
	}

	resp, err := c.httpClient.Get(ctx, constants.BlockspanTopSalesPath, requestOptions...)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		var httpErr *httpClient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
			return nil, errors.Wrap(types.ErrAuthenticationFailure, err.Error())
		}

		return nil, errors.Wrap(types.ErrQueryFailure, err.Error())
	}

	var topSales types.TopSalesResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &topSales); err != nil {
		return nil, errors.Wrapf(types.ErrQueryFailure, "failed to decode top sales response: %v", err)
	}

	return &topSales, nil
}

// GetBaseURL returns the API root the client targets
func (c *Client) GetBaseURL() string {
	return c.baseURL
}
