package interfaces

import (
	"context"

	"top-sales-tracker/internal/types"
)

//go:generate mockgen -destination=../mocks/mock_clients.go -package=mocks top-sales-tracker/internal/interfaces TopSalesClient,APIKeyProvider

// TopSalesClient queries the remote marketplace analytics service for the highest value transfers
type TopSalesClient interface {
	GetTopSales(ctx context.Context, apiKey string, query types.TopSalesQuery) (*types.TopSalesResponse, error)
}

// APIKeyProvider supplies the API key at call time
type APIKeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// KeyInvalidator is implemented by APIKeyProviders that cache the key. Invalidate drops
// the cached value after the remote service rejects it.
type KeyInvalidator interface {
	Invalidate()
}
