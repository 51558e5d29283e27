package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockTopSalesClientForTest creates a new mock TopSalesClient for testing
func NewMockTopSalesClientForTest(t *testing.T) *MockTopSalesClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTopSalesClient(ctrl)
}

// NewMockAPIKeyProviderForTest creates a new mock APIKeyProvider for testing
func NewMockAPIKeyProviderForTest(t *testing.T) *MockAPIKeyProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAPIKeyProvider(ctrl)
}
