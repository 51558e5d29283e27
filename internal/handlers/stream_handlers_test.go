package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"top-sales-tracker/internal/types"
	"top-sales-tracker/internal/view"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func readPage(t *testing.T, conn *websocket.Conn) view.Page {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var page view.Page
	require.NoError(t, conn.ReadJSON(&page))
	return page
}

func TestStream(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	created := env.createSession(t)
	controller, ok := env.registry.Get(uuid.MustParse(created.ID))
	require.True(t, ok)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/sessions/" + created.ID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	initial := readPage(t, conn)
	assert.Equal(t, view.StatusIdle, initial.Status)

	release := make(chan struct{})
	env.keys.EXPECT().APIKey(gomock.Any()).Return("test-api-key", nil)
	env.client.EXPECT().GetTopSales(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, apiKey string, query types.TopSalesQuery) (*types.TopSalesResponse, error) {
			<-release
			return singleSaleResponse(), nil
		})

	_, done := controller.StartQuery(context.Background())

	loading := readPage(t, conn)
	assert.Equal(t, view.StatusLoading, loading.Status)
	assert.Greater(t, loading.Version, initial.Version)

	close(release)
	<-done

	settled := readPage(t, conn)
	assert.Equal(t, view.StatusResults, settled.Status)
	assert.Equal(t, "sale for $1234.50 (0.50 ETH)", settled.TopSale)
	assert.Greater(t, settled.Version, loading.Version)
}

func TestStream_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/sessions/" + uuid.NewString() + "/stream"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
