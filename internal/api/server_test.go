package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/book/v1"
	enginev1_mock "github.com/DuckDuck5000/TradingSystem/internal/domain/engine/v1/mock"
	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	orderproducerv1_mock "github.com/DuckDuck5000/TradingSystem/internal/domain/order-producer/v1/mock"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
)

type serverFixture struct {
	ctrl         *gomock.Controller
	mockMatcher  *enginev1_mock.MockMatcher
	mockProducer *orderproducerv1_mock.MockOrderProducer
	server       *Server
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	f := &serverFixture{
		ctrl:         ctrl,
		mockMatcher:  enginev1_mock.NewMockMatcher(ctrl),
		mockProducer: orderproducerv1_mock.NewMockOrderProducer(ctrl),
	}
	f.server = NewServer(f.mockMatcher, f.mockProducer, log)
	return f
}

func (f *serverFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

// Test 1: Limit order submission publishes to the orders topic
func TestServer_SubmitLimitOrder(t *testing.T) {
	f := newServerFixture(t)

	var captured *messagev1.OrderMessage
	f.mockProducer.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msg *messagev1.OrderMessage) error {
			captured = msg
			return nil
		},
	)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/limit", SubmitLimitOrderRequest{
		InstrumentID: "BTC-USD",
		Side:         "buy",
		Price:        decimal.RequireFromString("100.5"),
		Quantity:     decimal.RequireFromString("2"),
	})

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp SubmitOrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.NotEmpty(t, resp.OrderID)

	require.NotNil(t, captured)
	assert.Equal(t, resp.OrderID, captured.OrderID)
	assert.Equal(t, "BTC-USD", captured.InstrumentID)
	assert.Equal(t, "buy", captured.Side)
	assert.Equal(t, "limit", captured.Type)
	assert.True(t, captured.Price.Equal(decimal.RequireFromString("100.5")))
}

// Test 2: Validation failures are rejected before anything is published
func TestServer_SubmitOrderValidation(t *testing.T) {
	f := newServerFixture(t)

	tests := []struct {
		name string
		path string
		body any
	}{
		{
			name: "zero quantity",
			path: "/api/v1/orders/limit",
			body: SubmitLimitOrderRequest{
				InstrumentID: "BTC-USD",
				Side:         "buy",
				Price:        decimal.RequireFromString("100"),
			},
		},
		{
			name: "bad side",
			path: "/api/v1/orders/market",
			body: SubmitMarketOrderRequest{
				InstrumentID: "BTC-USD",
				Side:         "hold",
				Quantity:     decimal.RequireFromString("1"),
			},
		},
		{
			name: "blank instrument",
			path: "/api/v1/orders/market",
			body: SubmitMarketOrderRequest{
				Side:     "buy",
				Quantity: decimal.RequireFromString("1"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// Test 3: Market order submission carries no price
func TestServer_SubmitMarketOrder(t *testing.T) {
	f := newServerFixture(t)

	var captured *messagev1.OrderMessage
	f.mockProducer.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msg *messagev1.OrderMessage) error {
			captured = msg
			return nil
		},
	)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/market", SubmitMarketOrderRequest{
		InstrumentID: "BTC-USD",
		Side:         "sell",
		Quantity:     decimal.RequireFromString("3"),
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "market", captured.Type)
	assert.True(t, captured.Price.IsZero())
}

// Test 4: Intake outage maps to 503
func TestServer_SubmitOrderIntakeDown(t *testing.T) {
	f := newServerFixture(t)

	f.mockProducer.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(
		errors.NewErrorDetails("broker unreachable", string(errors.KafkaPublishError), ""),
	)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/market", SubmitMarketOrderRequest{
		InstrumentID: "BTC-USD",
		Side:         "buy",
		Quantity:     decimal.RequireFromString("1"),
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// Test 5: Cancel endpoint
func TestServer_CancelOrder(t *testing.T) {
	f := newServerFixture(t)

	id := uuid.New()
	f.mockMatcher.EXPECT().CancelOrder(gomock.Any(), id).Return(nil)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/"+id.String()+"/cancel", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CancelOrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "canceled", resp.Status)
	assert.Equal(t, id.String(), resp.OrderID)
}

// Test 6: Malformed order id
func TestServer_CancelOrderBadID(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Test 7: Order lookup
func TestServer_GetOrder(t *testing.T) {
	f := newServerFixture(t)

	order, err := orderv1.NewLimitOrder("BTC-USD", orderv1.SideBuy,
		decimal.RequireFromString("100"), decimal.RequireFromString("2"))
	require.NoError(t, err)

	f.mockMatcher.EXPECT().GetOrder(gomock.Any(), order.ID()).Return(*order, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/orders/"+order.ID().String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OrderInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, order.ID().String(), resp.OrderID)
	assert.Equal(t, "new", resp.Status)
	assert.True(t, resp.Remaining.Equal(decimal.RequireFromString("2")))
}

// Test 8: Unknown order id maps to 404
func TestServer_GetOrderNotFound(t *testing.T) {
	f := newServerFixture(t)

	id := uuid.New()
	f.mockMatcher.EXPECT().GetOrder(gomock.Any(), id).Return(orderv1.Order{},
		errors.NewErrorDetails("order not found", string(errors.OrderNotFoundError), "orderID"),
	)

	rec := f.do(t, http.MethodGet, "/api/v1/orders/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Test 9: Orderbook snapshot
func TestServer_GetOrderbook(t *testing.T) {
	f := newServerFixture(t)

	f.mockMatcher.EXPECT().OrderBookSnapshot(gomock.Any(), "BTC-USD").Return(&bookv1.Snapshot{
		InstrumentID: "BTC-USD",
		Bids: []bookv1.LevelSnapshot{
			{Price: decimal.RequireFromString("100"), Quantity: decimal.RequireFromString("5")},
		},
		Asks: []bookv1.LevelSnapshot{},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/orderbook/BTC-USD", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp bookv1.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "BTC-USD", resp.InstrumentID)
	require.Len(t, resp.Bids, 1)
	assert.True(t, resp.Bids[0].Quantity.Equal(decimal.RequireFromString("5")))
}

// Test 10: Unknown instrument maps to 404
func TestServer_GetOrderbookNotFound(t *testing.T) {
	f := newServerFixture(t)

	f.mockMatcher.EXPECT().OrderBookSnapshot(gomock.Any(), "NOPE-USD").Return(nil,
		errors.NewErrorDetails("instrument not found", string(errors.InstrumentNotFoundError), "instrumentID"),
	)

	rec := f.do(t, http.MethodGet, "/api/v1/orderbook/NOPE-USD", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Test 11: Trades endpoint passes the instrument filter through
func TestServer_GetTrades(t *testing.T) {
	f := newServerFixture(t)

	trade := orderv1.NewTrade(uuid.New(), uuid.New(), "BTC-USD",
		decimal.RequireFromString("100"), decimal.RequireFromString("1"))
	f.mockMatcher.EXPECT().Trades(gomock.Any(), "BTC-USD").Return([]orderv1.Trade{trade})

	rec := f.do(t, http.MethodGet, "/api/v1/trades?instrument=BTC-USD", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []messagev1.TradeMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, trade.TradeID.String(), resp[0].TradeID)
	assert.Equal(t, "BTC-USD", resp[0].InstrumentID)
}

// Test 12: Health endpoint bypasses the API routes
func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// Test 13: Responses carry a request id header
func TestServer_RequestIDHeader(t *testing.T) {
	f := newServerFixture(t)

	f.mockMatcher.EXPECT().Trades(gomock.Any(), "").Return([]orderv1.Trade{})

	rec := f.do(t, http.MethodGet, "/api/v1/trades", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
