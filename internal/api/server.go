package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	enginev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/engine/v1"
	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
	orderproducerv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order-producer/v1"
	orderv1 "github.com/DuckDuck5000/TradingSystem/internal/domain/order/v1"
	"github.com/DuckDuck5000/TradingSystem/pkg/errors"
	"github.com/DuckDuck5000/TradingSystem/pkg/httplib/healthcheck"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
	"github.com/DuckDuck5000/TradingSystem/pkg/util"
)

// Server exposes the order gateway and the read endpoints over HTTP.
// Submissions are validated synchronously and handed to the orders topic;
// reads go straight to the matcher.
type Server struct {
	matcher  enginev1.Matcher
	producer orderproducerv1.OrderProducer
	router   *mux.Router
	logger   logger.Interface

	httpServer *http.Server
}

// NewServer creates a new API server.
func NewServer(matcher enginev1.Matcher, producer orderproducerv1.OrderProducer, log logger.Interface) *Server {
	s := &Server{
		matcher:  matcher,
		producer: producer,
		router:   mux.NewRouter(),
		logger:   log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()

	// Order submission
	api.HandleFunc("/orders/limit", s.handleSubmitLimitOrder).Methods("POST")
	api.HandleFunc("/orders/market", s.handleSubmitMarketOrder).Methods("POST")
	api.HandleFunc("/orders/{id}/cancel", s.handleCancelOrder).Methods("POST")

	// Read endpoints
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods("GET")
	api.HandleFunc("/orderbook/{instrument}", s.handleGetOrderbook).Methods("GET")
	api.HandleFunc("/trades", s.handleGetTrades).Methods("GET")
}

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() http.Handler {
	var hc healthcheck.HealthCheck
	return hc.Handler(s.requestID(s.router))
}

// Start runs the HTTP server until Stop is called or ListenAndServe fails.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	s.logger.Info("api server starting", logger.Field{Key: "addr", Value: addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestID tags every request with an ID so log lines from one request
// can be correlated.
func (s *Server) requestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = util.NewRequestID()
		}
		w.Header().Set("X-Request-ID", id)
		h.ServeHTTP(w, r.WithContext(util.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) handleSubmitLimitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitLimitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	side, err := messagev1.ParseSide(req.Side)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid order", err)
		return
	}

	order, err := orderv1.NewLimitOrder(req.InstrumentID, side, req.Price, req.Quantity)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid order", err)
		return
	}

	s.submit(w, r, order)
}

func (s *Server) handleSubmitMarketOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitMarketOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	side, err := messagev1.ParseSide(req.Side)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid order", err)
		return
	}

	order, err := orderv1.NewMarketOrder(req.InstrumentID, side, req.Quantity)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid order", err)
		return
	}

	s.submit(w, r, order)
}

// submit publishes a validated order to the orders topic. The order is
// matched asynchronously; the response only acknowledges acceptance.
func (s *Server) submit(w http.ResponseWriter, r *http.Request, order *orderv1.Order) {
	msg := &messagev1.OrderMessage{
		OrderID:      order.ID().String(),
		InstrumentID: order.InstrumentID(),
		Side:         string(order.Side()),
		Type:         string(order.Type()),
		Price:        order.Price(),
		Quantity:     order.Quantity(),
	}

	if err := s.producer.PublishOrder(r.Context(), msg); err != nil {
		s.respondError(w, r, http.StatusServiceUnavailable, "order intake unavailable", err)
		return
	}

	s.respondJSON(w, http.StatusAccepted, SubmitOrderResponse{
		Status:  "accepted",
		OrderID: order.ID().String(),
	})
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid order id", err)
		return
	}

	if err := s.matcher.CancelOrder(r.Context(), id); err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "cancel failed", err)
		return
	}

	s.respondJSON(w, http.StatusOK, CancelOrderResponse{
		Status:  "canceled",
		OrderID: id.String(),
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid order id", err)
		return
	}

	order, err := s.matcher.GetOrder(r.Context(), id)
	if err != nil {
		if errors.IsNotFound(err) {
			s.respondError(w, r, http.StatusNotFound, "order not found", err)
			return
		}
		s.respondError(w, r, http.StatusInternalServerError, "order lookup failed", err)
		return
	}

	s.respondJSON(w, http.StatusOK, orderInfoFrom(order))
}

func (s *Server) handleGetOrderbook(w http.ResponseWriter, r *http.Request) {
	instrument := mux.Vars(r)["instrument"]

	snapshot, err := s.matcher.OrderBookSnapshot(r.Context(), instrument)
	if err != nil {
		if errors.IsNotFound(err) {
			s.respondError(w, r, http.StatusNotFound, "instrument not found", err)
			return
		}
		s.respondError(w, r, http.StatusInternalServerError, "snapshot failed", err)
		return
	}

	s.respondJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleGetTrades(w http.ResponseWriter, r *http.Request) {
	instrument := r.URL.Query().Get("instrument")

	trades := s.matcher.Trades(r.Context(), instrument)

	response := make([]messagev1.TradeMessage, 0, len(trades))
	for i := range trades {
		response = append(response, messagev1.FromTrade(trades[i]))
	}

	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error(errors.TracerFromError(err), logger.Field{Key: "action", Value: "encode_response"})
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), errors.TracerFromError(err),
			logger.Field{Key: "path", Value: r.URL.Path},
		)
	} else {
		s.logger.DebugContext(r.Context(), msg,
			logger.Field{Key: "path", Value: r.URL.Path},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg,
		Message: err.Error(),
	})
}
