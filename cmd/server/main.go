package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DuckDuck5000/TradingSystem/internal/api"
	app "github.com/DuckDuck5000/TradingSystem/internal/app/engine"
	"github.com/DuckDuck5000/TradingSystem/internal/usecase/broadcast"
	matching "github.com/DuckDuck5000/TradingSystem/internal/usecase/engine"
	orderproducer "github.com/DuckDuck5000/TradingSystem/internal/usecase/order-producer"
	orderreader "github.com/DuckDuck5000/TradingSystem/internal/usecase/order-reader"
	tradepublisher "github.com/DuckDuck5000/TradingSystem/internal/usecase/trade-publisher"
	"github.com/DuckDuck5000/TradingSystem/pkg/config"
	"github.com/DuckDuck5000/TradingSystem/pkg/logger"
	"github.com/DuckDuck5000/TradingSystem/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = cfg.Redis.Addrs
	redisConfig.Username = cfg.Redis.Username
	redisConfig.Password = cfg.Redis.Password
	redisConfig.DB = cfg.Redis.DB
	rclient := redis.NewClient(log, redisConfig)

	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	remainder, err := matching.ParseRemainderPolicy(cfg.Engine.MarketRemainder)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "parse_remainder_policy",
		})
		return
	}

	// Initialize components
	matcher := matching.New(log, &matching.Options{MarketRemainder: remainder})
	oReader := orderreader.NewReader(cfg.OrderTopic, log)
	oProducer := orderproducer.NewProducer(cfg.OrderTopic, log)
	tPublisher := tradepublisher.NewPublisher(cfg.TradeTopic, log)
	broadcaster := broadcast.NewBroadcaster(rclient, cfg.Redis.Channel, log)

	engine := app.NewEngine(matcher, oReader, tPublisher, broadcaster, log)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	server := api.NewServer(matcher, oProducer, log)
	go func() {
		if err := server.Start(cfg.HTTPAddr); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "start_api_server",
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	log.Info("matching system started",
		logger.Field{Key: "httpAddr", Value: cfg.HTTPAddr},
		logger.Field{Key: "orderTopic", Value: cfg.OrderTopic.Topic},
		logger.Field{Key: "tradeTopic", Value: cfg.TradeTopic.Topic},
	)

	sig := <-sigChan
	log.Info("received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_api_server",
		})
	}

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	if err := oProducer.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_order_producer",
		})
	}

	if err := tPublisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_trade_publisher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("matching system shutdown complete")
}
