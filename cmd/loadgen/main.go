package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	messagev1 "github.com/DuckDuck5000/TradingSystem/internal/domain/message/v1"
)

// generateOrders creates a batch of plausible orders around a base price.
func generateOrders(count int, instruments []string, basePrice, priceSpread float64) []messagev1.OrderMessage {
	orders := make([]messagev1.OrderMessage, count)

	for i := 0; i < count; i++ {
		// Order types: 70% limit, 30% market
		orderType := "limit"
		if rand.Float64() < 0.3 {
			orderType = "market"
		}

		side := "sell"
		if rand.Float64() < 0.5 {
			side = "buy"
		}

		// Quantity between 0.01 and 10.0, 3 decimal places
		qty := 0.01 + rand.Float64()*9.99
		qty = float64(int(qty*1000)) / 1000

		var price float64
		if orderType == "limit" {
			if side == "buy" {
				price = basePrice - rand.Float64()*priceSpread*0.8
			} else {
				price = basePrice + rand.Float64()*priceSpread*0.8
			}
			price = float64(int(price*10)) / 10
			if price <= 0 {
				price = basePrice
			}
		}

		orders[i] = messagev1.OrderMessage{
			OrderID:      uuid.NewString(),
			InstrumentID: instruments[rand.Intn(len(instruments))],
			Side:         side,
			Type:         orderType,
			Price:        decimal.NewFromFloat(price),
			Quantity:     decimal.NewFromFloat(qty),
		}
	}

	return orders
}

func main() {
	var (
		brokers     = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic       = flag.String("topic", "orders", "Kafka topic name")
		file        = flag.String("file", "", "JSON file with orders (optional, generates orders if not provided)")
		delay       = flag.Duration("delay", 100*time.Millisecond, "Delay between sending orders")
		count       = flag.Int("count", 1000, "Number of orders to generate")
		instruments = flag.String("instruments", "BTC-USD,ETH-USD", "Instrument symbols (comma-separated)")
		basePrice   = flag.Float64("base-price", 3945.5, "Base price for orders")
		priceSpread = flag.Float64("price-spread", 200.0, "Price spread range")
	)
	flag.Parse()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:        *topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()

	ctx := context.Background()

	var orders []messagev1.OrderMessage
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read file %s: %v", *file, err)
		}
		if err := json.Unmarshal(data, &orders); err != nil {
			log.Fatalf("Failed to parse JSON from file: %v", err)
		}
		log.Printf("Loaded %d orders from file: %s", len(orders), *file)
	} else {
		log.Printf("Generating %d orders...", *count)
		orders = generateOrders(*count, strings.Split(*instruments, ","), *basePrice, *priceSpread)
	}

	log.Printf("Sending orders to Kafka broker: %s, topic: %s", *brokers, *topic)
	log.Printf("Delay between orders: %v", *delay)

	for i, order := range orders {
		orderJSON, err := json.Marshal(order)
		if err != nil {
			log.Printf("Failed to marshal order %d: %v", i+1, err)
			continue
		}

		msg := kafka.Message{
			Key:   []byte(order.InstrumentID),
			Value: orderJSON,
			Time:  time.Now(),
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("Failed to send order %d (%s): %v", i+1, order.OrderID, err)
			continue
		}

		if (i+1)%100 == 0 || i == len(orders)-1 {
			log.Printf("Sent order %d/%d: %s | %s | %s %s | Qty: %s @ %s",
				i+1, len(orders), order.OrderID, order.InstrumentID,
				order.Type, order.Side, order.Quantity, order.Price)
		}

		if i < len(orders)-1 {
			time.Sleep(*delay)
		}
	}

	log.Printf("Successfully sent all %d orders!", len(orders))

	marketOrders := 0
	limitOrders := 0
	buyOrders := 0
	sellOrders := 0

	for _, order := range orders {
		if order.Type == "market" {
			marketOrders++
		} else {
			limitOrders++
		}
		if order.Side == "buy" {
			buyOrders++
		} else {
			sellOrders++
		}
	}

	log.Printf("--- Summary ---")
	log.Printf("Total Orders: %d", len(orders))
	log.Printf("Market Orders: %d", marketOrders)
	log.Printf("Limit Orders: %d", limitOrders)
	log.Printf("Buy Orders: %d", buyOrders)
	log.Printf("Sell Orders: %d", sellOrders)
}
