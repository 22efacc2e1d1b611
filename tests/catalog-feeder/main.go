package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Specs struct {
	Display   string `json:"display,omitempty"`
	Camera    string `json:"camera,omitempty"`
	Battery   string `json:"battery,omitempty"`
	Storage   string `json:"storage,omitempty"`
	RAM       string `json:"ram,omitempty"`
	Processor string `json:"processor,omitempty"`
	OS        string `json:"os,omitempty"`
}

type Phone struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       string   `json:"price,omitempty"`
	Specs       Specs    `json:"specs"`
	Features    []string `json:"features,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Available   bool     `json:"availability"`
}

var (
	brands = map[string][]string{
		"Apple":   {"iPhone 15", "iPhone 15 Pro", "iPhone 16"},
		"Samsung": {"Galaxy S24", "Galaxy A55", "Galaxy Z Flip6"},
		"Google":  {"Pixel 8", "Pixel 9 Pro"},
		"Xiaomi":  {"Redmi Note 13", "14 Ultra"},
	}
	brandNames = []string{"Apple", "Samsung", "Google", "Xiaomi"}
	colors     = []string{"Black", "White", "Blue", "Green", "Titanium"}
	features   = []string{"5G", "NFC", "Wireless charging", "IP68", "eSIM"}
)

func pick(s []string, n int) []string {
	out := make([]string, 0, n)
	for _, i := range rand.Perm(len(s))[:n] {
		out = append(out, s[i])
	}
	return out
}

func generatePhone() Phone {
	brand := brandNames[rand.Intn(len(brandNames))]
	models := brands[brand]

	return Phone{
		Name:  models[rand.Intn(len(models))],
		Brand: brand,
		Price: fmt.Sprintf("%d.%03d", 80+rand.Intn(400), rand.Intn(1000)),
		Specs: Specs{
			Display:   fmt.Sprintf("6.%d inches", rand.Intn(9)),
			Camera:    fmt.Sprintf("%dMP", []int{12, 48, 50, 200}[rand.Intn(4)]),
			Battery:   fmt.Sprintf("%d mAh", 3500+rand.Intn(2000)),
			Storage:   fmt.Sprintf("%dGB", []int{128, 256, 512}[rand.Intn(3)]),
			RAM:       fmt.Sprintf("%dGB", []int{6, 8, 12}[rand.Intn(3)]),
			OS:        "Android 14",
			Processor: "Octa-core",
		},
		Features:    pick(features, 1+rand.Intn(3)),
		ReleaseDate: time.Now().AddDate(0, -rand.Intn(24), 0).Format("2006-01"),
		Colors:      pick(colors, 1+rand.Intn(3)),
		Available:   rand.Intn(5) != 0,
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// Publishes random phone records to the catalog feed. Every tenth message
// is a batch and every twentieth is malformed so the DLQ path is exercised.
func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP(env("KAFKA_BROKERS", "localhost:9092")),
		Topic: env("KAFKA_CATALOG_TOPIC", "catalog-imports"),
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-ticker.C:
			var payload any = generatePhone()
			switch {
			case n%20 == 0:
				payload = Phone{Name: "broken"}
			case n%10 == 0:
				payload = []Phone{generatePhone(), generatePhone(), generatePhone()}
			}

			data, err := json.Marshal(payload)
			if err != nil {
				log.Println("failed to marshal phone:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to publish phone:", err)
				continue
			}
			log.Println("catalog message published", n)
		case <-ctx.Done():
			return
		}
	}
}
