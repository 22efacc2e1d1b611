package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/knet"
	"github.com/google/uuid"
)

var (
	baseURL = env("API_URL", "http://localhost:8080")
	secret  = env("KNET_SECRET", "")

	governorates = []string{"capital", "hawalli", "farwaniya", "mubarak_al_kabeer", "ahmadi", "jahra"}
)

type checkoutResponse struct {
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// Places checkouts against a running service and plays the gateway: each
// payment URL is answered with a signed return, captured four times out of
// five. Some submissions are repeated with the same idempotency key.
func main() {
	if secret == "" {
		fmt.Println("KNET_SECRET is required")
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(runCheckout)
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func runCheckout() {
	key := uuid.NewString()
	body := checkoutBody(key)

	res, err := submit(body)
	if err != nil {
		fmt.Println("checkout failed:", err)
		return
	}
	if rand.Intn(4) == 0 {
		if _, err := submit(body); err != nil {
			fmt.Println("replay failed:", err)
		}
	}

	if err := pay(res.PaymentURL); err != nil {
		fmt.Println("payment return failed:", err)
	}
}

func checkoutBody(key string) []byte {
	body := map[string]any{
		"idempotency_key": key,
		"customer": map[string]string{
			"name":  "Load Test",
			"email": fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
			"phone": fmt.Sprintf("+9655%07d", rand.Intn(9999999)),
		},
		"shipping_address": map[string]string{
			"governorate": governorates[rand.Intn(len(governorates))],
			"area":        "Salmiya",
			"block":       fmt.Sprint(1 + rand.Intn(12)),
			"street":      fmt.Sprintf("Street %d", rand.Intn(100)),
			"building":    fmt.Sprint(1 + rand.Intn(50)),
		},
		"payment_method": "knet",
		"items": []map[string]any{{
			"product_id": "apple-iphone-15",
			"name":       "iPhone 15",
			"quantity":   1 + rand.Intn(2),
			"unit_price": "399.500",
		}},
	}
	data, _ := json.Marshal(body)
	return data
}

func submit(body []byte) (checkoutResponse, error) {
	resp, err := http.Post(baseURL+"/api/v1/checkout", "application/json", bytes.NewReader(body))
	if err != nil {
		return checkoutResponse{}, err
	}
	defer resp.Body.Close()

	fmt.Println("POST /api/v1/checkout ->", resp.Status)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return checkoutResponse{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var res checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return checkoutResponse{}, err
	}
	return res, nil
}

func pay(paymentURL string) error {
	u, err := url.Parse(paymentURL)
	if err != nil {
		return err
	}
	q := u.Query()

	status := "CAPTURED"
	if rand.Intn(5) == 0 {
		status = "NOT CAPTURED"
	}

	signed := knet.SignResponse(secret, entities.PaymentResponse{
		Status:        status,
		TransactionID: fmt.Sprintf("TXN-%d", rand.Int63()),
		OrderID:       q.Get("orderId"),
		Amount:        q.Get("amount"),
		MerchantID:    q.Get("merchantId"),
	})

	ret := url.Values{}
	ret.Set("status", signed.Status)
	ret.Set("transactionId", signed.TransactionID)
	ret.Set("orderId", signed.OrderID)
	ret.Set("amount", signed.Amount)
	ret.Set("merchantId", signed.MerchantID)
	ret.Set("signature", signed.Signature)

	resp, err := http.Get(baseURL + "/api/v1/payments/knet/return?" + ret.Encode())
	if err != nil {
		return err
	}
	resp.Body.Close()
	fmt.Println("KNET return", signed.OrderID, status, "->", resp.Status)
	return nil
}
