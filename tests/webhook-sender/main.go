package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80/webhook"
)

// Отправляет на локальный сервис подписанное событие checkout.session.completed.
// С флагом -repeat одно и то же событие доставляется несколько раз, как при ретраях Stripe.
func main() {
	url := flag.String("url", "http://localhost:8080/api/webhooks/stripe", "адрес вебхука")
	secret := flag.String("secret", "", "секрет подписи вебхука (STRIPE_WEBHOOK_SECRET)")
	orderID := flag.String("order", "", "id заказа из метаданных сессии")
	userID := flag.String("user", "", "id покупателя")
	premium := flag.Bool("premium", false, "событие покупки премиума")
	status := flag.String("status", "paid", "payment_status сессии")
	repeat := flag.Int("repeat", 1, "сколько раз доставить событие")
	flag.Parse()

	if *secret == "" || *userID == "" {
		log.Fatal("-secret and -user are required")
	}

	metadata := map[string]string{"userId": *userID}
	if *premium {
		metadata["type"] = "premium"
	} else {
		metadata["orderId"] = *orderID
	}

	sessionID := "cs_test_" + uuid.NewString()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_" + uuid.NewString(),
		"object":      "event",
		"type":        "checkout.session.completed",
		"api_version": "2024-06-20",
		"created":     time.Now().Unix(),
		"data": map[string]any{
			"object": map[string]any{
				"id":             sessionID,
				"object":         "checkout.session",
				"payment_status": *status,
				"payment_intent": "pi_test_" + uuid.NewString(),
				"metadata":       metadata,
			},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	for i := range *repeat {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    *secret,
			Timestamp: time.Now(),
		})

		req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(signed.Payload))
		if err != nil {
			log.Fatal(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Stripe-Signature", signed.Header)

		resp, err := client.Do(req)
		if err != nil {
			fmt.Println("Ошибка запроса:", err)
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("#%d %s -> %s %s\n", i+1, sessionID, resp.Status, bytes.TrimSpace(body))
	}
}
