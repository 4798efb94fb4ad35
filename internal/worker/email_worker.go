package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"storefront/internal/infra"
)

// EmailJobPayload describes one outbound message.
// AttachmentPath is optional (order receipt PDFs).
type EmailJobPayload struct {
	ToEmail        string `json:"to_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	AttachmentPath string `json:"attachment_path,omitempty"`
}

// EmailWorker sends queued messages through the SMTP mailer,
// guarded by a circuit breaker. Failed jobs go to the DLQ; no retries.
type EmailWorker struct {
	mailer  *infra.Mailer
	breaker *infra.CircuitBreaker
}

func NewEmailWorker(mailer *infra.Mailer, breaker *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, breaker: breaker}
}

func (w *EmailWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("invalid email job payload")
		return
	}

	err := w.breaker.Execute(func() error {
		return w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body, payload.AttachmentPath)
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email delivery failed")
		SendToDLQ(ctx, rdb, QueueEmail, raw, err)
		return
	}
	log.Info().Str("to", payload.ToEmail).Str("subject", payload.Subject).Msg("email sent")
}
