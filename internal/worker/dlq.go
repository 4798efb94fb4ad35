package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DeadJob wraps a failed job with the error that killed it.
type DeadJob struct {
	Queue    string          `json:"queue"`
	Payload  json.RawMessage `json:"payload"`
	Error    string          `json:"error"`
	FailedAt time.Time       `json:"failed_at"`
}

// SendToDLQ stores a failed job for manual inspection.
// The dead-letter list is capped at 1000 entries.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue string, payload json.RawMessage, cause error) {
	dead := DeadJob{
		Queue:    queue,
		Payload:  payload,
		Error:    cause.Error(),
		FailedAt: time.Now().UTC(),
	}
	encoded, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal dead job")
		return
	}
	dlqKey := queue + ":dlq"
	pipe := rdb.Pipeline()
	pipe.LPush(ctx, dlqKey, encoded)
	pipe.LTrim(ctx, dlqKey, 0, 999)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("failed to push job to DLQ")
	}
}
