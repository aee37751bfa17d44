package redis

import (
	"context"
	"encoding/json"
	"github.com/androx6/wsj-fx-api/internal/entities"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"time"
)

// Publisher is the subset of the redis client the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type Notifier struct {
	rdb     Publisher
	channel string
}

type BatchEvent struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
	*entities.ClosesResponse
}

func NewNotifier(client Publisher, channel string) *Notifier {
	return &Notifier{
		rdb:     client,
		channel: channel,
	}
}

func InitNotifier(ctx context.Context, options *redis.Options, channel string) (*Notifier, *redis.Client, error) {
	const op = "notifier.redis.InitNotifier"

	redisClient := redis.NewClient(options)

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		_ = redisClient.Close()
		return nil, nil, errors.Wrap(err, op)
	}

	return NewNotifier(redisClient, channel), redisClient, nil
}

func (n *Notifier) PublishBatch(ctx context.Context, resp *entities.ClosesResponse) error {
	const op = "notifier.redis.PublishBatch"

	event := BatchEvent{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		ClosesResponse: resp,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, op)
	}

	receivers, err := n.rdb.Publish(ctx, n.channel, payload).Result()
	if err != nil {
		return errors.Wrap(err, op)
	}

	slog.Debug("batch published", "channel", n.channel, "event_id", event.ID, "receivers", receivers)

	return nil
}
