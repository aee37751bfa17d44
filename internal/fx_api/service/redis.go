package service

import (
	"context"
	"github.com/androx6/wsj-fx-api/internal/entities"
)

type Notifier interface {
	PublishBatch(ctx context.Context, resp *entities.ClosesResponse) error
}
