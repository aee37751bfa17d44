package public

import (
	"context"
	"github.com/androx6/wsj-fx-api/internal/entities"
)

type Service interface {
	FetchCloses(ctx context.Context, req entities.ClosesRequest) (*entities.ClosesResponse, error)
}
