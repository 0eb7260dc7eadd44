package ports

import (
	"context"

	"workdeck/internal/core/domain"
)

type ActivityRepository interface {
	// List returns activities newest-first.
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error)
}

type ActivityService interface {
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
}
