package service

import (
	"context"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type ActivityService struct {
	activities ports.ActivityRepository
}

func NewActivityService(activities ports.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

var _ ports.ActivityService = (*ActivityService)(nil)

// ListActivities returns the feed newest-first. Limits outside [1, 200] are
// normalized rather than rejected.
func (s *ActivityService) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultActivityLimit
	}
	if filter.Limit > maxActivityLimit {
		filter.Limit = maxActivityLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.activities.List(ctx, filter)
}
