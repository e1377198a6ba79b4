package job

import (
	"context"

	"go.uber.org/zap"

	"group-exercise-api/internal/repository"
	"group-exercise-api/internal/service"
)

// BadgeReconcileJob sweeps every group and recomputes its badge set from
// live counts. Event-driven recomputation covers the normal paths; this
// job repairs any drift left behind by failed recomputations.
type BadgeReconcileJob struct {
	groupRepo repository.GroupRepository
	badges    service.BadgeService
	logger    *zap.Logger
}

// NewBadgeReconcileJob creates a new BadgeReconcileJob instance
func NewBadgeReconcileJob(
	groupRepo repository.GroupRepository,
	badges service.BadgeService,
	logger *zap.Logger,
) *BadgeReconcileJob {
	return &BadgeReconcileJob{
		groupRepo: groupRepo,
		badges:    badges,
		logger:    logger,
	}
}

// Run executes one full reconciliation sweep. It satisfies cron.Job.
func (j *BadgeReconcileJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting badge reconciliation sweep")

	ids, err := j.groupRepo.ListIDs(ctx)
	if err != nil {
		j.logger.Error("Failed to list groups for badge reconciliation",
			zap.Error(err),
		)
		return
	}

	successCount := 0
	failCount := 0

	for _, id := range ids {
		if _, err := j.badges.Recompute(ctx, id); err != nil {
			j.logger.Error("Failed to reconcile badges",
				zap.Uint("group_id", id),
				zap.Error(err),
			)
			failCount++
			continue
		}
		successCount++
	}

	j.logger.Info("Badge reconciliation sweep completed",
		zap.Int("total", len(ids)),
		zap.Int("success", successCount),
		zap.Int("failed", failCount),
	)
}
