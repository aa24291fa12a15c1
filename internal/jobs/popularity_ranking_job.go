package jobs

import (
	"context"
	"log/slog"

	"dishly/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type FoodItemRanker interface {
	Handle(ctx context.Context, cmd commands.RankFoodItemsCommand) (int, error)
}

// PopularityRankingJob raises food item popularity scores to the quantities
// delivered so far.
type PopularityRankingJob struct {
	ranker   FoodItemRanker
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPopularityRankingJob creates a job that ranks food items on every tick
// of schedule, a six-field cron expression.
func NewPopularityRankingJob(ranker FoodItemRanker, schedule string, logger *slog.Logger) *PopularityRankingJob {
	return &PopularityRankingJob{
		ranker:   ranker,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "popularity_ranking_job"),
	}
}

// Start schedules the ranking.
func (j *PopularityRankingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Popularity ranking job started", "schedule", j.schedule)
	return nil
}

// Run performs one ranking pass.
func (j *PopularityRankingJob) Run(ctx context.Context) {
	raised, err := j.ranker.Handle(ctx, commands.NewRankFoodItemsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Popularity ranking job failed", "error", err)
		return
	}

	if raised > 0 {
		j.logger.InfoContext(ctx, "Popularity scores raised", "count", raised)
	}
}

// Stop stops the ranking job.
func (j *PopularityRankingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Popularity ranking job stopped")
}
