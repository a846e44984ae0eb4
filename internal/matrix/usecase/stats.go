package usecase

import (
	"context"
	"time"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/model"
)

const statsWindowDays = 30

// Stats aggregates completion activity over the trailing 30 days and compares
// it against the 30 days before that to derive the trend.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (matrix.StatsOutput, error) {
	today := uc.now()
	windowStart := today.AddDate(0, 0, -(statsWindowDays - 1))
	priorStart := windowStart.AddDate(0, 0, -statsWindowDays)

	done := uc.beginSync()
	tasks, err := uc.taskRepo.GetTasksBetween(ctx, sc.UserID, dayKey(priorStart), dayKey(today))
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "stats load failed: %v", err)
		return matrix.StatsOutput{}, err
	}

	windowStartKey := dayKey(windowStart)
	var recentCompleted, priorCompleted, totalMinutes int
	for _, task := range tasks {
		if !task.Completed {
			continue
		}
		if task.Date >= windowStartKey {
			recentCompleted++
			if task.DurationMinutes != nil {
				totalMinutes += *task.DurationMinutes
			}
		} else {
			priorCompleted++
		}
	}

	out := matrix.StatsOutput{
		CompletedTasksLast30Days: recentCompleted,
		TotalMinutesSpent:        totalMinutes,
		AverageTasksPerDay:       float64(recentCompleted) / statsWindowDays,
		Trend:                    trend(recentCompleted, priorCompleted),
	}
	if totalMinutes > 0 {
		out.TasksPerMinute = float64(recentCompleted) / float64(totalMinutes)
	}
	return out, nil
}

func trend(recent, prior int) string {
	switch {
	case recent > prior:
		return matrix.TrendUp
	case recent < prior:
		return matrix.TrendDown
	default:
		return matrix.TrendStable
	}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
