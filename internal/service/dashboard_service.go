package service

import (
	"context"
	"encoding/json"
	"obe_backend/internal/model"
	"obe_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService aggregates platform-wide counts for the admin dashboard.
// The aggregate is cached in redis for a short window since it touches
// every major table.
type DashboardService struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

func NewDashboardService(db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{DB: db, Redis: rdb, Logger: logger}
}

type DashboardStats struct {
	Faculties     int64 `json:"faculties"`
	Departments   int64 `json:"departments"`
	Programs      int64 `json:"programs"`
	Courses       int64 `json:"courses"`
	Teachers      int64 `json:"teachers"`
	Students      int64 `json:"students"`
	ExamQuestions int64 `json:"examQuestions"`
	PendingPapers int64 `json:"pendingPapers"`
	Committees    int64 `json:"committees"`
	OpenQuestions int64 `json:"openQuestions"`
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			s.Logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	stats, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		payload, err := json.Marshal(stats)
		if err == nil {
			if err := s.Redis.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				s.Logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *DashboardService) compute() (*DashboardStats, error) {
	stats := &DashboardStats{}
	counts := []struct {
		dst   *int64
		model interface{}
	}{
		{&stats.Faculties, &model.Faculty{}},
		{&stats.Departments, &model.Department{}},
		{&stats.Programs, &model.Program{}},
		{&stats.Courses, &model.Course{}},
		{&stats.Teachers, &model.Teacher{}},
		{&stats.Students, &model.Student{}},
		{&stats.ExamQuestions, &model.ExamQuestion{}},
		{&stats.Committees, &model.ModerationCommittee{}},
		{&stats.OpenQuestions, &model.SupportQuestion{}},
	}
	for _, c := range counts {
		if err := s.DB.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	err := s.DB.Model(&model.ExamQuestion{}).
		Where("status IN ?", []model.ExamQuestionStatus{
			model.StatusSubmitted, model.StatusModerating,
		}).
		Count(&stats.PendingPapers).Error
	if err != nil {
		return nil, err
	}
	monitoring.PendingModerationGauge.Set(float64(stats.PendingPapers))
	return stats, nil
}

// Invalidate drops the cached aggregate. Called after bulk imports.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.Logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
