package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/harborlight/orphanage-api/internal/dto"
	"github.com/harborlight/orphanage-api/internal/models"
	"github.com/harborlight/orphanage-api/internal/repository"
)

const (
	dashboardUpcomingLimit   = 5
	dashboardEnrollmentLimit = 5
)

// DashboardService produces the aggregated numbers behind the role-scoped
// dashboards, cached in redis for a configurable TTL.
type DashboardService interface {
	GetStats(ctx context.Context, role models.UserRole) (dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	children       repository.ChildRepository
	donors         repository.DonorRepository
	staff          repository.StaffRepository
	donations      repository.DonationRepository
	expenses       repository.ExpenseRepository
	activities     repository.ActivityRepository
	participations repository.ParticipationRepository
	cache          *redis.Client
	cacheTTL       time.Duration
	logger         zerolog.Logger
}

// NewDashboardService builds the dashboard aggregator.
func NewDashboardService(
	childRepo repository.ChildRepository,
	donorRepo repository.DonorRepository,
	staffRepo repository.StaffRepository,
	donationRepo repository.DonationRepository,
	expenseRepo repository.ExpenseRepository,
	activityRepo repository.ActivityRepository,
	participationRepo repository.ParticipationRepository,
	cache *redis.Client,
	ttl time.Duration,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		children:       childRepo,
		donors:         donorRepo,
		staff:          staffRepo,
		donations:      donationRepo,
		expenses:       expenseRepo,
		activities:     activityRepo,
		participations: participationRepo,
		cache:          cache,
		cacheTTL:       ttl,
		logger:         logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) GetStats(ctx context.Context, role models.UserRole) (dto.DashboardStatsResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:stats:%s", role)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardStatsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("role", string(role)).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	response, err := s.buildStats(ctx, role)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

// buildStats assembles the role view. Donors and children see the public
// slice only; admin and staff additionally see financial totals.
func (s *dashboardService) buildStats(ctx context.Context, role models.UserRole) (dto.DashboardStatsResponse, error) {
	var response dto.DashboardStatsResponse

	activeChildren, err := s.children.CountByStatus(ctx, models.ChildStatusActive)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.ActiveChildren = activeChildren

	upcoming, err := s.activities.ListUpcoming(ctx, dashboardUpcomingLimit)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.UpcomingActivities = dto.NewActivityResponseSlice(upcoming)

	if role != models.UserRoleAdmin && role != models.UserRoleStaff {
		return response, nil
	}

	donorCount, err := s.donors.Count(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.TotalDonors = donorCount

	staffCount, err := s.staff.Count(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.TotalStaff = staffCount

	donationTotal, err := s.donations.SumAmount(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.DonationTotal = donationTotal

	expenseTotal, err := s.expenses.SumAmount(ctx)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.ExpenseTotal = expenseTotal

	recent, err := s.participations.ListRecent(ctx, dashboardEnrollmentLimit)
	if err != nil {
		return dto.DashboardStatsResponse{}, err
	}
	response.RecentEnrollments = dto.NewParticipationResponseSlice(recent)

	return response, nil
}
