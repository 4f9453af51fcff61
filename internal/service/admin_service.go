package service

import (
	"context"
	"time"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
)

// AdminService aggregates dashboard statistics.
type AdminService struct {
	users     repository.UserRepository
	pets      repository.PetRepository
	adoptions repository.AdoptionRepository
}

// DashboardStats is the admin overview aggregate.
type DashboardStats struct {
	TotalUsers              int
	TodayRegistrations      int
	TotalPets               int
	PetsByCategory          map[domain.PetCategory]int
	TotalAdoptionRequests   int
	PendingAdoptionRequests int
	RecentAdoptionRequests  int
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository, pets repository.PetRepository, adoptions repository.AdoptionRepository) *AdminService {
	return &AdminService{users: users, pets: pets, adoptions: adoptions}
}

// Stats collects counters for the dashboard.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayRegistrations, err := s.users.CountRegisteredSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}

	totalPets, err := s.pets.Count(ctx)
	if err != nil {
		return nil, err
	}
	petsByCategory, err := s.pets.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	totalAdoptions, err := s.adoptions.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingAdoptions, err := s.adoptions.CountByStatus(ctx, domain.AdoptionStatusPending)
	if err != nil {
		return nil, err
	}
	recentAdoptions, err := s.adoptions.CountCreatedSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:              totalUsers,
		TodayRegistrations:      todayRegistrations,
		TotalPets:               totalPets,
		PetsByCategory:          petsByCategory,
		TotalAdoptionRequests:   totalAdoptions,
		PendingAdoptionRequests: pendingAdoptions,
		RecentAdoptionRequests:  recentAdoptions,
	}, nil
}

// RecentUsers returns the latest registrations.
func (s *AdminService) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	return s.users.ListRecent(ctx, limit)
}

// RecentAdoptionRequests returns the latest adoption applications.
func (s *AdminService) RecentAdoptionRequests(ctx context.Context, limit int) ([]domain.AdoptionRequest, error) {
	return s.adoptions.ListRecent(ctx, limit)
}
