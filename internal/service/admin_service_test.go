package service

import (
	"context"
	"testing"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
)

func TestAdminStatsAggregates(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	pets := newFakePetRepo()
	adoptions := newFakeAdoptionRepo()

	for _, name := range []string{"Ana", "Ben"} {
		if err := users.Create(ctx, &domain.User{Name: name, Email: name + "@example.com"}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	for _, category := range []domain.PetCategory{domain.PetCategoryDog, domain.PetCategoryDog, domain.PetCategoryCat} {
		if err := pets.Create(ctx, &domain.Pet{Name: "pet", Category: category}); err != nil {
			t.Fatalf("seed pet: %v", err)
		}
	}
	for _, status := range []domain.AdoptionStatus{domain.AdoptionStatusPending, domain.AdoptionStatusApproved} {
		if err := adoptions.Create(ctx, &domain.AdoptionRequest{PetName: "pet", Status: status}); err != nil {
			t.Fatalf("seed adoption request: %v", err)
		}
	}

	svc := NewAdminService(users, pets, adoptions)
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalUsers != 2 {
		t.Errorf("total users = %d, want 2", stats.TotalUsers)
	}
	if stats.TodayRegistrations != 2 {
		t.Errorf("today registrations = %d, want 2", stats.TodayRegistrations)
	}
	if stats.TotalPets != 3 {
		t.Errorf("total pets = %d, want 3", stats.TotalPets)
	}
	if stats.PetsByCategory[domain.PetCategoryDog] != 2 || stats.PetsByCategory[domain.PetCategoryCat] != 1 {
		t.Errorf("pets by category = %v, want 2 dogs and 1 cat", stats.PetsByCategory)
	}
	if stats.TotalAdoptionRequests != 2 {
		t.Errorf("total adoption requests = %d, want 2", stats.TotalAdoptionRequests)
	}
	if stats.PendingAdoptionRequests != 1 {
		t.Errorf("pending adoption requests = %d, want 1", stats.PendingAdoptionRequests)
	}
	if stats.RecentAdoptionRequests != 2 {
		t.Errorf("recent adoption requests = %d, want 2", stats.RecentAdoptionRequests)
	}

	recent, err := svc.RecentUsers(ctx, 1)
	if err != nil {
		t.Fatalf("recent users: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("recent users = %d, want 1", len(recent))
	}
}
