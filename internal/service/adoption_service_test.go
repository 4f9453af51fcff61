package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/pet-adoption-service/internal/domain"
	"github.com/spec-kit/pet-adoption-service/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

type fakePetRepo struct {
	pets map[string]*domain.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[string]*domain.Pet{}}
}

func (r *fakePetRepo) Create(_ context.Context, pet *domain.Pet) error {
	pet.ID = uuid.NewString()
	pet.CreatedAt = time.Now()
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *fakePetRepo) GetByID(_ context.Context, id string) (*domain.Pet, error) {
	pet, ok := r.pets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *pet
	return &copied, nil
}

func (r *fakePetRepo) List(_ context.Context, _ repository.PetFilter) ([]domain.Pet, error) {
	var result []domain.Pet
	for _, pet := range r.pets {
		result = append(result, *pet)
	}
	return result, nil
}

func (r *fakePetRepo) Count(_ context.Context) (int, error) {
	return len(r.pets), nil
}

func (r *fakePetRepo) CountByCategory(_ context.Context) (map[domain.PetCategory]int, error) {
	result := map[domain.PetCategory]int{}
	for _, pet := range r.pets {
		result[pet.Category]++
	}
	return result, nil
}

type fakeAdoptionRepo struct {
	requests map[string]*domain.AdoptionRequest
}

func newFakeAdoptionRepo() *fakeAdoptionRepo {
	return &fakeAdoptionRepo{requests: map[string]*domain.AdoptionRequest{}}
}

func (r *fakeAdoptionRepo) Create(_ context.Context, request *domain.AdoptionRequest) error {
	request.ID = uuid.NewString()
	request.CreatedAt = time.Now()
	copied := *request
	r.requests[request.ID] = &copied
	return nil
}

func (r *fakeAdoptionRepo) GetByID(_ context.Context, id string) (*domain.AdoptionRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (r *fakeAdoptionRepo) ListAll(_ context.Context) ([]domain.AdoptionRequest, error) {
	var result []domain.AdoptionRequest
	for _, request := range r.requests {
		result = append(result, *request)
	}
	return result, nil
}

func (r *fakeAdoptionRepo) ListByEmail(_ context.Context, email string) ([]domain.AdoptionRequest, error) {
	var result []domain.AdoptionRequest
	for _, request := range r.requests {
		if request.Email == email {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (r *fakeAdoptionRepo) ListRecent(_ context.Context, limit int) ([]domain.AdoptionRequest, error) {
	result, _ := r.ListAll(context.Background())
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeAdoptionRepo) UpdateReview(_ context.Context, request *domain.AdoptionRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *request
	r.requests[request.ID] = &copied
	return nil
}

func (r *fakeAdoptionRepo) Count(_ context.Context) (int, error) {
	return len(r.requests), nil
}

func (r *fakeAdoptionRepo) CountByStatus(_ context.Context, status domain.AdoptionStatus) (int, error) {
	count := 0
	for _, request := range r.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeAdoptionRepo) CountCreatedSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, request := range r.requests {
		if !request.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func newTestAdoptionService(t *testing.T) (*AdoptionService, *domain.Pet) {
	t.Helper()
	pets := newFakePetRepo()
	pet := &domain.Pet{Name: "Luna", Age: 2, Breed: "Beagle", Category: domain.PetCategoryDog}
	if err := pets.Create(context.Background(), pet); err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	svc := NewAdoptionService(AdoptionDependencies{
		AdoptionRepo: newFakeAdoptionRepo(),
		PetRepo:      pets,
	})
	return svc, pet
}

func validAdoptionInput(petID string) AdoptionCreateInput {
	return AdoptionCreateInput{
		PetID:      petID,
		FullName:   "Ana Silva",
		Email:      "Ana@Example.com",
		Phone:      "555-0101",
		Reason:     "Family pet",
		Experience: "Had dogs before",
	}
}

func TestCreateRequestValidatesRequiredFields(t *testing.T) {
	svc, _ := newTestAdoptionService(t)

	_, err := svc.CreateRequest(context.Background(), AdoptionCreateInput{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Errorf("code = %s, want VALIDATION_FAILED", domainErr.Code)
	}
	for _, field := range []string{"pet_id", "full_name", "email", "phone", "reason", "experience"} {
		if _, ok := domainErr.Details[field]; !ok {
			t.Errorf("missing detail for %s", field)
		}
	}
}

func TestCreateRequestSnapshotsPetAndNormalizesEmail(t *testing.T) {
	svc, pet := newTestAdoptionService(t)

	request, err := svc.CreateRequest(context.Background(), validAdoptionInput(pet.ID))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if request.PetName != "Luna" {
		t.Errorf("pet name = %s, want Luna", request.PetName)
	}
	if request.Email != "ana@example.com" {
		t.Errorf("email = %s, want lowercase", request.Email)
	}
	if request.Status != domain.AdoptionStatusPending {
		t.Errorf("status = %s, want pending", request.Status)
	}
	if request.ReviewedAt != nil || request.ReviewedBy != nil {
		t.Error("new request must not carry review fields")
	}
}

func TestCreateRequestUnknownPet(t *testing.T) {
	svc, _ := newTestAdoptionService(t)

	_, err := svc.CreateRequest(context.Background(), validAdoptionInput("missing"))
	if apperrors.ToDomainError(err).Code != "NOT_FOUND" {
		t.Errorf("code = %s, want NOT_FOUND", apperrors.ToDomainError(err).Code)
	}
}

func TestReviewSetsAuditFields(t *testing.T) {
	svc, pet := newTestAdoptionService(t)
	request, err := svc.CreateRequest(context.Background(), validAdoptionInput(pet.ID))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	reviewed, err := svc.Review(context.Background(), "admin-1", request.ID, domain.AdoptionStatusApproved)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if reviewed.Status != domain.AdoptionStatusApproved {
		t.Errorf("status = %s, want approved", reviewed.Status)
	}
	if reviewed.ReviewedAt == nil {
		t.Error("review must set reviewed-at")
	}
	if reviewed.ReviewedBy == nil || *reviewed.ReviewedBy != "admin-1" {
		t.Errorf("reviewed-by = %v, want admin-1", reviewed.ReviewedBy)
	}

	history, err := svc.ListForEmail(context.Background(), "ANA@example.com")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Status != domain.AdoptionStatusApproved {
		t.Errorf("history = %+v, want one approved request", history)
	}
}

func TestReviewRejectsUnknownStatus(t *testing.T) {
	svc, pet := newTestAdoptionService(t)
	request, err := svc.CreateRequest(context.Background(), validAdoptionInput(pet.ID))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	_, err = svc.Review(context.Background(), "admin-1", request.ID, "archived")
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("code = %s, want VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
}
