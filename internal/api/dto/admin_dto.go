package dto

// DashboardStatsResponse is the admin overview payload.
type DashboardStatsResponse struct {
	TotalUsers              int            `json:"total_users"`
	TodayRegistrations      int            `json:"today_registrations"`
	TotalPets               int            `json:"total_pets"`
	PetsByCategory          map[string]int `json:"pets_by_category"`
	TotalAdoptionRequests   int            `json:"total_adoption_requests"`
	PendingAdoptionRequests int            `json:"pending_adoption_requests"`
	RecentAdoptionRequests  int            `json:"recent_adoption_requests"`
}
