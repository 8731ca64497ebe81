package dto

// DashboardStatsResponse aggregates the headline numbers shown on the
// role-scoped dashboards.
type DashboardStatsResponse struct {
	ActiveChildren     int64                   `json:"active_children"`
	TotalDonors        int64                   `json:"total_donors"`
	TotalStaff         int64                   `json:"total_staff"`
	DonationTotal      float64                 `json:"donation_total"`
	ExpenseTotal       float64                 `json:"expense_total"`
	UpcomingActivities []ActivityResponse      `json:"upcoming_activities"`
	RecentEnrollments  []ParticipationResponse `json:"recent_enrollments"`
}
