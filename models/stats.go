package models

// Stats holds platform-wide counters shown on the dashboard.
type Stats struct {
	TotalJobs    int `json:"total_jobs"`
	ActiveJobs   int `json:"active_jobs"`
	TotalUsers   int `json:"total_users"`
	TotalResumes int `json:"total_resumes"`
	TodayJobs    int `json:"today_jobs"`
	TodayUsers   int `json:"today_users"`
	TodayResumes int `json:"today_resumes"`
}
