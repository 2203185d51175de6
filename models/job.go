package models

import "time"

// Job is a job posting as reported by the backend. The backend is the
// authority for ID, CreatedBy, Source and CreatedAt.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	City        string    `json:"city"`
	Salary      string    `json:"salary"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   int64     `json:"created_by"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobInput is a partial job sent on create and update.
//
// Every field is optional: a nil pointer is omitted from the JSON payload, so
// the request body contains exactly the fields the caller has set.
type JobInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
	City        *string `json:"city,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Company     *string `json:"company,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// NewJobInput returns a JobInput with every editable field of job set. It is
// the payload the job form sends when editing an existing posting.
func NewJobInput(job Job) JobInput {
	return JobInput{
		Title:       Ptr(job.Title),
		Description: Ptr(job.Description),
		Category:    Ptr(job.Category),
		Subcategory: Ptr(job.Subcategory),
		City:        Ptr(job.City),
		Salary:      Ptr(job.Salary),
		Phone:       Ptr(job.Phone),
		Company:     Ptr(job.Company),
		IsActive:    Ptr(job.IsActive),
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
