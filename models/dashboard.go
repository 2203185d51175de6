package models

// Dashboard is the result of loading every dashboard resource in parallel.
//
// Each resource is fetched independently: a failed fetch leaves its data
// empty and records the cause in the matching *Err field, while the other
// resources are still populated.
type Dashboard struct {
	Jobs    []Job
	Users   []User
	Resumes []Resume
	Stats   *Stats

	JobsErr    error
	UsersErr   error
	ResumesErr error
	StatsErr   error
}
