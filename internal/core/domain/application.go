package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a job application.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

// validTransitions defines the allowed review state machine transitions.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:   {StatusReviewing, StatusRejected},
	StatusReviewing: {StatusInterview, StatusRejected},
	StatusInterview: {StatusAccepted, StatusRejected},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied for this job")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")

// ValidApplicationStatus reports whether s is a known status value.
func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application links one user to one job; the (job, user) pair is unique.
type Application struct {
	ID             string            `json:"id"`
	JobID          string            `json:"job_id"`
	UserID         string            `json:"user_id"`
	Status         ApplicationStatus `json:"status"`
	CoverLetter    string            `json:"cover_letter,omitempty"`
	Resume         string            `json:"resume,omitempty"`
	AdditionalInfo string            `json:"additional_info,omitempty"`
	AppliedDate    time.Time         `json:"applied_date"`
	LastUpdated    time.Time         `json:"last_updated"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// JobSummary is the slice of job fields joined onto application reads.
type JobSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Department string   `json:"department"`
	Location   string   `json:"location"`
	Type       JobType  `json:"type"`
	Level      JobLevel `json:"level"`
}

// ApplicantSummary is the slice of user fields joined onto application reads.
type ApplicantSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ApplicationDetail is an application joined with its job and applicant at read time.
// Job is nil when the referenced job has been deleted.
type ApplicationDetail struct {
	Application
	Job       *JobSummary       `json:"job,omitempty"`
	Applicant *ApplicantSummary `json:"applicant,omitempty"`
}
