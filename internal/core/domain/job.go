package domain

import (
	"errors"
	"time"
)

// JobType is the employment type of a posting.
type JobType string

const (
	TypeFullTime   JobType = "Full-time"
	TypePartTime   JobType = "Part-time"
	TypeContract   JobType = "Contract"
	TypeInternship JobType = "Internship"
)

// JobLevel is the seniority level of a posting.
type JobLevel string

const (
	LevelEntry  JobLevel = "Entry"
	LevelMid    JobLevel = "Mid"
	LevelSenior JobLevel = "Senior"
	LevelLead   JobLevel = "Lead"
)

// Departments is the closed set of departments a job may belong to.
var Departments = []string{
	"Engineering",
	"AI & Machine Learning",
	"DevOps & Infrastructure",
	"Mobile Development",
	"Product Management",
	"Design",
	"Data Science",
	"Quality Assurance",
	"Marketing",
	"Sales",
	"Human Resources",
	"Finance",
}

var ErrJobNotFound = errors.New("job not found")

// MinDescriptionLen is the minimum accepted length of a job description.
const MinDescriptionLen = 50

// ValidDepartment reports whether s is one of the known departments.
func ValidDepartment(s string) bool {
	for _, d := range Departments {
		if d == s {
			return true
		}
	}
	return false
}

// ValidJobType reports whether s is a known employment type.
func ValidJobType(s string) bool {
	switch JobType(s) {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

// ValidJobLevel reports whether s is a known seniority level.
func ValidJobLevel(s string) bool {
	switch JobLevel(s) {
	case LevelEntry, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

// Salary is an optional compensation range on a job.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job is a single posting. Only active jobs are visible in public listings.
type Job struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Department          string     `json:"department"`
	Location            string     `json:"location"`
	Type                JobType    `json:"type"`
	Level               JobLevel   `json:"level"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	Benefits            []string   `json:"benefits,omitempty"`
	Skills              []string   `json:"skills"`
	Salary              *Salary    `json:"salary,omitempty"`
	IsActive            bool       `json:"is_active"`
	Featured            bool       `json:"featured"`
	PostedDate          time.Time  `json:"posted_date"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
