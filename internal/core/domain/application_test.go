package domain

import "testing"

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusReviewing, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInterview, false},
		{StatusPending, StatusAccepted, false},
		{StatusReviewing, StatusInterview, true},
		{StatusReviewing, StatusRejected, true},
		{StatusReviewing, StatusAccepted, false},
		{StatusInterview, StatusAccepted, true},
		{StatusInterview, StatusRejected, true},
		{StatusInterview, StatusReviewing, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: want %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestValidDepartment(t *testing.T) {
	if !ValidDepartment("Engineering") {
		t.Errorf("Engineering should be valid")
	}
	if !ValidDepartment("AI & Machine Learning") {
		t.Errorf("AI & Machine Learning should be valid")
	}
	if ValidDepartment("engineering") {
		t.Errorf("department matching is case-sensitive")
	}
	if ValidDepartment("Astrology") {
		t.Errorf("unknown department should be invalid")
	}
}

func TestValidJobTypeAndLevel(t *testing.T) {
	for _, s := range []string{"Full-time", "Part-time", "Contract", "Internship"} {
		if !ValidJobType(s) {
			t.Errorf("%s should be a valid type", s)
		}
	}
	if ValidJobType("Freelance") {
		t.Errorf("Freelance should be invalid")
	}

	for _, s := range []string{"Entry", "Mid", "Senior", "Lead"} {
		if !ValidJobLevel(s) {
			t.Errorf("%s should be a valid level", s)
		}
	}
	if ValidJobLevel("Principal") {
		t.Errorf("Principal should be invalid")
	}
}
