package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/ports"
)

// stubJobRepo implements the listing semantics in memory so service tests can
// exercise filtering, ordering, and pagination end to end.
type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	created := cloneJob(job)
	created.ID = "job_" + strconv.Itoa(r.nextID)
	r.jobs[created.ID] = cloneJob(created)
	return cloneJob(created), nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return cloneJob(j), nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context, f ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	var matched []*domain.Job
	for _, j := range r.jobs {
		if !j.IsActive {
			continue
		}
		if f.Department != "" && j.Department != f.Department {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.Type != "" && string(j.Type) != f.Type {
			continue
		}
		if f.Level != "" && string(j.Level) != f.Level {
			continue
		}
		if f.FeaturedOnly && !j.Featured {
			continue
		}
		if f.Search != "" && !jobMatchesSearch(j, f.Search) {
			continue
		}
		matched = append(matched, cloneJob(j))
	}

	sort.SliceStable(matched, func(a, b int) bool {
		if matched[a].Featured != matched[b].Featured {
			return matched[a].Featured
		}
		return matched[a].PostedDate.After(matched[b].PostedDate)
	})

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func jobMatchesSearch(j *domain.Job, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(j.Title), s) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Description), s) {
		return true
	}
	for _, skill := range j.Skills {
		if strings.Contains(strings.ToLower(skill), s) {
			return true
		}
	}
	return false
}

func (r *stubJobRepo) Update(_ context.Context, id string, upd ports.JobUpdate) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.Description != nil {
		j.Description = *upd.Description
	}
	if upd.IsActive != nil {
		j.IsActive = *upd.IsActive
	}
	if upd.Featured != nil {
		j.Featured = *upd.Featured
	}
	j.UpdatedAt = time.Now().UTC()
	return cloneJob(j), nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type stubViewCounter struct {
	hits map[string]int64
	err  error
}

func (v *stubViewCounter) Hit(_ context.Context, jobID string) (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	if v.hits == nil {
		v.hits = make(map[string]int64)
	}
	v.hits[jobID]++
	return v.hits[jobID], nil
}

func validJobInput(overrides func(*ports.CreateJobInput)) ports.CreateJobInput {
	in := ports.CreateJobInput{
		Title:            "Backend Engineer",
		Department:       "Engineering",
		Location:         "Remote",
		Type:             "Full-time",
		Level:            "Senior",
		Description:      strings.Repeat("Build and operate backend services. ", 3),
		Requirements:     []string{"5 years of Go"},
		Responsibilities: []string{"Own services end to end"},
		Skills:           []string{"Go", "MongoDB"},
	}
	if overrides != nil {
		overrides(&in)
	}
	return in
}

func seedJob(t *testing.T, svc *JobService, overrides func(*ports.CreateJobInput)) *domain.Job {
	t.Helper()
	job, err := svc.Create(context.Background(), validJobInput(overrides))
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func newJobService(repo *stubJobRepo) *JobService {
	return NewJobService(repo, &stubViewCounter{}, discardLogger)
}

func TestJobService_Create_Defaults(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	job := seedJob(t, svc, func(in *ports.CreateJobInput) {
		in.Salary = &ports.SalaryInput{Min: 90000, Max: 120000}
	})

	if !job.IsActive {
		t.Errorf("expected active by default")
	}
	if job.Featured {
		t.Errorf("expected not featured by default")
	}
	if job.PostedDate.IsZero() {
		t.Errorf("expected posted date to be set")
	}
	if job.Salary == nil || job.Salary.Currency != "USD" {
		t.Errorf("expected salary currency to default to USD, got %+v", job.Salary)
	}
}

func TestJobService_Create_Validation(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	cases := []struct {
		name      string
		overrides func(*ports.CreateJobInput)
		wantMsg   string
	}{
		{"missing title", func(in *ports.CreateJobInput) { in.Title = "" }, "title is required"},
		{"bad department", func(in *ports.CreateJobInput) { in.Department = "Astrology" }, "department"},
		{"bad type", func(in *ports.CreateJobInput) { in.Type = "Freelance" }, "type"},
		{"bad level", func(in *ports.CreateJobInput) { in.Level = "Principal" }, "level"},
		{"short description", func(in *ports.CreateJobInput) { in.Description = "too short" }, "description"},
		{"no requirements", func(in *ports.CreateJobInput) { in.Requirements = nil }, "requirements"},
		{"no skills", func(in *ports.CreateJobInput) { in.Skills = nil }, "skills"},
		{"salary min above max", func(in *ports.CreateJobInput) {
			in.Salary = &ports.SalaryInput{Min: 200000, Max: 100000}
		}, "salary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), validJobInput(tc.overrides))
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestJobService_List_FeaturedFirstThenNewest(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	a := seedJob(t, svc, func(in *ports.CreateJobInput) { in.Title = "Job A"; in.Featured = true })
	b := seedJob(t, svc, func(in *ports.CreateJobInput) { in.Title = "Job B" })
	repo.jobs[a.ID].PostedDate = jan1
	repo.jobs[b.ID].PostedDate = jan2

	result, err := svc.List(context.Background(), ports.ListJobsInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(result.Items))
	}
	// Featured job A sorts before the newer, non-featured job B.
	if result.Items[0].Title != "Job A" || result.Items[1].Title != "Job B" {
		t.Errorf("expected [Job A, Job B], got [%s, %s]", result.Items[0].Title, result.Items[1].Title)
	}
}

func TestJobService_List_FeaturedOnly(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	seedJob(t, svc, func(in *ports.CreateJobInput) { in.Title = "Featured"; in.Featured = true })
	seedJob(t, svc, func(in *ports.CreateJobInput) { in.Title = "Plain" })
	inactive := false
	seedJob(t, svc, func(in *ports.CreateJobInput) {
		in.Title = "Hidden"
		in.Featured = true
		in.IsActive = &inactive
	})

	result, err := svc.List(context.Background(), ports.ListJobsInput{Featured: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Title != "Featured" {
		t.Fatalf("expected only the active featured job, got %+v", result.Items)
	}
}

func TestJobService_List_SearchMatchesTitleDescriptionSkills(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	seedJob(t, svc, func(in *ports.CreateJobInput) { in.Title = "Python Developer" })
	seedJob(t, svc, func(in *ports.CreateJobInput) {
		in.Title = "Data Engineer"
		in.Description = strings.Repeat("Deep experience with Python pipelines required here. ", 2)
	})
	seedJob(t, svc, func(in *ports.CreateJobInput) {
		in.Title = "ML Engineer"
		in.Skills = []string{"python", "pytorch"}
	})
	seedJob(t, svc, func(in *ports.CreateJobInput) { in.Title = "Frontend Engineer" })

	result, err := svc.List(context.Background(), ports.ListJobsInput{Search: "PYTHON"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected 3 matches, got %d", result.Total)
	}
	for _, j := range result.Items {
		if j.Title == "Frontend Engineer" {
			t.Errorf("non-matching job leaked into search results")
		}
	}
}

func TestJobService_List_PaginationMath(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	for i := 0; i < 5; i++ {
		seedJob(t, svc, nil)
	}

	result, err := svc.List(context.Background(), ports.ListJobsInput{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 5 {
		t.Errorf("total: expected 5, got %d", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("pages: expected 3, got %d", result.TotalPages)
	}
	if len(result.Items) != 2 {
		t.Errorf("expected 2 items on page 1, got %d", len(result.Items))
	}
}

func TestJobService_List_PageBeyondRange(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	for i := 0; i < 3; i++ {
		seedJob(t, svc, nil)
	}

	result, err := svc.List(context.Background(), ports.ListJobsInput{Page: 9, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("expected empty page, got %d items", len(result.Items))
	}
	if result.Total != 3 {
		t.Errorf("total must be preserved on empty pages, got %d", result.Total)
	}
}

func TestJobService_List_LimitDefaultsAndCap(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)

	result, err := svc.List(context.Background(), ports.ListJobsInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Page != 1 || result.Limit != 10 {
		t.Errorf("expected defaults page=1 limit=10, got page=%d limit=%d", result.Page, result.Limit)
	}

	result, err = svc.List(context.Background(), ports.ListJobsInput{Limit: 999})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Limit != 100 {
		t.Errorf("expected limit capped at 100, got %d", result.Limit)
	}
}

func TestJobService_Get_CountsViews(t *testing.T) {
	repo := newStubJobRepo()
	views := &stubViewCounter{}
	svc := NewJobService(repo, views, discardLogger)

	job := seedJob(t, svc, nil)

	detail, err := svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Views != 1 {
		t.Errorf("expected 1 view, got %d", detail.Views)
	}

	detail, err = svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Views != 2 {
		t.Errorf("expected 2 views, got %d", detail.Views)
	}
}

func TestJobService_Get_ViewCounterFailureIsNonFatal(t *testing.T) {
	repo := newStubJobRepo()
	views := &stubViewCounter{err: errors.New("redis down")}
	svc := NewJobService(repo, views, discardLogger)

	job := seedJob(t, svc, nil)

	detail, err := svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("counter failure must not fail the read: %v", err)
	}
	if detail.Views != 0 {
		t.Errorf("expected views 0 on counter failure, got %d", detail.Views)
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := newJobService(newStubJobRepo())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Update_Validation(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)
	job := seedJob(t, svc, nil)

	badDept := "Astrology"
	if _, err := svc.Update(context.Background(), job.ID, ports.JobUpdate{Department: &badDept}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	newTitle := "Staff Engineer"
	updated, err := svc.Update(context.Background(), job.ID, ports.JobUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Errorf("title not updated: %q", updated.Title)
	}
}

func TestJobService_Delete(t *testing.T) {
	repo := newStubJobRepo()
	svc := newJobService(repo)
	job := seedJob(t, svc, nil)

	if err := svc.Delete(context.Background(), job.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), job.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound on second delete, got %v", err)
	}
}
