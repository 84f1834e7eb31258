package services

import (
	"context"
	"testing"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
)

type stubReportRepo struct {
	reports map[string]*models.Report
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[string]*models.Report)}
}

func (r *stubReportRepo) ListAll(ctx context.Context, opts interfaces.ReportListOptions, params *utils.PaginationParams) ([]*models.Report, int64, error) {
	out := make([]*models.Report, 0)
	for _, rep := range r.reports {
		if opts.Status != "" && rep.Status != opts.Status {
			continue
		}
		if opts.Type != "" && rep.Type != opts.Type {
			continue
		}
		out = append(out, rep)
	}
	start, end := utils.SliceBounds(params, len(out))
	return out[start:end], int64(len(out)), nil
}

func (r *stubReportRepo) ListByReporter(ctx context.Context, reporterID string, params *utils.PaginationParams) ([]*models.Report, error) {
	out := make([]*models.Report, 0)
	for _, rep := range r.reports {
		if rep.ReporterID == reporterID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *stubReportRepo) Create(ctx context.Context, report *models.Report) error {
	r.reports[report.ID] = report
	return nil
}

func (r *stubReportRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return rep, nil
}

func (r *stubReportRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	rep, ok := r.reports[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	if v, ok := updates["status"]; ok {
		rep.Status = v.(models.ReportStatus)
	}
	if v, ok := updates["priority"]; ok {
		rep.Priority = v.(models.ReportPriority)
	}
	return nil
}

func (r *stubReportRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.reports[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.reports, id)
	return nil
}

func reportServiceFixture(t *testing.T) (*ReportService, *stubReportRepo) {
	t.Helper()
	trails := newStubTrailRepo()
	trails.trails["trail-1"] = validTrail()
	repo := newStubReportRepo()
	return NewReportService(repo, trails, testLogger()), repo
}

func TestReportCreateDefaults(t *testing.T) {
	svc, _ := reportServiceFixture(t)

	report, err := svc.Create(context.Background(), &models.Report{
		Type:        models.ReportGeneral,
		Category:    "abuse",
		Description: "Offensive trail name.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if report.Priority != models.PriorityMedium {
		t.Errorf("priority = %s, want default medium", report.Priority)
	}
	if report.Status != models.ReportPending {
		t.Errorf("status = %s, want default pending", report.Status)
	}
	if report.ID == "" || report.CreatedAt.IsZero() {
		t.Error("id and createdAt must be assigned")
	}
}

func TestReportCreateStatusAlwaysPending(t *testing.T) {
	svc, _ := reportServiceFixture(t)

	report, err := svc.Create(context.Background(), &models.Report{
		Type:        models.ReportGeneral,
		Category:    "spam",
		Description: "Spam report.",
		Status:      models.ReportResolved,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if report.Status != models.ReportPending {
		t.Errorf("caller-supplied status must be overridden, got %s", report.Status)
	}
}

func TestReportCreateChecksTrail(t *testing.T) {
	svc, _ := reportServiceFixture(t)

	_, err := svc.Create(context.Background(), &models.Report{
		Type:        models.ReportTrail,
		Category:    "wrong-data",
		Description: "Distance is off.",
		TrailID:     "ghost",
	})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for missing trail, got %v", err)
	}

	// Reports without a trail reference skip the check.
	if _, err := svc.Create(context.Background(), &models.Report{
		Type:        models.ReportGeneral,
		Category:    "other",
		Description: "General feedback.",
	}); err != nil {
		t.Errorf("trail-less report rejected: %v", err)
	}
}

func TestReportStatusTransitionsAreFree(t *testing.T) {
	svc, _ := reportServiceFixture(t)

	report, err := svc.Create(context.Background(), &models.Report{
		Type:        models.ReportReview,
		Category:    "abuse",
		Description: "Abusive review.",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Any status can follow any other, including moving backwards.
	for _, status := range []models.ReportStatus{
		models.ReportResolved,
		models.ReportPending,
		models.ReportDismissed,
		models.ReportReviewed,
	} {
		updated, err := svc.UpdateStatus(context.Background(), report.ID, status)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %s, want %s", updated.Status, status)
		}
	}

	if _, err := svc.UpdateStatus(context.Background(), report.ID, "archived"); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestReportListAllFilters(t *testing.T) {
	svc, repo := reportServiceFixture(t)

	seed := []*models.Report{
		{ID: "r1", Type: models.ReportTrail, Status: models.ReportPending},
		{ID: "r2", Type: models.ReportTrail, Status: models.ReportResolved},
		{ID: "r3", Type: models.ReportImage, Status: models.ReportPending},
	}
	for _, rep := range seed {
		repo.reports[rep.ID] = rep
	}

	params := &utils.PaginationParams{Page: 1, Limit: 10}

	pending, pagination, err := svc.ListAll(context.Background(), interfaces.ReportListOptions{Status: models.ReportPending}, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 2 || pagination.Total != 2 {
		t.Errorf("pending filter returned %d/%d, want 2/2", len(pending), pagination.Total)
	}

	both, _, err := svc.ListAll(context.Background(), interfaces.ReportListOptions{
		Status: models.ReportPending,
		Type:   models.ReportImage,
	}, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(both) != 1 || both[0].ID != "r3" {
		t.Errorf("combined filter = %v, want just r3", both)
	}
}
