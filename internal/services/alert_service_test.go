package services

import (
	"context"
	"testing"
	"time"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
)

type stubAlertRepo struct {
	alerts map[string]*models.Alert
}

func newStubAlertRepo() *stubAlertRepo {
	return &stubAlertRepo{alerts: make(map[string]*models.Alert)}
}

func (r *stubAlertRepo) ListByTrail(ctx context.Context, trailID string) ([]*models.Alert, error) {
	out := make([]*models.Alert, 0)
	for _, a := range r.alerts {
		if a.TrailID == trailID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAlertRepo) ListAll(ctx context.Context, status interfaces.AlertStatusFilter, params *utils.PaginationParams) ([]*models.Alert, int64, error) {
	out := make([]*models.Alert, 0)
	for _, a := range r.alerts {
		switch status {
		case interfaces.AlertFilterActive:
			if !a.IsActive {
				continue
			}
		case interfaces.AlertFilterInactive:
			if a.IsActive {
				continue
			}
		}
		out = append(out, a)
	}
	start, end := utils.SliceBounds(params, len(out))
	return out[start:end], int64(len(out)), nil
}

func (r *stubAlertRepo) Create(ctx context.Context, alert *models.Alert) error {
	r.alerts[alert.ID] = alert
	return nil
}

func (r *stubAlertRepo) GetByID(ctx context.Context, id string) (*models.Alert, error) {
	alert, ok := r.alerts[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return alert, nil
}

func (r *stubAlertRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	alert, ok := r.alerts[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	if v, ok := updates["isActive"]; ok {
		alert.IsActive = v.(bool)
	}
	if v, ok := updates["message"]; ok {
		alert.Message = v.(string)
	}
	return nil
}

func (r *stubAlertRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.alerts[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.alerts, id)
	return nil
}

func alertServiceFixture(t *testing.T) (*AlertService, *stubAlertRepo) {
	t.Helper()
	trails := newStubTrailRepo()
	trails.trails["trail-1"] = validTrail()
	repo := newStubAlertRepo()
	return NewAlertService(repo, trails, testLogger()), repo
}

func TestAlertCreateDefaults(t *testing.T) {
	svc, repo := alertServiceFixture(t)

	alert, err := svc.Create(context.Background(), &models.AlertCreate{
		TrailID: "trail-1",
		Message: "Washout at mile 3",
		Type:    models.AlertCondition,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !alert.IsActive {
		t.Error("new alerts must default to active")
	}
	if alert.ExpiresAt != nil {
		t.Error("untimed alerts must not carry an expiry")
	}
	if alert.ID == "" || alert.Timestamp.IsZero() {
		t.Error("id and timestamp must be assigned")
	}
	if len(repo.alerts) != 1 {
		t.Errorf("stored %d alerts, want 1", len(repo.alerts))
	}
}

func TestAlertCreateTimedExpiry(t *testing.T) {
	svc, _ := alertServiceFixture(t)

	before := time.Now()
	alert, err := svc.Create(context.Background(), &models.AlertCreate{
		TrailID:  "trail-1",
		Message:  "Storm warning",
		Type:     models.AlertWeather,
		IsTimed:  true,
		Duration: 90,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if alert.ExpiresAt == nil {
		t.Fatal("timed alert must carry an expiry")
	}
	want := before.Add(90 * time.Minute)
	if alert.ExpiresAt.Before(want.Add(-time.Minute)) || alert.ExpiresAt.After(want.Add(time.Minute)) {
		t.Errorf("expiresAt = %v, want ~%v", alert.ExpiresAt, want)
	}
}

func TestAlertCreateTrailMustExist(t *testing.T) {
	svc, _ := alertServiceFixture(t)

	_, err := svc.Create(context.Background(), &models.AlertCreate{
		TrailID: "ghost",
		Message: "anything",
		Type:    models.AlertOther,
	})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAlertUpdateDeactivates(t *testing.T) {
	svc, repo := alertServiceFixture(t)

	created, err := svc.Create(context.Background(), &models.AlertCreate{
		TrailID: "trail-1",
		Message: "Bear sighting",
		Type:    models.AlertWildlife,
	})
	if err != nil {
		t.Fatal(err)
	}

	inactive := false
	updated, err := svc.Update(context.Background(), created.ID, &models.AlertUpdate{IsActive: &inactive})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.IsActive {
		t.Error("alert should be inactive after update")
	}

	active, err := svc.ListByTrail(context.Background(), "trail-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Errorf("trail listing returned %d alerts, want 0 active", len(active))
	}

	all, _, err := svc.ListAll(context.Background(), interfaces.AlertFilterAll, &utils.PaginationParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll(all) returned %d alerts, want 1", len(all))
	}
	if repo.alerts[created.ID].IsActive {
		t.Error("stored alert should be inactive")
	}
}

func TestAlertUpdateRequiresFields(t *testing.T) {
	svc, _ := alertServiceFixture(t)

	_, err := svc.Update(context.Background(), "any", &models.AlertUpdate{})
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected validation error for empty update, got %v", err)
	}
}
