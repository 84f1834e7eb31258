package firestoredb

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"orion/internal/models"
	"orion/internal/utils"
)

func TestResolveTrailPlanNoFilters(t *testing.T) {
	plan := ResolveTrailPlan(models.TrailListOptions{})
	if plan.Level != PlanRequested {
		t.Errorf("level = %v, want requested", plan.Level)
	}
	if len(plan.Filters) != 0 {
		t.Errorf("filters = %v, want none", plan.Filters)
	}
	if plan.Sort != utils.SortCreatedAt || !plan.Desc {
		t.Errorf("default sort = %s desc=%v, want createdAt desc", plan.Sort, plan.Desc)
	}
}

func TestResolveTrailPlanSortWithoutFilters(t *testing.T) {
	plan := ResolveTrailPlan(models.TrailListOptions{Sort: utils.SortName, Order: utils.OrderAsc})
	if plan.Level != PlanRequested {
		t.Errorf("level = %v, want requested (no filters, any sort is safe)", plan.Level)
	}
	if plan.Sort != utils.SortName || plan.Desc {
		t.Errorf("sort = %s desc=%v, want name asc", plan.Sort, plan.Desc)
	}
}

func TestResolveTrailPlanFiltersWithDefaultSort(t *testing.T) {
	plan := ResolveTrailPlan(models.TrailListOptions{
		Difficulty: models.DifficultyHard,
		Sort:       utils.SortCreatedAt,
	})
	if plan.Level != PlanRequested {
		t.Errorf("level = %v, want requested (createdAt sort needs no composite index)", plan.Level)
	}
	if len(plan.Filters) != 1 || plan.Filters[0].Path != "difficulty" {
		t.Errorf("filters = %v, want single difficulty filter", plan.Filters)
	}
}

func TestResolveTrailPlanDegradesSort(t *testing.T) {
	plan := ResolveTrailPlan(models.TrailListOptions{
		Difficulty: models.DifficultyEasy,
		Sort:       utils.SortDistance,
		Order:      utils.OrderAsc,
	})
	if plan.Level != PlanDegraded {
		t.Fatalf("level = %v, want degraded", plan.Level)
	}
	if plan.Sort != utils.SortCreatedAt || !plan.Desc {
		t.Errorf("degraded sort = %s desc=%v, want createdAt desc", plan.Sort, plan.Desc)
	}
	if len(plan.Filters) != 1 {
		t.Errorf("degradation must keep filters, got %v", plan.Filters)
	}
}

func TestResolveTrailPlanBuildsRangeFilters(t *testing.T) {
	min, max := 5.0, 20.0
	plan := ResolveTrailPlan(models.TrailListOptions{
		MinDistance: &min,
		MaxDistance: &max,
		Tags:        []string{"alpine", "loop"},
	})

	want := map[string]bool{
		"distance >=":             false,
		"distance <=":             false,
		"tags array-contains-any": false,
	}
	for _, f := range plan.Filters {
		key := f.Path + " " + f.Op
		if _, ok := want[key]; ok {
			want[key] = true
		} else {
			t.Errorf("unexpected filter %s", key)
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("missing filter %s", key)
		}
	}
}

func TestDegrade(t *testing.T) {
	plan := ListPlan{
		Level:   PlanDegraded,
		Filters: []FieldFilter{{Path: "status", Op: "==", Value: "open"}},
		Sort:    utils.SortCreatedAt,
		Desc:    true,
	}

	next, ok := plan.Degrade()
	if !ok {
		t.Fatal("expected a simpler plan")
	}
	if next.Level != PlanMinimal || len(next.Filters) != 0 {
		t.Errorf("degraded plan = %+v, want minimal with no filters", next)
	}

	if _, ok := next.Degrade(); ok {
		t.Error("minimal plan must not degrade further")
	}

	unfiltered := ListPlan{Level: PlanRequested, Sort: utils.SortCreatedAt, Desc: true}
	if _, ok := unfiltered.Degrade(); ok {
		t.Error("plan without filters must not degrade")
	}
}

func TestDegradeKeepsSortField(t *testing.T) {
	plan := ListPlan{
		Level:   PlanRequested,
		Filters: []FieldFilter{{Path: "isActive", Op: "==", Value: true}},
		Sort:    "timestamp",
		Desc:    true,
	}

	next, ok := plan.Degrade()
	if !ok {
		t.Fatal("expected a simpler plan")
	}
	if next.Sort != "timestamp" || !next.Desc {
		t.Errorf("minimal plan sort = %s desc=%v, want timestamp desc", next.Sort, next.Desc)
	}
	if len(next.Filters) != 0 {
		t.Errorf("minimal plan filters = %v, want none", next.Filters)
	}
}

func TestIsMissingIndex(t *testing.T) {
	if !IsMissingIndex(status.Error(codes.FailedPrecondition, "The query requires an index.")) {
		t.Error("FailedPrecondition should be classified as missing index")
	}
	if IsMissingIndex(status.Error(codes.Unavailable, "transient")) {
		t.Error("Unavailable should not be classified as missing index")
	}
	if IsMissingIndex(errors.New("plain error")) {
		t.Error("plain errors should not be classified as missing index")
	}
	if IsMissingIndex(nil) {
		t.Error("nil should not be classified as missing index")
	}
}

func TestRunWithFallbackSucceedsFirstTry(t *testing.T) {
	plan := ListPlan{
		Level:   PlanRequested,
		Filters: []FieldFilter{{Path: "difficulty", Op: "==", Value: "Hard"}},
		Sort:    utils.SortCreatedAt,
		Desc:    true,
	}

	calls := 0
	executed, err := RunWithFallback(plan, func(p ListPlan) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("run called %d times, want 1", calls)
	}
	if executed.Level != PlanRequested {
		t.Errorf("executed level = %v, want requested", executed.Level)
	}
}

func TestRunWithFallbackDropsFiltersOnMissingIndex(t *testing.T) {
	plan := ListPlan{
		Level:   PlanRequested,
		Filters: []FieldFilter{{Path: "isActive", Op: "==", Value: true}},
		Sort:    "timestamp",
		Desc:    true,
	}

	var levels []PlanLevel
	executed, err := RunWithFallback(plan, func(p ListPlan) error {
		levels = append(levels, p.Level)
		if len(p.Filters) > 0 {
			return status.Error(codes.FailedPrecondition, "The query requires an index.")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if executed.Level != PlanMinimal {
		t.Errorf("executed level = %v, want minimal", executed.Level)
	}
	if executed.Sort != "timestamp" {
		t.Errorf("executed sort = %s, want timestamp (fallback must not reorder on a foreign field)", executed.Sort)
	}
	if len(levels) != 2 || levels[0] != PlanRequested || levels[1] != PlanMinimal {
		t.Errorf("execution order = %v, want [requested minimal]", levels)
	}
}

func TestRunWithFallbackStopsOnOtherErrors(t *testing.T) {
	plan := ListPlan{
		Level:   PlanRequested,
		Filters: []FieldFilter{{Path: "status", Op: "==", Value: "open"}},
		Sort:    utils.SortCreatedAt,
		Desc:    true,
	}

	boom := status.Error(codes.Unavailable, "backend down")
	calls := 0
	_, err := RunWithFallback(plan, func(p ListPlan) error {
		calls++
		return boom
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("run called %d times, want 1 (no fallback on non-index errors)", calls)
	}
}

func TestRunWithFallbackExhaustsPlans(t *testing.T) {
	plan := ListPlan{
		Level:   PlanRequested,
		Filters: []FieldFilter{{Path: "status", Op: "==", Value: "open"}},
		Sort:    utils.SortCreatedAt,
		Desc:    true,
	}

	indexErr := status.Error(codes.FailedPrecondition, "The query requires an index.")
	calls := 0
	_, err := RunWithFallback(plan, func(p ListPlan) error {
		calls++
		return indexErr
	})
	if err == nil {
		t.Fatal("expected error once all plans fail")
	}
	if calls != 2 {
		t.Errorf("run called %d times, want 2 (requested then minimal)", calls)
	}
}
