package firestoredb

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"orion/internal/models"
	"orion/internal/utils"
)

// PlanLevel describes how far a listing plan has degraded from the caller's
// request. Firestore needs a pre-declared composite index for every filter
// set × sort field combination beyond the single-field default, so rather
// than provision an index per combination the plan degrades: first the sort,
// then, if execution still reports a missing index, the filters.
type PlanLevel int

const (
	// PlanRequested honors the caller's filters and sort as given.
	PlanRequested PlanLevel = iota
	// PlanDegraded keeps the filters but sorts by createdAt descending.
	PlanDegraded
	// PlanMinimal drops all filters, keeping only the plan's sort.
	PlanMinimal
)

func (l PlanLevel) String() string {
	switch l {
	case PlanRequested:
		return "requested"
	case PlanDegraded:
		return "degraded"
	case PlanMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// FieldFilter is one backend query constraint.
type FieldFilter struct {
	Path  string
	Op    string
	Value interface{}
}

// ListPlan is an executable listing plan: the constraints and sort a single
// backend query will be built from.
type ListPlan struct {
	Level   PlanLevel
	Filters []FieldFilter
	Sort    string
	Desc    bool
}

// ResolveTrailPlan translates normalized listing options into a plan,
// applying the index-availability sort fallback: any filter combined with a
// non-default sort would need its own composite index, so the sort falls
// back to createdAt descending and the level records the degradation.
func ResolveTrailPlan(opts models.TrailListOptions) ListPlan {
	var filters []FieldFilter

	if opts.Difficulty != "" {
		filters = append(filters, FieldFilter{Path: "difficulty", Op: "==", Value: string(opts.Difficulty)})
	}
	if opts.Status != "" {
		filters = append(filters, FieldFilter{Path: "status", Op: "==", Value: string(opts.Status)})
	}
	if len(opts.Tags) > 0 {
		filters = append(filters, FieldFilter{Path: "tags", Op: "array-contains-any", Value: opts.Tags})
	}
	if opts.MinDistance != nil {
		filters = append(filters, FieldFilter{Path: "distance", Op: ">=", Value: *opts.MinDistance})
	}
	if opts.MaxDistance != nil {
		filters = append(filters, FieldFilter{Path: "distance", Op: "<=", Value: *opts.MaxDistance})
	}
	if opts.MinElevation != nil {
		filters = append(filters, FieldFilter{Path: "elevationGain", Op: ">=", Value: *opts.MinElevation})
	}
	if opts.MaxElevation != nil {
		filters = append(filters, FieldFilter{Path: "elevationGain", Op: "<=", Value: *opts.MaxElevation})
	}

	sort := opts.Sort
	if sort == "" {
		sort = utils.SortCreatedAt
	}
	desc := opts.Order != utils.OrderAsc

	plan := ListPlan{Level: PlanRequested, Filters: filters, Sort: sort, Desc: desc}

	if len(filters) > 0 && sort != utils.SortCreatedAt {
		plan.Level = PlanDegraded
		plan.Sort = utils.SortCreatedAt
		plan.Desc = true
	}

	return plan
}

// Degrade returns the next simpler plan, if one exists. The only transition
// left at execution time is dropping the filters entirely. The sort field is
// kept as is: collections order by different fields, and a document missing
// the ordered field is excluded from the results, so switching sorts here
// could make the fallback return nothing.
func (p ListPlan) Degrade() (ListPlan, bool) {
	if p.Level == PlanMinimal || len(p.Filters) == 0 {
		return p, false
	}
	return ListPlan{Level: PlanMinimal, Sort: p.Sort, Desc: p.Desc}, true
}

// IsMissingIndex reports whether err is the backend's "query requires a
// composite index" failure class. Firestore surfaces it as a gRPC
// FailedPrecondition.
func IsMissingIndex(err error) bool {
	if err == nil {
		return false
	}
	return status.Code(err) == codes.FailedPrecondition
}

// RunWithFallback executes run with progressively simpler plans until one
// succeeds, a non-index error occurs, or no simpler plan exists. It returns
// the plan that ran last. Degradation is never surfaced to the caller:
// results may ignore the requested sort or filters, trading query precision
// for availability.
func RunWithFallback(plan ListPlan, run func(ListPlan) error) (ListPlan, error) {
	for {
		err := run(plan)
		if err == nil {
			return plan, nil
		}
		if !IsMissingIndex(err) {
			return plan, err
		}
		next, ok := plan.Degrade()
		if !ok {
			return plan, err
		}
		plan = next
	}
}

// apply builds the firestore query for the plan.
func (p ListPlan) apply(q firestore.Query) firestore.Query {
	for _, f := range p.Filters {
		q = q.Where(f.Path, f.Op, f.Value)
	}
	dir := firestore.Asc
	if p.Desc {
		dir = firestore.Desc
	}
	return q.OrderBy(p.Sort, dir)
}
