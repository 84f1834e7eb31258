package firestoredb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
	"orion/internal/utils"
	"orion/pkg/logger"
)

type reportRepository struct {
	client *firestore.Client
	log    *logger.Logger
}

func NewReportRepository(client *firestore.Client, log *logger.Logger) interfaces.ReportRepository {
	return &reportRepository{
		client: client,
		log:    log,
	}
}

func (r *reportRepository) reports() *firestore.CollectionRef {
	return r.client.Collection(reportsCollection)
}

func (r *reportRepository) ListAll(ctx context.Context, opts interfaces.ReportListOptions, params *utils.PaginationParams) ([]*models.Report, int64, error) {
	plan := ListPlan{Level: PlanRequested, Sort: "createdAt", Desc: true}
	if opts.Status != "" {
		plan.Filters = append(plan.Filters, FieldFilter{Path: "status", Op: "==", Value: string(opts.Status)})
	}
	if opts.Type != "" {
		plan.Filters = append(plan.Filters, FieldFilter{Path: "type", Op: "==", Value: string(opts.Type)})
	}

	var reports []*models.Report
	executed, err := RunWithFallback(plan, func(p ListPlan) error {
		docs, err := fetchPage(ctx, p.apply(r.reports().Query), params)
		if err != nil {
			return err
		}
		reports, err = decodeReports(docs)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	if executed.Level != plan.Level {
		r.log.WithField("plan", executed.Level.String()).
			Warn("report listing filters dropped after missing-index failure")
	}

	total, err := countAll(ctx, r.reports().Query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	return reports, total, nil
}

func (r *reportRepository) ListByReporter(ctx context.Context, reporterID string, params *utils.PaginationParams) ([]*models.Report, error) {
	q := r.reports().
		Where("reporterId", "==", reporterID).
		OrderBy("createdAt", firestore.Desc)

	docs, err := fetchPage(ctx, q, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by reporter: %w", err)
	}
	return decodeReports(docs)
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	ref := r.reports().NewDoc()
	if _, err := ref.Create(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	report.ID = ref.ID
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	doc, err := getExisting(ctx, r.reports().Doc(id))
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return decodeReport(doc)
}

func (r *reportRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	ref := r.reports().Doc(id)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	updates["updatedAt"] = time.Now()
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{Path: path, Value: value})
	}

	if _, err := ref.Update(ctx, fsUpdates); err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) error {
	ref := r.reports().Doc(id)
	if _, err := getExisting(ctx, ref); err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

func decodeReports(docs []*firestore.DocumentSnapshot) ([]*models.Report, error) {
	reports := make([]*models.Report, 0, len(docs))
	for _, doc := range docs {
		report, err := decodeReport(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
