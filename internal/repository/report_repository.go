package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"animeverse/internal/models"
)

type reportRepository struct {
	db *sqlx.DB
}

// ErrReportResolved is returned when a status transition is attempted on a
// report that already left the Pending state. Reviewed and Dismissed are
// terminal.
var ErrReportResolved = errors.New("жалоба уже рассмотрена")

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) (int64, error) {
	query := `
		INSERT INTO reports (post_id, post_title, post_author, reporter_id, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING report_id
	`

	report.Status = models.ReportPending

	var reportID int64
	err := r.db.GetContext(ctx, &reportID, query,
		report.PostID, report.PostTitle, report.PostAuthor,
		report.ReporterID, report.Reason, report.Status)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании жалобы: %w", err)
	}

	report.ReportID = reportID
	return reportID, nil
}

func (r *reportRepository) GetByID(ctx context.Context, reportID int64) (*models.Report, error) {
	query := `SELECT * FROM reports WHERE report_id = $1`

	var report models.Report
	err := r.db.GetContext(ctx, &report, query, reportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("жалоба с ID %d: %w", reportID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении жалобы: %w", err)
	}

	return &report, nil
}

func (r *reportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	query := `SELECT * FROM reports ORDER BY created_at DESC`

	var reports []models.Report
	err := r.db.SelectContext(ctx, &reports, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка жалоб: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) GetByStatus(ctx context.Context, status string) ([]models.Report, error) {
	query := `SELECT * FROM reports WHERE status = $1 ORDER BY created_at DESC`

	var reports []models.Report
	err := r.db.SelectContext(ctx, &reports, query, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении жалоб по статусу: %w", err)
	}

	return reports, nil
}

// Resolve moves a Pending report into a terminal status. The WHERE clause
// enforces the state machine: a report that is no longer Pending is not
// touched and the caller gets ErrReportResolved.
func (r *reportRepository) Resolve(ctx context.Context, reportID int64, status string) error {
	query := `UPDATE reports SET status = $2 WHERE report_id = $1 AND status = 'Pending'`

	result, err := r.db.ExecContext(ctx, query, reportID, status)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса жалобы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		// either no such report or it was resolved earlier
		if _, err := r.GetByID(ctx, reportID); err != nil {
			return err
		}
		return ErrReportResolved
	}

	return nil
}

func (r *reportRepository) CountPending(ctx context.Context) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM reports WHERE status = 'Pending'`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте необработанных жалоб: %w", err)
	}

	return count, nil
}
