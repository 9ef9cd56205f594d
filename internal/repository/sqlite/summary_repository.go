package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/models"
	"github.com/vytor/cyberquest/internal/repository"
)

type summaryRepository struct {
	db *sql.DB
}

// NewSummaryRepository creates a new SummaryRepository implementation
func NewSummaryRepository(db *sql.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Insert(ctx context.Context, s models.Summary) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("summary_repo")
	log.Debug("inserting summary: quiz_id=%s score=%d percentage=%d", s.QuizID, s.Score, s.Percentage)

	query, args, err := sqlBuilder.Insert("quiz_summaries").
		Columns("quiz_id", "score", "percentage", "recorded_at").
		Values(s.QuizID, s.Score, s.Percentage, s.Timestamp).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to insert summary: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to read summary id: %v", err)
		return 0, err
	}
	log.Debug("summary inserted: id=%d", id)
	return id, nil
}

func (r *summaryRepository) List(ctx context.Context, filter models.SummaryFilter) ([]models.SummaryRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("summary_repo")
	log.Debug("listing summaries with filter: quiz_id=%s since=%v limit=%d", filter.QuizID, filter.Since, filter.Limit)

	query := sqlBuilder.Select("id", "quiz_id", "score", "percentage", "recorded_at").
		From("quiz_summaries")
	if filter.QuizID != "" {
		query = query.Where(squirrel.Eq{"quiz_id": filter.QuizID})
	}
	if !filter.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{"recorded_at": filter.Since.UnixMilli()})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	query = query.OrderBy("recorded_at DESC", "id DESC").Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to list summaries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.SummaryRecord
	for rows.Next() {
		var rec models.SummaryRecord
		if err := rows.Scan(&rec.ID, &rec.QuizID, &rec.Score, &rec.Percentage, &rec.Timestamp); err != nil {
			log.Error("failed to scan summary row: %v", err)
			return nil, err
		}
		records = append(records, rec)
	}
	log.Debug("found %d summaries", len(records))
	return records, rows.Err()
}

func (r *summaryRepository) Count(ctx context.Context, quizID string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("summary_repo")
	log.Debug("counting summaries: quiz_id=%s", quizID)

	query := sqlBuilder.Select("COUNT(*)").From("quiz_summaries")
	if quizID != "" {
		query = query.Where(squirrel.Eq{"quiz_id": quizID})
	}
	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, sql, args...).Scan(&n); err != nil {
		log.Error("failed to count summaries: %v", err)
		return 0, err
	}
	return n, nil
}
