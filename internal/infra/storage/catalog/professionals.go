package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	"github.com/lucasmrqs/EAS-BookingService/pkg/dbmetrics"
	"github.com/lucasmrqs/EAS-BookingService/pkg/psqlbuilder"
)

var professionalColumns = []string{
	"id",
	"name",
	"role",
	"offered_service_ids",
	"weekly_schedule",
	"created_at",
	"updated_at",
}

// ProfessionalRepository stores professionals, their offered services and
// weekly schedules. Offered ids live in a uuid[] column, the schedule in jsonb.
type ProfessionalRepository struct {
	db DBExecutor
}

// NewProfessionalRepository builds a repository over db.
func NewProfessionalRepository(db DBExecutor) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

// Create inserts a new professional. The caller assigns the id.
func (r *ProfessionalRepository) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := json.Marshal(p.WeeklySchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("professionals").
		Columns("id", "name", "role", "offered_service_ids", "weekly_schedule").
		Values(p.ID, p.Name, p.Role, pq.Array(uuidStrings(p.OfferedServiceIDs)), schedule).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// GetByID fetches a professional by id.
func (r *ProfessionalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProfessional(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}
	return p, nil
}

// List returns all professionals ordered by name.
func (r *ProfessionalRepository) List(ctx context.Context) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// Update rewrites the mutable fields of a professional.
func (r *ProfessionalRepository) Update(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedule, err := json.Marshal(p.WeeklySchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("professionals").
		Set("name", p.Name).
		Set("role", p.Role).
		Set("offered_service_ids", pq.Array(uuidStrings(p.OfferedServiceIDs))).
		Set("weekly_schedule", schedule).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}

// Delete removes a professional row. Cascading cancellation of future
// appointments is the remove_professional usecase's responsibility, inside
// one transaction with this delete.
func (r *ProfessionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

func scanProfessional(row rowScanner) (*domain.Professional, error) {
	var p domain.Professional
	var offered pq.StringArray
	var schedule []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Role,
		&offered,
		&schedule,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.OfferedServiceIDs, err = parseUUIDs(offered)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(schedule, &p.WeeklySchedule); err != nil {
		return nil, fmt.Errorf("unmarshal weekly schedule: %w", err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("parse uuid %q: %w", v, err)
		}
		out[i] = id
	}
	return out, nil
}
