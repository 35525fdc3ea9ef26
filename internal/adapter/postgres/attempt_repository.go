package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-fanout/internal/core/domain"
)

// AttemptRepository implements port.AttemptRepository using pgxpool for
// PostgreSQL. Each platform result is kept whole as JSONB next to the
// columns used for lookups.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository returns a new repository instance.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

// SaveAttempt upserts the attempt and replaces its results in one
// transaction.
func (r *AttemptRepository) SaveAttempt(ctx context.Context, a domain.Attempt) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	platforms := make([]string, len(a.Platforms))
	for i, p := range a.Platforms {
		platforms[i] = string(p)
	}
	_, err = tx.Exec(ctx, `INSERT INTO distribution_attempts (id, campaign_name, platforms, created_at, completed_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE SET campaign_name = EXCLUDED.campaign_name, platforms = EXCLUDED.platforms, completed_at = EXCLUDED.completed_at`,
		a.ID, a.CampaignName, platforms, a.CreatedAt, a.CompletedAt)
	if err != nil {
		return fmt.Errorf("upsert attempt %s: %w", a.ID, err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM platform_results WHERE attempt_id = $1`, a.ID); err != nil {
		return fmt.Errorf("clear results of %s: %w", a.ID, err)
	}
	for i, res := range a.Results {
		var raw []byte
		if raw, err = json.Marshal(res); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO platform_results (attempt_id, position, platform, success, state, campaign_id, orphan_count, result)
VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),$7,$8)`,
			a.ID, i, string(res.Platform), res.Success, string(res.State), res.CampaignID, len(res.Orphans), raw)
		if err != nil {
			return fmt.Errorf("insert %s result of %s: %w", res.Platform, a.ID, err)
		}
	}
	return nil
}

// GetAttempt returns an attempt with its results in fan-out order.
func (r *AttemptRepository) GetAttempt(ctx context.Context, id string) (*domain.Attempt, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_name, platforms, created_at, completed_at FROM distribution_attempts WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanAttempt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = r.loadResults(ctx, []*domain.Attempt{&a}); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListOrphaned returns attempts that left paused objects on a platform,
// newest first.
func (r *AttemptRepository) ListOrphaned(ctx context.Context, limit int) ([]domain.Attempt, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `SELECT a.id, a.campaign_name, a.platforms, a.created_at, a.completed_at
FROM distribution_attempts a
WHERE EXISTS (SELECT 1 FROM platform_results pr WHERE pr.attempt_id = a.id AND pr.orphan_count > 0)
ORDER BY a.created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	attempts, err := pgx.CollectRows(rows, scanAttempt)
	if err != nil {
		return nil, err
	}
	ptrs := make([]*domain.Attempt, len(attempts))
	for i := range attempts {
		ptrs[i] = &attempts[i]
	}
	if err = r.loadResults(ctx, ptrs); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *AttemptRepository) loadResults(ctx context.Context, attempts []*domain.Attempt) error {
	if len(attempts) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Attempt, len(attempts))
	ids := make([]string, 0, len(attempts))
	for _, a := range attempts {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	rows, err := r.pool.Query(ctx, `SELECT attempt_id, result FROM platform_results WHERE attempt_id = ANY($1::uuid[]) ORDER BY attempt_id, position`, ids)
	if err != nil {
		return err
	}
	type rawResult struct {
		AttemptID string
		Result    []byte
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawResult, error) {
		var rr rawResult
		err := row.Scan(&rr.AttemptID, &rr.Result)
		return rr, err
	})
	if err != nil {
		return err
	}
	for _, rr := range raw {
		var res domain.PlatformCampaignResult
		if err = json.Unmarshal(rr.Result, &res); err != nil {
			return fmt.Errorf("decode result of %s: %w", rr.AttemptID, err)
		}
		a := byID[rr.AttemptID]
		a.Results = append(a.Results, res)
	}
	return nil
}

func scanAttempt(row pgx.CollectableRow) (domain.Attempt, error) {
	var (
		a         domain.Attempt
		platforms []string
		completed *time.Time
	)
	if err := row.Scan(&a.ID, &a.CampaignName, &platforms, &a.CreatedAt, &completed); err != nil {
		return a, err
	}
	for _, p := range platforms {
		a.Platforms = append(a.Platforms, domain.Platform(p))
	}
	if completed != nil {
		t := completed.UTC()
		a.CompletedAt = &t
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}
