package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/db"
)

// setupRepository connects to PSQL_TEST_ADDRESS and migrates it. The test is
// skipped when the variable is unset or the database is unreachable.
func setupRepository(t *testing.T) *AttemptRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u, MaxConns: 2})
	if err != nil {
		t.Skipf("db not available: %v", err)
	}
	t.Cleanup(pool.Close)
	require.NoError(t, db.Migrate(addr))
	return NewAttemptRepository(pool)
}

func TestAttemptRepositoryRoundTrip(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Millisecond)

	a := domain.Attempt{
		ID:           uuid.NewString(),
		CampaignName: "Spring Sale",
		Platforms:    []domain.Platform{domain.PlatformMeta, domain.PlatformTikTok},
		CreatedAt:    created,
	}
	require.NoError(t, repo.SaveAttempt(ctx, a))

	got, err := repo.GetAttempt(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CompletedAt)
	assert.Empty(t, got.Results)

	completed := created.Add(3 * time.Second)
	a.CompletedAt = &completed
	a.Results = []domain.PlatformCampaignResult{
		{Platform: domain.PlatformMeta, Success: true, State: domain.StateCreated, CampaignID: "120200000000001"},
		{
			Platform: domain.PlatformTikTok,
			State:    domain.StateFailed,
			Orphans:  []domain.RemoteObject{{Kind: "campaign", ID: "1790000000000001"}},
			Error:    &domain.ResultError{Name: domain.ErrNameRemote, Message: "adgroup/create failed"},
		},
	}
	require.NoError(t, repo.SaveAttempt(ctx, a))

	got, err = repo.GetAttempt(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Platforms, got.Platforms)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, completed.Equal(*got.CompletedAt))
	require.Len(t, got.Results, 2)
	assert.Equal(t, "120200000000001", got.Results[0].CampaignID)
	assert.Equal(t, a.Results[1].Orphans, got.Results[1].Orphans)

	orphaned, err := repo.ListOrphaned(ctx, 500)
	require.NoError(t, err)
	var found bool
	for _, o := range orphaned {
		found = found || o.ID == a.ID
	}
	assert.True(t, found)
}

func TestAttemptRepositoryNotFound(t *testing.T) {
	repo := setupRepository(t)
	_, err := repo.GetAttempt(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAttemptNotFound)
}
