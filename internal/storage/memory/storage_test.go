package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gou177/vezdecod-API-50/internal/model"
)

func sampleResult(token string, score int) *model.GameResult {
	return &model.GameResult{
		Token:     token,
		Score:     score,
		Won:       score > 0,
		TilesOpen: 16,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		EndedAt:   time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC),
	}
}

func TestSaveAndGetResult(t *testing.T) {
	s := New()
	ctx := context.Background()

	saved := sampleResult("game-1", 240)
	require.NoError(t, s.SaveResult(ctx, saved))

	got, err := s.GetResult(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	// Stored copy must be isolated from the caller's struct
	saved.Score = 0
	got, err = s.GetResult(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, 240, got.Score)
}

func TestGetResultMissing(t *testing.T) {
	s := New()

	_, err := s.GetResult(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrResultNotFound)
}

func TestTopResultsOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, r := range []*model.GameResult{
		{Token: "mid", Score: 90, EndedAt: base.Add(time.Minute)},
		{Token: "high", Score: 240, EndedAt: base},
		{Token: "low", Score: -40, EndedAt: base.Add(2 * time.Minute)},
		// Ties break on the earlier finish
		{Token: "mid-earlier", Score: 90, EndedAt: base},
	} {
		require.NoError(t, s.SaveResult(ctx, r))
	}

	results, err := s.TopResults(ctx, 0)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "high", results[0].Token)
	assert.Equal(t, "mid-earlier", results[1].Token)
	assert.Equal(t, "mid", results[2].Token)
	assert.Equal(t, "low", results[3].Token)
}

func TestTopResultsLimit(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i, token := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveResult(ctx, sampleResult(token, i*30)))
	}

	results, err := s.TopResults(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "c", results[0].Token)
	assert.Equal(t, "b", results[1].Token)
}

func TestSaveResultOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveResult(ctx, sampleResult("game-1", 10)))
	require.NoError(t, s.SaveResult(ctx, sampleResult("game-1", 60)))

	got, err := s.GetResult(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, 60, got.Score)

	results, err := s.TopResults(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
