package factory

import (
	"time"

	"github.com/gou177/vezdecod-API-50/internal/dependencies/mocks"
	"github.com/gou177/vezdecod-API-50/internal/services/game"
	"github.com/gou177/vezdecod-API-50/internal/storage/memory"
	"github.com/gou177/vezdecod-API-50/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. The mock random leaves boards unshuffled, so pair ids lie
// row-major: (0,0)/(0,1) match, (0,2)/(0,3) match, and so on.
func NewTestApp(gameCfg game.Config) *TestApp {
	if gameCfg.SessionTTL == 0 {
		gameCfg = game.DefaultConfig()
	}

	results := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(results, mockClock, mockRandom, gameCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
