package suite

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

const (
	maxWaitDuration = 10 * time.Second
	randomSeed      = 20241019
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rules entity.Rules
}

// New returns a context bound to the test and a suite with quick-start rules.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	rules := entity.DefaultRules()
	rules.AutoDeploy = true

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rules:  rules,
	}
}

// Rand returns a deterministic random source so matches are reproducible.
func (that *Suite) Rand() *rand.Rand {
	return rand.New(rand.NewSource(randomSeed))
}
