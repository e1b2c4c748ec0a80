package budgets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetd/internal/errs"
	"budgetd/internal/storage/memory"
)

func TestGet_EmptyWhenUnset(t *testing.T) {
	svc := New(memory.New())

	limits, err := svc.Get(context.Background(), "2024-01")
	require.NoError(t, err)
	assert.NotNil(t, limits)
	assert.Empty(t, limits)
}

func TestSet_WholesaleReplace(t *testing.T) {
	store := memory.New()
	svc := New(store)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "2024-01", map[string]any{"food": 100.0}))
	require.NoError(t, svc.Set(ctx, "2024-01", map[string]any{"rent": 500.0}))

	limits, err := svc.Get(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"rent": 500}, limits)

	// only one entry exists for the month
	doc, _ := store.Load(ctx)
	assert.Len(t, doc.Budgets, 1)
}

func TestSet_SeparateMonths(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "2024-01", map[string]any{"food": 100.0}))
	require.NoError(t, svc.Set(ctx, "2024-02", map[string]any{"food": 150.0}))

	jan, err := svc.Get(ctx, "2024-01")
	require.NoError(t, err)
	feb, err := svc.Get(ctx, "2024-02")
	require.NoError(t, err)
	assert.Equal(t, 100.0, jan["food"])
	assert.Equal(t, 150.0, feb["food"])
}

func TestSet_CoercesNumericStrings(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "2024-01", map[string]any{"food": "250.5"}))
	limits, err := svc.Get(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, 250.5, limits["food"])
}

func TestSet_Validation(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	err := svc.Set(ctx, "2024-01", map[string]any{"  ": 100.0})
	var ve *errs.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Category names must be non-empty strings", ve.Message)

	err = svc.Set(ctx, "2024-01", map[string]any{"food": "lots"})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Limit for food must be a number", ve.Message)

	err = svc.Set(ctx, "2024-01", map[string]any{"food": -1.0})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Limit for food must be >= 0", ve.Message)

	// nothing persisted on failure
	limits, getErr := svc.Get(ctx, "2024-01")
	require.NoError(t, getErr)
	assert.Empty(t, limits)
}

func TestSet_ZeroLimitAllowed(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "2024-01", map[string]any{"food": 0.0}))
	limits, err := svc.Get(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, 0.0, limits["food"])
}
