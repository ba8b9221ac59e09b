package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbp/clbp/internal/assessment"
)

var _ assessment.Storage = (*Record)(nil)

func TestProgressStoreOverSQLite(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	rec := NewRecord(st.KV(), ProgressKey)

	ps := assessment.NewProgressStore(rec, assessment.DefaultConfig())
	defer ps.Close()
	ps.Load(ctx)
	ps.RecordResponse("q1", "3")
	require.False(t, ps.Advance(ctx))

	raw, ok, err := st.KV().Get(ctx, ProgressKey)
	require.NoError(t, err)
	require.True(t, ok, "advance writes the record")
	assert.Contains(t, string(raw), `"currentStepIndex":2`)

	reloaded := assessment.NewProgressStore(rec, assessment.DefaultConfig())
	defer reloaded.Close()
	sess := reloaded.Load(ctx)
	assert.Equal(t, 2, sess.CurrentStep)
	assert.Equal(t, map[string]string{"q1": "3"}, sess.Responses)
	assert.Equal(t, []int{1}, sess.CompletedList())

	require.NoError(t, reloaded.CompleteAndClear(ctx))
	_, ok, err = st.KV().Get(ctx, ProgressKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProgressStoreIgnoresCorruptRecord(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	require.NoError(t, st.KV().Put(ctx, ProgressKey, []byte("{not json")))

	ps := assessment.NewProgressStore(NewRecord(st.KV(), ProgressKey), assessment.DefaultConfig())
	defer ps.Close()
	assert.True(t, ps.Load(ctx).IsFresh())
}
