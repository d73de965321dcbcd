package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/internal/store"
)

func TestCheckpointStoreSaveLoadDelete(t *testing.T) {
	cs := NewCheckpointStore(store.NewMemoryAdapter())
	ctx := context.Background()

	cp := &Checkpoint{
		RunID: "run-1",
		Node:  NodeHumanReview,
		State: State{
			Messages: []ai.Message{ai.NewUserMessage("hello")},
			Steps:    1,
		},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, cs.Save(ctx, cp))

	got, err := cs.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, cp.RunID, got.RunID)
	assert.Equal(t, cp.Node, got.Node)
	assert.Len(t, got.State.Messages, 1)

	require.NoError(t, cs.Delete(ctx, "run-1"))
	_, err = cs.Load(ctx, "run-1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestCheckpointStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	adapter, err := store.NewFileAdapter(dir)
	require.NoError(t, err)

	cs := NewCheckpointStore(adapter)
	require.NoError(t, cs.Save(ctx, &Checkpoint{
		RunID: "run-2",
		Node:  NodeHumanReview,
		State: State{Steps: 3},
	}))

	reopened, err := store.NewFileAdapter(dir)
	require.NoError(t, err)

	got, err := NewCheckpointStore(reopened).Load(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, 3, got.State.Steps)
}

func TestCheckpointStoreDefaultsToMemory(t *testing.T) {
	cs := NewCheckpointStore(nil)
	ctx := context.Background()

	require.NoError(t, cs.Save(ctx, &Checkpoint{RunID: "run-3", Node: NodeHumanReview}))
	got, err := cs.Load(ctx, "run-3")
	require.NoError(t, err)
	assert.Equal(t, "run-3", got.RunID)
}
