package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexdraft/lexdraft/internal/store"
)

// CheckpointStore persists suspended-run checkpoints through a store
// adapter, keyed by run ID.
type CheckpointStore struct {
	adapter store.Adapter
}

// NewCheckpointStore creates a CheckpointStore backed by the given adapter.
// If adapter is nil, an in-memory adapter is used.
func NewCheckpointStore(adapter store.Adapter) *CheckpointStore {
	if adapter == nil {
		adapter = store.NewMemoryAdapter()
	}
	return &CheckpointStore{adapter: adapter}
}

// Save persists a checkpoint under its run ID.
func (s *CheckpointStore) Save(ctx context.Context, cp *Checkpoint) error {
	raw, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("agent: encode checkpoint: %w", err)
	}
	return s.adapter.Set(ctx, cp.RunID, raw)
}

// Load retrieves the checkpoint for a run. Returns ErrNoCheckpoint if the
// run is not suspended.
func (s *CheckpointStore) Load(ctx context.Context, runID string) (*Checkpoint, error) {
	raw, ok, err := s.adapter.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoCheckpoint, runID)
	}

	var cp Checkpoint
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, fmt.Errorf("agent: decode checkpoint: %w", err)
	}
	return &cp, nil
}

// Delete discards the checkpoint for a run. Abandoning a suspended run
// needs nothing more than this; no other resource is held.
func (s *CheckpointStore) Delete(ctx context.Context, runID string) error {
	return s.adapter.Delete(ctx, runID)
}
