package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/ecotrack/internal/logging"
	"github.com/rshade/ecotrack/internal/state"
)

// Keys under which the engine state is stored.
const (
	KeyUserData  = "ecotracker_v3_data"
	KeyWorkspace = "et_workspace"
	KeyMode      = "et_mode"
)

// Snapshot schema versioning.
const (
	SchemaVersion    = "3.0.0"
	SchemaConstraint = "^3.0.0"
)

// snapshotEnvelope is the serialized form of a UserData snapshot. Blobs
// written without an envelope are read as bare UserData at SchemaVersion.
type snapshotEnvelope struct {
	SchemaVersion string          `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// Snapshots reads and writes engine state through a BlobStore.
type Snapshots struct {
	blobs BlobStore
}

// NewSnapshots wraps blobs.
func NewSnapshots(blobs BlobStore) *Snapshots {
	return &Snapshots{blobs: blobs}
}

// Blobs returns the underlying store.
func (s *Snapshots) Blobs() BlobStore {
	return s.blobs
}

// LoadUserData returns the stored aggregate, or state.Default when none is
// stored. The result is always normalized.
func (s *Snapshots) LoadUserData(ctx context.Context) (state.UserData, error) {
	raw, ok, err := s.blobs.Get(ctx, KeyUserData)
	if err != nil {
		return state.UserData{}, fmt.Errorf("loading user data: %w", err)
	}
	if !ok {
		return state.Default(), nil
	}

	var env snapshotEnvelope
	if unmarshalErr := json.Unmarshal(raw, &env); unmarshalErr != nil {
		return state.UserData{}, fmt.Errorf("%w: %w", ErrSnapshotCorrupted, unmarshalErr)
	}
	payload := env.Data
	if env.SchemaVersion == "" {
		payload = raw
	} else if checkErr := CheckSchema(env.SchemaVersion); checkErr != nil {
		return state.UserData{}, checkErr
	}

	d := state.Default()
	if unmarshalErr := json.Unmarshal(payload, &d); unmarshalErr != nil {
		return state.UserData{}, fmt.Errorf("%w: %w", ErrSnapshotCorrupted, unmarshalErr)
	}
	return state.Normalize(d), nil
}

// SaveUserData writes the aggregate under the current schema version.
func (s *Snapshots) SaveUserData(ctx context.Context, d state.UserData) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling user data: %w", err)
	}
	blob, err := json.MarshalIndent(snapshotEnvelope{SchemaVersion: SchemaVersion, Data: data}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if putErr := s.blobs.Put(ctx, KeyUserData, blob); putErr != nil {
		return fmt.Errorf("saving user data: %w", putErr)
	}
	return nil
}

// LoadContext returns the stored workspace and mode. Unknown stored values
// read as unset.
func (s *Snapshots) LoadContext(ctx context.Context) (state.Context, error) {
	wsRaw, _, err := s.blobs.Get(ctx, KeyWorkspace)
	if err != nil {
		return state.Context{}, fmt.Errorf("loading workspace: %w", err)
	}
	modeRaw, _, err := s.blobs.Get(ctx, KeyMode)
	if err != nil {
		return state.Context{}, fmt.Errorf("loading mode: %w", err)
	}

	ws, wsErr := state.ParseWorkspace(string(wsRaw))
	mode, modeErr := state.ParseMode(string(modeRaw))
	if wsErr != nil || modeErr != nil {
		logging.FromContext(ctx).Warn().
			Str("workspace", string(wsRaw)).
			Str("mode", string(modeRaw)).
			Msg("ignoring unrecognized stored context")
	}
	return state.Context{Workspace: ws, Mode: mode}, nil
}

// SaveContext writes the workspace and mode. Unset selectors are deleted.
func (s *Snapshots) SaveContext(ctx context.Context, c state.Context) error {
	if err := s.putOrDelete(ctx, KeyWorkspace, string(c.Workspace)); err != nil {
		return fmt.Errorf("saving workspace: %w", err)
	}
	if err := s.putOrDelete(ctx, KeyMode, string(c.Mode)); err != nil {
		return fmt.Errorf("saving mode: %w", err)
	}
	return nil
}

// ResetAll removes every engine key.
func (s *Snapshots) ResetAll(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyUserData, KeyWorkspace, KeyMode} {
		if err := s.blobs.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Persist saves d and logs, rather than returns, any failure. State
// transitions have already committed by the time this runs.
func (s *Snapshots) Persist(ctx context.Context, d state.UserData) {
	if err := s.SaveUserData(ctx, d); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to persist user data")
	}
}

// PersistContext is Persist for the workspace context.
func (s *Snapshots) PersistContext(ctx context.Context, c state.Context) {
	if err := s.SaveContext(ctx, c); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to persist workspace context")
	}
}

// CheckSchema reports whether a snapshot written at version can be read.
func CheckSchema(version string) error {
	constraint, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: invalid schema version %q: %w", ErrSnapshotCorrupted, version, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: version %s does not satisfy %s", ErrIncompatibleSchema, v, SchemaConstraint)
	}
	return nil
}

func (s *Snapshots) putOrDelete(ctx context.Context, key, value string) error {
	if value == "" {
		return s.blobs.Delete(ctx, key)
	}
	return s.blobs.Put(ctx, key, []byte(value))
}
