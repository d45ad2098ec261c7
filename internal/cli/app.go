package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/ecotrack/internal/classify"
	"github.com/rshade/ecotrack/internal/config"
	"github.com/rshade/ecotrack/internal/logging"
	"github.com/rshade/ecotrack/internal/state"
	"github.com/rshade/ecotrack/internal/store"
	"github.com/rshade/ecotrack/internal/streak"
)

// Options injects collaborators into the command tree. Zero values select the
// production implementations.
type Options struct {
	// Store replaces the configured blob store. It is not closed by the CLI.
	Store store.BlobStore
	// Classifier replaces the HTTP classifier built from config.
	Classifier classify.Classifier
	// Clock drives streak dates and log timestamps.
	Clock streak.Clock
	// LookupEnv is used for output mode detection.
	LookupEnv func(string) (string, bool)
}

// app is the per-invocation state shared by every command.
type app struct {
	opts Options

	cfg        *config.Config
	projectDir string
	configErr  error
	logResult  *logging.Result
	logger     zerolog.Logger

	blobs     store.BlobStore
	ownsBlobs bool
	snaps     *store.Snapshots
	service   *classify.Service
}

func newApp(opts Options) *app {
	if opts.Clock == nil {
		opts.Clock = streak.SystemClock{}
	}
	return &app{opts: opts, logger: zerolog.Nop()}
}

// config returns the loaded configuration. It is set by the root
// PersistentPreRunE; commands run outside it get defaults.
func (a *app) config() *config.Config {
	if a.cfg == nil {
		a.cfg = config.New()
	}
	return a.cfg
}

// snapshots opens the configured store on first use.
func (a *app) snapshots(ctx context.Context) (*store.Snapshots, error) {
	if a.snaps != nil {
		return a.snaps, nil
	}
	blobs := a.opts.Store
	if blobs == nil {
		opened, err := store.Open(ctx, a.config().StoreOptions())
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", a.config().Storage.Backend, err)
		}
		blobs = opened
		a.ownsBlobs = true
	}
	a.blobs = blobs
	a.snaps = store.NewSnapshots(blobs)
	return a.snaps, nil
}

// loadUserData opens the store and reads the aggregate.
func (a *app) loadUserData(ctx context.Context) (*store.Snapshots, state.UserData, error) {
	snaps, err := a.snapshots(ctx)
	if err != nil {
		return nil, state.UserData{}, err
	}
	d, err := snaps.LoadUserData(ctx)
	if err != nil {
		return nil, state.UserData{}, err
	}
	return snaps, d, nil
}

// mutate applies fn to the stored aggregate and persists the result.
// Persistence failures are logged by the store, not returned.
func (a *app) mutate(ctx context.Context, fn func(state.UserData) state.UserData) (state.UserData, error) {
	snaps, d, err := a.loadUserData(ctx)
	if err != nil {
		return state.UserData{}, err
	}
	next := fn(d)
	snaps.Persist(ctx, next)
	return next, nil
}

// classifier builds the classification service on first use.
func (a *app) classifier(ctx context.Context) *classify.Service {
	if a.service != nil {
		return a.service
	}
	log := logging.FromContext(ctx)
	cfg := a.config().Classifier

	remote := a.opts.Classifier
	if remote == nil && cfg.Endpoint != "" {
		remote = classify.NewHTTPClient(cfg.Endpoint, cfg.APIKey(), &http.Client{Timeout: cfg.Timeout})
	}

	var cache *classify.FileCache
	if cfg.CacheEnabled {
		c, err := classify.NewFileCache(a.config().ClassifierCacheDir(), cfg.CacheTTL)
		if err != nil {
			log.Warn().Err(err).Msg("classification cache disabled")
		} else {
			cache = c
		}
	}

	a.service = classify.NewService(remote, cache)
	return a.service
}

func (a *app) today() streak.Date {
	return streak.Today(a.opts.Clock)
}

// close releases the store and the log file.
func (a *app) close() error {
	var errs []error
	if a.ownsBlobs && a.blobs != nil {
		errs = append(errs, a.blobs.Close())
	}
	a.blobs, a.snaps, a.ownsBlobs = nil, nil, false
	if a.logResult != nil {
		errs = append(errs, a.logResult.Close())
		a.logResult = nil
	}
	return errors.Join(errs...)
}

// closeOnError releases resources when a command fails before
// PersistentPostRunE would run.
func (a *app) closeOnError(cmd *cobra.Command, err error) error {
	if err != nil {
		if closeErr := a.close(); closeErr != nil {
			logging.FromContext(cmd.Context()).Debug().Err(closeErr).Msg("cleanup after failure")
		}
	}
	return err
}
