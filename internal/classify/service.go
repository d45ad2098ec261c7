package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/rshade/ecotrack/internal/logging"
)

// OfflineMessage is shown when no classification could be obtained.
const OfflineMessage = "Eco-Expert is currently offline. Please try again later."

// Notice is the user-facing failure of a classification. It never carries a
// guessed category.
type Notice struct {
	Message string
	Err     error
}

func (n *Notice) Error() string {
	return n.Message
}

func (n *Notice) Unwrap() error {
	return n.Err
}

// Service resolves items from the bundled guide, then the cache, then the
// remote classifier. Concurrent identical requests share one remote call.
type Service struct {
	remote Classifier
	cache  *FileCache
	group  singleflight.Group
}

// NewService builds a Service. remote and cache may be nil.
func NewService(remote Classifier, cache *FileCache) *Service {
	return &Service{remote: remote, cache: cache}
}

// Classify returns a classification or a *Notice. The caller may abandon the
// wait by cancelling ctx.
func (s *Service) Classify(ctx context.Context, item string) (Result, error) {
	log := logging.FromContext(ctx)
	item = strings.TrimSpace(item)
	if item == "" {
		return Result{}, ErrEmptyItem
	}

	if it, ok := Find(item); ok {
		return Result{Item: it, Source: SourceGuide}, nil
	}

	if s.cache != nil {
		res, err := s.cache.Get(item)
		if err == nil {
			res.Source = SourceCache
			return res, nil
		}
		if !errors.Is(err, ErrCacheNotFound) && !errors.Is(err, ErrCacheExpired) {
			log.Debug().Err(err).Str("item", item).Msg("classification cache read failed")
		}
	}

	if s.remote == nil {
		return Result{}, &Notice{Message: OfflineMessage, Err: fmt.Errorf("%w: %w", ErrServiceUnavailable, ErrNotConfigured)}
	}

	ch := s.group.DoChan(normalizeItem(item), func() (any, error) {
		return s.remote.Classify(context.WithoutCancel(ctx), item)
	})

	select {
	case <-ctx.Done():
		return Result{}, &Notice{Message: OfflineMessage, Err: ctx.Err()}
	case r := <-ch:
		if r.Err != nil {
			log.Warn().Err(r.Err).Str("item", item).Msg("classification failed")
			return Result{}, &Notice{Message: OfflineMessage, Err: r.Err}
		}
		res, _ := r.Val.(Result)
		if s.cache != nil {
			if err := s.cache.Set(item, res); err != nil {
				log.Debug().Err(err).Str("item", item).Msg("classification cache write failed")
			}
		}
		log.Debug().Str("item", item).Str("category", string(res.Category)).Bool("shared", r.Shared).
			Msg("classified item")
		return res, nil
	}
}
