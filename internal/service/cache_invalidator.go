package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/gym-api/internal/cache"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/events"
	"github.com/phrazzld/gym-api/internal/platform/logger"
)

// PersonCacheInvalidator drops cached persons whose trainer or gym was
// deleted. The database clears those references itself, so the cached
// copies would otherwise be stale.
type PersonCacheInvalidator struct {
	cache  *cache.EntityCache[domain.Person]
	logger *slog.Logger
}

var _ events.EventHandler = (*PersonCacheInvalidator)(nil)

// NewPersonCacheInvalidator creates a handler bound to personCache.
func NewPersonCacheInvalidator(personCache *cache.EntityCache[domain.Person], logger *slog.Logger) *PersonCacheInvalidator {
	if personCache == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("person cache cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PersonCacheInvalidator{
		cache:  personCache,
		logger: logger.With(slog.String("component", "person_cache_invalidator")),
	}
}

// HandleEvent implements events.EventHandler.
func (h *PersonCacheInvalidator) HandleEvent(ctx context.Context, event *events.EntityEvent) error {
	var match func(domain.Person) bool
	switch {
	case event.Is(events.EntityGym, events.ActionDeleted):
		match = func(p domain.Person) bool { return p.InGym(event.EntityID) }
	case event.Is(events.EntityTrainer, events.ActionDeleted):
		match = func(p domain.Person) bool { return p.TrainedBy(event.EntityID) }
	default:
		return nil
	}

	removed := h.cache.RemoveFunc(match)
	logger.FromContextOrDefault(ctx, h.logger).Debug("invalidated cached persons",
		slog.String("entity", event.Entity),
		slog.Int64("entity_id", event.EntityID),
		slog.Int("removed", removed))
	return nil
}
