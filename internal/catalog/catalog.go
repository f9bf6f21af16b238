package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/simplehac/simpletoolkit/internal/api"
	"github.com/simplehac/simpletoolkit/internal/model"
)

// Refresh defaults
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Catalog caches the disk image list
type Catalog struct {
	source     api.CatalogSource
	maxRetries int
	retryDelay time.Duration
	now        func() time.Time

	mu       sync.RWMutex
	images   []model.DiskImage
	loadedAt time.Time
}

// New creates a catalog backed by source. Non-positive retry settings use
// the defaults.
func New(source api.CatalogSource, maxRetries int, retryDelay time.Duration) *Catalog {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Catalog{
		source:     source,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		now:        time.Now,
	}
}

// Load fetches the image list. force sends a fresh cache buster so
// intermediaries cannot serve a stale list.
func (c *Catalog) Load(ctx context.Context, force bool) ([]model.DiskImage, error) {
	cacheBuster := ""
	if force {
		cacheBuster = strconv.FormatInt(c.now().UnixMilli(), 10)
	}

	images, err := c.source.ListImages(ctx, cacheBuster)
	if err != nil {
		return nil, fmt.Errorf("failed to load image list: %w", err)
	}

	c.mu.Lock()
	c.images = append([]model.DiskImage(nil), images...)
	c.loadedAt = c.now()
	c.mu.Unlock()

	log.Printf("Loaded %d disk images", len(images))
	return images, nil
}

// Refresh force-loads the list, retrying up to the configured number of
// times with a fixed delay. The last error is returned when all attempts fail.
func (c *Catalog) Refresh(ctx context.Context) ([]model.DiskImage, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			log.Printf("Retrying image list refresh, attempt %d", attempt+1)
		}

		images, err := c.Load(ctx, true)
		if err == nil {
			return images, nil
		}
		lastErr = err
		log.Printf("Image list refresh attempt %d failed: %v", attempt+1, err)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// Images returns the last loaded list
func (c *Catalog) Images() []model.DiskImage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.DiskImage(nil), c.images...)
}

// LoadedAt returns when the list was last loaded, zero if never
func (c *Catalog) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}
