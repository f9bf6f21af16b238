package update

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/simplehac/simpletoolkit/internal/api"
	"github.com/simplehac/simpletoolkit/internal/model"
	"golang.org/x/mod/semver"
)

var (
	// ErrInProgress is returned when a check is already running
	ErrInProgress = errors.New("update check already in progress")

	// ErrInvalidData is returned when the backend reply has no version
	ErrInvalidData = errors.New("invalid update data")
)

// Result is the outcome of an update check
type Result struct {
	Current   string
	Info      model.UpdateInfo
	Available bool
}

// Checker compares the running version with the latest release
type Checker struct {
	source   api.UpdateSource
	current  string
	checking atomic.Bool
}

// NewChecker creates a checker for the running version current
func NewChecker(source api.UpdateSource, current string) *Checker {
	return &Checker{source: source, current: current}
}

// Current returns the running version
func (c *Checker) Current() string {
	return c.current
}

// Check asks the backend for the latest release. Concurrent calls return ErrInProgress.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	if !c.checking.CompareAndSwap(false, true) {
		return nil, ErrInProgress
	}
	defer c.checking.Store(false)

	info, err := c.source.CheckUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("update check failed: %w", err)
	}
	if info == nil || strings.TrimSpace(info.LatestVersion) == "" {
		return nil, ErrInvalidData
	}

	result := &Result{
		Current:   c.current,
		Info:      *info,
		Available: IsNewer(info.LatestVersion, c.current),
	}
	log.Printf("Update check: current %s, latest %s, available %v", c.current, info.LatestVersion, result.Available)
	return result, nil
}

// IsNewer reports whether latest is a newer release than current. Versions
// are compared as semantic versions, with or without a leading "v"; if
// either is not a valid semantic version they are compared as plain strings
// and any difference counts as newer.
func IsNewer(latest, current string) bool {
	l := normalize(latest)
	c := normalize(current)
	if semver.IsValid(l) && semver.IsValid(c) {
		return semver.Compare(l, c) > 0
	}
	return strings.TrimPrefix(l, "v") != strings.TrimPrefix(c, "v")
}

func normalize(version string) string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
