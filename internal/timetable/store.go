package timetable

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/salahbar/salahbar/internal/geoip"
	"github.com/salahbar/salahbar/pkg/logger"
)

// Locator resolves the host's approximate location.
type Locator interface {
	Locate(ctx context.Context) (*geoip.Location, error)
}

// Fetcher fetches a day's timings for a coordinate.
type Fetcher interface {
	Timings(ctx context.Context, lat, lon float64, at time.Time) (*Document, error)
}

// Store owns the on-disk timetable cache and the freshness policy:
//
//  1. cache dated today        -> return it, no network
//  2. locate + fetch succeeds  -> stamp today, persist, return
//  3. any cache exists         -> return it marked Offline
//  4. nothing                  -> ErrNoData
//
// Failures never erase a still-present cache. A cache that fails to parse
// is treated as absent; the guard and the panel run as independent
// processes over this file, so a torn read must degrade, not crash.
type Store struct {
	fs     afero.Fs
	path   string
	locate Locator
	fetch  Fetcher
	log    logger.Logger
}

// NewStore creates a Store over the given filesystem and cache path.
func NewStore(fs afero.Fs, path string, locate Locator, fetch Fetcher, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Store{fs: fs, path: path, locate: locate, fetch: fetch, log: log}
}

// Timetable returns the timetable valid for now's calendar date, applying
// the freshness policy above.
func (s *Store) Timetable(ctx context.Context, now time.Time) (*Timetable, error) {
	today := now.Format(DateLayout)

	cached := s.loadCache()
	if cached != nil && cached.Date.Gregorian.Date == today {
		label := cached.Meta.Timezone
		if label == "" {
			label = "Cached"
		}
		return fromDocument(cached, label, false), nil
	}

	if doc, label, err := s.refetch(ctx, now, today); err == nil {
		return fromDocument(doc, label, false), nil
	} else {
		s.log.Warning("timetable fetch failed: %v", err)
	}

	if cached != nil {
		return fromDocument(cached, "Offline", true), nil
	}
	return nil, ErrNoData
}

func (s *Store) refetch(ctx context.Context, now time.Time, today string) (*Document, string, error) {
	loc, err := s.locate.Locate(ctx)
	if err != nil {
		return nil, "", err
	}
	doc, err := s.fetch.Timings(ctx, loc.Latitude, loc.Longitude, now)
	if err != nil {
		return nil, "", err
	}
	// Stamp the fetch date so the cache validates against today, whatever
	// date arithmetic the API applied.
	doc.Date.Gregorian.Date = today
	if err := s.saveCache(doc); err != nil {
		// A failed write degrades to fetch-every-run, nothing worse.
		s.log.Warning("timetable cache write failed: %v", err)
	}
	return doc, loc.City, nil
}

func (s *Store) loadCache() *Document {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warning("timetable cache unreadable, treating as absent: %v", err)
		return nil
	}
	return &doc
}

func (s *Store) saveCache(doc *Document) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0644)
}
