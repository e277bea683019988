package manifest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/quantmind-br/siteview/internal/domain"
	"github.com/quantmind-br/siteview/internal/utils"
)

// Store owns the current manifest, its canonical URL and the selected tag.
//
// Fetches are not ordered: FetchManifest never cancels an earlier call, so
// when calls overlap the one that finishes last decides the held document.
// Callers that care must wait for one fetch before starting the next.
type Store struct {
	fetcher domain.Fetcher
	logger  *utils.Logger

	mu       sync.RWMutex
	url      string
	doc      *Document
	selected *string
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithLogger sets the logger used for debug tracing
func WithLogger(logger *utils.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.WithComponent("store")
		}
	}
}

// NewStore creates a Store that fetches through fetcher
func NewStore(fetcher domain.Fetcher, opts ...StoreOption) *Store {
	s := &Store{
		fetcher: fetcher,
		logger:  utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchManifest fetches and decodes the manifest for rawURL.
//
// Blank input fails with *domain.ValidationError before any I/O; the held
// document is cleared and the canonical URL kept. Otherwise the normalized URL becomes the store's
// canonical URL and exactly one GET is issued. A transport failure yields
// *domain.FetchError, a non-2xx status *domain.HTTPError, a non-JSON body
// *domain.ParseError and a body without items or metadata
// *domain.SchemaError. On any of those the held document is cleared. No
// retries are attempted.
func (s *Store) FetchManifest(ctx context.Context, rawURL string) (*Document, error) {
	if strings.TrimSpace(rawURL) == "" {
		s.mu.Lock()
		s.doc = nil
		s.mu.Unlock()
		return nil, domain.NewValidationError("url", "site URL cannot be empty")
	}

	canonical := utils.NormalizeManifestURL(rawURL)
	s.mu.Lock()
	s.url = canonical
	s.mu.Unlock()

	log := s.logger.WithURL(canonical)
	log.Debug().Msg("Fetching manifest")

	doc, err := s.load(ctx, canonical)

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	if err != nil {
		log.Debug().Err(err).Msg("Manifest fetch failed")
		return nil, err
	}

	log.Debug().Int("items", len(doc.Items)).Msg("Manifest loaded")
	return doc, nil
}

func (s *Store) load(ctx context.Context, canonical string) (*Document, error) {
	resp, err := s.fetcher.Get(ctx, canonical)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return nil, err
		}
		return nil, domain.NewFetchError(canonical, err)
	}
	if !resp.OK() {
		return nil, domain.NewHTTPError(canonical, resp.StatusCode)
	}

	doc, err := Decode(resp.Body)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			parseErr.URL = canonical
		}
		var schemaErr *domain.SchemaError
		if errors.As(err, &schemaErr) {
			schemaErr.URL = canonical
		}
		return nil, err
	}
	return doc, nil
}

// URL returns the canonical manifest URL of the most recent fetch
func (s *Store) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Document returns the held manifest, or nil when none is held
func (s *Store) Document() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// HasDocument reports whether a manifest is held
func (s *Store) HasDocument() bool {
	return s.Document() != nil
}

// Reset drops the held manifest and the tag selection
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
	s.selected = nil
}

// UniqueTags returns the distinct tags of the held manifest's items
func (s *Store) UniqueTags() []string {
	doc := s.Document()
	if doc == nil {
		return []string{}
	}
	return UniqueTags(doc.Items)
}

// TagCounts returns the number of items per tag in the held manifest
func (s *Store) TagCounts() map[string]int {
	doc := s.Document()
	if doc == nil {
		return map[string]int{}
	}
	return TagCounts(doc.Items)
}

// SetSelectedTag sets the tag filter. nil clears it.
func (s *Store) SetSelectedTag(tag *string) {
	var selected *string
	if tag != nil {
		if t := NormalizeTag(*tag); t != "" {
			selected = &t
		}
	}

	s.mu.Lock()
	s.selected = selected
	s.mu.Unlock()

	if selected != nil {
		s.logger.WithTag(*selected).Debug().Msg("Tag selected")
	}
}

// SelectTag filters items by tag
func (s *Store) SelectTag(tag string) {
	s.SetSelectedTag(&tag)
}

// ClearSelectedTag removes the tag filter
func (s *Store) ClearSelectedTag() {
	s.SetSelectedTag(nil)
}

// SelectedTag returns the current tag filter and whether one is set
func (s *Store) SelectedTag() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return "", false
	}
	return *s.selected, true
}

// FilteredItems returns the held items that carry the selected tag, in
// manifest order. With no tag selected every item is returned.
func (s *Store) FilteredItems() []Item {
	s.mu.RLock()
	doc, selected := s.doc, s.selected
	s.mu.RUnlock()

	if doc == nil {
		return []Item{}
	}
	if selected == nil {
		return FilterByTag(doc.Items, "")
	}
	return FilterByTag(doc.Items, *selected)
}

// ResolveContentURL returns the URL of the item's rendered page. The slug
// is preferred over the location; an absolute location is used verbatim.
func (s *Store) ResolveContentURL(item Item) string {
	if utils.IsAbsoluteURL(string(item.Location)) {
		return string(item.Location)
	}
	return utils.ResolveItemURL(s.URL(), item.ContentPath())
}

// ResolveSourceURL returns the URL of the item's source file. An absolute
// location is used verbatim.
func (s *Store) ResolveSourceURL(item Item) string {
	return utils.ResolveItemURL(s.URL(), string(item.Location))
}
