package cdpdoc

import (
	"slices"
	"strings"
)

// CDP identifies a supported Customer Data Platform.
type CDP string

// Supported platforms.
const (
	Segment   CDP = "segment"
	MParticle CDP = "mparticle"
	Lytics    CDP = "lytics"
	Zeotap    CDP = "zeotap"
)

// DefaultCDP is returned by Classify when no keyword matches.
const DefaultCDP = Segment

// ParseCDP returns the CDP named by s (case-insensitive).
// Returns EINVALID if s does not name a supported platform.
func ParseCDP(s string) (CDP, error) {
	cdp := CDP(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(DefaultCatalog().CDPs(), cdp) {
		return cdp, nil
	}
	return "", Errorf(EINVALID, "unknown CDP %q", s)
}

// Catalog maps each CDP to the lowercase keywords that identify it.
// A Catalog is immutable once built; accessors return copies.
type Catalog struct {
	order    []CDP
	keywords map[CDP][]string
	fallback CDP
}

// CatalogEntry pairs a CDP with its trigger keywords.
type CatalogEntry struct {
	CDP      CDP
	Keywords []string
}

// NewCatalog builds a Catalog from entries. Entry order is the
// classification priority: the first entry with a matching keyword wins.
func NewCatalog(fallback CDP, entries ...CatalogEntry) *Catalog {
	c := &Catalog{
		order:    make([]CDP, 0, len(entries)),
		keywords: make(map[CDP][]string, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		kws := make([]string, len(e.Keywords))
		for i, kw := range e.Keywords {
			kws[i] = strings.ToLower(kw)
		}
		c.order = append(c.order, e.CDP)
		c.keywords[e.CDP] = kws
	}
	return c
}

// DefaultCatalog returns the built-in keyword table for the supported CDPs.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultCDP,
		CatalogEntry{CDP: Segment, Keywords: []string{"segment", "source", "event tracking", "analytics.js", "destination"}},
		CatalogEntry{CDP: MParticle, Keywords: []string{"mparticle", "audience", "tracking", "user profile", "customer data"}},
		CatalogEntry{CDP: Lytics, Keywords: []string{"lytics", "customer segmentation", "audience", "unified data"}},
		CatalogEntry{CDP: Zeotap, Keywords: []string{"zeotap", "identity resolution", "data enrichment", "customer intelligence"}},
	)
}

// CDPs returns the catalog's platforms in priority order.
func (c *Catalog) CDPs() []CDP {
	return slices.Clone(c.order)
}

// Keywords returns the trigger keywords for cdp.
func (c *Catalog) Keywords(cdp CDP) []string {
	return slices.Clone(c.keywords[cdp])
}

// Classify returns the first CDP, in priority order, that has a keyword
// occurring anywhere in the lowercased query. Falls back to the catalog's
// default when nothing matches. A query naming two platforms resolves to
// whichever comes first in priority order.
func (c *Catalog) Classify(query string) CDP {
	q := strings.ToLower(query)
	for _, cdp := range c.order {
		if ContainsAny(q, c.keywords[cdp]) {
			return cdp
		}
	}
	return c.fallback
}

// ContainsAny reports whether s contains any of the substrings.
// Callers lowercase both sides.
func ContainsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
