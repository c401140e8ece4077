// Package citation tracks report sources and formats the references block
// bound to the {REFERENCES} token.
package citation

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Citation is one numbered source reference.
type Citation struct {
	Index        int
	Title        string
	URL          string
	Excerpt      string
	AccessedDate string
}

// Engine collects citations, dedupes them by URL, and assigns stable 1-based
// indexes in insertion order. Safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	citations []Citation
	byURL     map[string]int
	now       func() time.Time
}

// Option customises engine construction.
type Option func(*Engine)

// WithClock overrides the clock used to stamp accessed dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine constructs an empty citation engine.
func NewEngine(options ...Option) *Engine {
	e := &Engine{
		byURL: make(map[string]int),
		now:   time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Add records a citation accessed now and returns its index. Re-adding an
// already cited URL returns the existing index without mutating the entry.
func (e *Engine) Add(title, url, excerpt string) int {
	return e.add(title, url, excerpt, "")
}

// AddAccessed records a citation with an explicit accessed date.
func (e *Engine) AddAccessed(title, url, excerpt, accessedDate string) int {
	return e.add(title, url, excerpt, accessedDate)
}

func (e *Engine) add(title, url, excerpt, accessedDate string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index, ok := e.byURL[url]; ok {
		return index
	}

	if strings.TrimSpace(accessedDate) == "" {
		accessedDate = e.now().Format("2006-01-02")
	}
	if strings.TrimSpace(title) == "" {
		title = "Unknown"
	}

	index := len(e.citations) + 1
	e.citations = append(e.citations, Citation{
		Index:        index,
		Title:        title,
		URL:          url,
		Excerpt:      excerpt,
		AccessedDate: accessedDate,
	})
	e.byURL[url] = index
	return index
}

// Citations returns a copy of the recorded citations in index order.
func (e *Engine) Citations() []Citation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Citation(nil), e.citations...)
}

// Len reports the number of distinct citations recorded.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.citations)
}

// Markdown formats the citations as the references block templates expect as
// the {REFERENCES} value. Empty when nothing has been cited.
func (e *Engine) Markdown() string {
	citations := e.Citations()
	if len(citations) == 0 {
		return ""
	}

	var out strings.Builder
	for i, c := range citations {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(&out, "[%d] **%s**\n", c.Index, c.Title)
		fmt.Fprintf(&out, "   - URL: %s\n", c.URL)
		if c.AccessedDate != "" {
			fmt.Fprintf(&out, "   - Accessed: %s\n", c.AccessedDate)
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
