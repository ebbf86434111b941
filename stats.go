package glyphatlas

import (
	"fmt"
	"strings"
)

// PageInfo contains diagnostic information about a single page.
type PageInfo struct {
	Index       int
	GlyphCount  int
	Utilization float64
	Summary     string
}

// Info contains diagnostic information about the whole atlas.
type Info struct {
	Pages  []PageInfo
	Glyphs int
	Hits   uint64
	Misses uint64
}

// Info returns structured diagnostics for every page plus the cache
// counters. Reading it has no effect on cache state.
func (a *Atlas) Info() Info {
	a.mu.Lock()
	info := Info{
		Pages:  make([]PageInfo, len(a.pages)),
		Glyphs: len(a.lookup),
	}
	for i, p := range a.pages {
		info.Pages[i] = PageInfo{
			Index:       p.index,
			GlyphCount:  len(p.regions),
			Utilization: p.alloc.Utilization(),
			Summary:     p.alloc.Summary(),
		}
	}
	a.mu.Unlock()

	info.Hits = a.hits.Load()
	info.Misses = a.misses.Load()
	return info
}

// String renders a human-readable, multi-line utilization summary for
// operator diagnostics. The format is not machine-parsed.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "atlas: %d glyphs, %d pages, %d hits, %d misses\n",
		i.Glyphs, len(i.Pages), i.Hits, i.Misses)
	for _, p := range i.Pages {
		fmt.Fprintf(&b, "  page %d: %d glyphs, %s\n", p.Index, p.GlyphCount, p.Summary)
	}
	return b.String()
}
