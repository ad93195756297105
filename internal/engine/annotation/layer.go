package annotation

import (
	"sort"
	"sync"

	"github.com/dshills/notepad/internal/engine/buffer"
)

// Layer holds named tag ranges. All methods are thread-safe.
type Layer struct {
	mu sync.RWMutex

	// tags maps a tag name to its ranges, sorted by start.
	tags map[string][]buffer.Range
}

// NewLayer creates an empty annotation layer.
func NewLayer() *Layer {
	return &Layer{
		tags: make(map[string][]buffer.Range),
	}
}

// Add tags r with name. Empty ranges are ignored.
func (l *Layer) Add(name string, r buffer.Range) {
	if r.IsEmpty() || !r.IsValid() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ranges := l.tags[name]
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Start >= r.Start })

	// Absorb the previous range when it overlaps.
	if i > 0 && ranges[i-1].Overlaps(r) {
		i--
		r = r.Union(ranges[i])
		ranges = append(ranges[:i], ranges[i+1:]...)
	}
	// Absorb every following range that overlaps.
	for i < len(ranges) && ranges[i].Overlaps(r) {
		r = r.Union(ranges[i])
		ranges = append(ranges[:i], ranges[i+1:]...)
	}

	ranges = append(ranges, buffer.Range{})
	copy(ranges[i+1:], ranges[i:])
	ranges[i] = r
	l.tags[name] = ranges
}

// Remove drops every range tagged with name.
func (l *Layer) Remove(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.tags, name)
}

// Clear drops all tags.
func (l *Layer) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tags = make(map[string][]buffer.Range)
}

// ApplyEdit moves every tagged range through edit. Deleted text loses its
// tags. Inserted text is tagged only when it lands strictly inside a range.
func (l *Layer) ApplyEdit(edit buffer.Edit) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delta := edit.Delta()
	for name, ranges := range l.tags {
		out := ranges[:0]
		for _, r := range ranges {
			if r, ok := moveRange(r, edit, delta); ok {
				out = append(out, r)
			}
		}
		if len(out) == 0 {
			delete(l.tags, name)
			continue
		}
		l.tags[name] = out
	}
}

func moveRange(r buffer.Range, edit buffer.Edit, delta buffer.ByteOffset) (buffer.Range, bool) {
	switch {
	case edit.Range.End <= r.Start:
		return r.Shift(delta), true
	case edit.Range.Start >= r.End:
		return r, true
	}

	head := r.Start < edit.Range.Start
	tail := r.End > edit.Range.End
	switch {
	case head && tail:
		return buffer.Range{Start: r.Start, End: r.End + delta}, true
	case head:
		return buffer.Range{Start: r.Start, End: edit.Range.Start}, true
	case tail:
		return buffer.Range{Start: edit.Range.End + delta, End: r.End + delta}, true
	}
	return buffer.Range{}, false
}

// Ranges returns a copy of the ranges tagged with name, in document order.
func (l *Layer) Ranges(name string) []buffer.Range {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ranges := l.tags[name]
	if len(ranges) == 0 {
		return nil
	}
	out := make([]buffer.Range, len(ranges))
	copy(out, ranges)
	return out
}

// NextRange returns the first range tagged with name that starts at or
// after from.
func (l *Layer) NextRange(name string, from buffer.ByteOffset) (buffer.Range, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ranges := l.tags[name]
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Start >= from })
	if i == len(ranges) {
		return buffer.Range{}, false
	}
	return ranges[i], true
}

// TagsAt returns the names of all tags covering offset, sorted by name.
func (l *Layer) TagsAt(offset buffer.ByteOffset) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var names []string
	for name, ranges := range l.tags {
		i := sort.Search(len(ranges), func(i int) bool { return ranges[i].End > offset })
		if i < len(ranges) && ranges[i].Contains(offset) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns the tag names that currently have ranges, sorted.
func (l *Layer) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.tags))
	for name, ranges := range l.tags {
		if len(ranges) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
