package stats

import (
	"sort"

	"github.com/dgallion1/workflowdoc/internal/checklist"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Stats summarizes a parsed checklist document.
type Stats struct {
	TotalSections  int                                 `json:"total_sections"`
	CategoryCounts *orderedmap.OrderedMap[string, int] `json:"category_counts"`
	LevelCounts    *orderedmap.OrderedMap[int, int]    `json:"level_counts"`
	ChecklistItems int                                 `json:"checklist_items"`
	TotalItems     int                                 `json:"total_items"`
}

// CategoryCount is one row of the category distribution.
type CategoryCount struct {
	Category checklist.Category
	Count    int
}

func newStats() *Stats {
	s := &Stats{
		CategoryCounts: orderedmap.New[string, int](),
		LevelCounts:    orderedmap.New[int, int](checklist.HierarchyLevels),
	}
	for level := 1; level <= checklist.HierarchyLevels; level++ {
		s.LevelCounts.Set(level, 0)
	}
	return s
}

// Aggregate walks doc once and counts nodes per level and per category.
// Categories appear in the order they are first encountered.
func Aggregate(doc *checklist.Document) *Stats {
	s := newStats()
	s.TotalSections = len(doc.Sections)

	for _, sec := range doc.Sections {
		s.node(sec.Level)
		for _, sub := range sec.Subsections {
			s.node(sub.Level)
			for _, it := range sub.Items {
				switch v := it.(type) {
				case *checklist.Entry:
					s.node(v.Level)
					if v.HasID() {
						s.ChecklistItems++
					}
					for _, d := range v.Details {
						s.detail(d)
					}
				case *checklist.Detail:
					s.detail(v)
				}
			}
		}
	}
	return s
}

func (s *Stats) detail(d *checklist.Detail) {
	s.node(d.Level)
	s.categorized(d.Category)
	for _, sd := range d.SubItems {
		s.node(sd.Level)
		s.categorized(sd.Category)
	}
}

func (s *Stats) node(level int) {
	n, _ := s.LevelCounts.Get(level)
	s.LevelCounts.Set(level, n+1)
}

func (s *Stats) categorized(c checklist.Category) {
	n, _ := s.CategoryCounts.Get(string(c))
	s.CategoryCounts.Set(string(c), n+1)
	s.TotalItems++
}

// Level returns the node count for a hierarchy level.
func (s *Stats) Level(level int) int {
	n, _ := s.LevelCounts.Get(level)
	return n
}

// Category returns the count for a category label.
func (s *Stats) Category(c checklist.Category) int {
	n, _ := s.CategoryCounts.Get(string(c))
	return n
}

// TotalNodes is the sum of all level counts.
func (s *Stats) TotalNodes() int {
	total := 0
	for pair := s.LevelCounts.Oldest(); pair != nil; pair = pair.Next() {
		total += pair.Value
	}
	return total
}

// SortedCategories returns the category distribution by descending count.
// Ties keep first-seen order.
func (s *Stats) SortedCategories() []CategoryCount {
	out := make([]CategoryCount, 0, s.CategoryCounts.Len())
	for pair := s.CategoryCounts.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, CategoryCount{Category: checklist.Category(pair.Key), Count: pair.Value})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
