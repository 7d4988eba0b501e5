package stats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgallion1/workflowdoc/internal/checklist"
	"github.com/dgallion1/workflowdoc/internal/parser"
)

const sample = `## 1. DATA
### Database
#### 1.01 - Import collars
- Load collars from the database
  - Check for duplicate hole IDs
  - Never accept null elevations
- Define the coordinate system
#### Review step
- Compare with the previous model
### Loose
- Consider an alternative domain
## 2. ESTIMATION
### Kriging
#### 3.10 - Variography
- Model the variogram
`

func aggregateSample(t *testing.T) *Stats {
	t.Helper()
	doc, err := (&parser.ChecklistParser{}).Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return Aggregate(doc)
}

func TestAggregate_Counts(t *testing.T) {
	s := aggregateSample(t)

	if s.TotalSections != 2 {
		t.Errorf("expected 2 sections, got %d", s.TotalSections)
	}
	wantLevels := map[int]int{1: 2, 2: 3, 3: 3, 4: 5, 5: 2}
	for level, want := range wantLevels {
		if got := s.Level(level); got != want {
			t.Errorf("level %d: expected %d, got %d", level, want, got)
		}
	}
	if s.ChecklistItems != 2 {
		t.Errorf("expected 2 identified checklist items, got %d", s.ChecklistItems)
	}
	if s.TotalItems != 7 {
		t.Errorf("expected 7 categorized items, got %d", s.TotalItems)
	}
	if s.TotalItems != s.Level(4)+s.Level(5) {
		t.Errorf("total items %d != level4+level5 %d", s.TotalItems, s.Level(4)+s.Level(5))
	}
	if s.TotalNodes() != 15 {
		t.Errorf("expected 15 nodes, got %d", s.TotalNodes())
	}

	wantCats := map[checklist.Category]int{
		checklist.Input:      1,
		checklist.Validation: 2,
		checklist.Warning:    1,
		checklist.Action:     2,
		checklist.Decision:   1,
	}
	sum := 0
	for cat, want := range wantCats {
		if got := s.Category(cat); got != want {
			t.Errorf("category %s: expected %d, got %d", cat, want, got)
		}
		sum += want
	}
	if sum != s.TotalItems {
		t.Errorf("category counts sum %d != total items %d", sum, s.TotalItems)
	}
}

func TestAggregate_EmptyDocument(t *testing.T) {
	s := Aggregate(checklist.NewDocument(checklist.Meta{}))
	if s.TotalSections != 0 || s.TotalItems != 0 || s.ChecklistItems != 0 {
		t.Errorf("expected zero stats, got %+v", s)
	}
	if s.LevelCounts.Len() != 5 {
		t.Errorf("expected all 5 levels present, got %d", s.LevelCounts.Len())
	}
	if s.CategoryCounts.Len() != 0 {
		t.Errorf("expected no categories, got %d", s.CategoryCounts.Len())
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	a, err := json.Marshal(aggregateSample(t))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(aggregateSample(t))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("expected identical stats across parses:\n%s\n%s", a, b)
	}
}

func TestStats_JSONShape(t *testing.T) {
	raw, err := json.Marshal(aggregateSample(t))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"total_sections":2,` +
		`"category_counts":{"INPUT":1,"VALIDATION":2,"WARNING":1,"ACTION":2,"DECISION":1},` +
		`"level_counts":{"1":2,"2":3,"3":3,"4":5,"5":2},` +
		`"checklist_items":2,"total_items":7}`
	if string(raw) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", raw, want)
	}
}

func TestSortedCategories(t *testing.T) {
	got := aggregateSample(t).SortedCategories()
	want := []CategoryCount{
		{checklist.Validation, 2},
		{checklist.Action, 2},
		{checklist.Input, 1},
		{checklist.Warning, 1},
		{checklist.Decision, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
