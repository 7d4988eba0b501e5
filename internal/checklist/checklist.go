package checklist

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Hierarchy levels of the parsed checklist.
const (
	LevelSection    = 1
	LevelSubsection = 2
	LevelEntry      = 3
	LevelDetail     = 4
	LevelSubDetail  = 5

	HierarchyLevels = 5
)

// NoID is the checklist identifier used when a heading has no N.N prefix.
const NoID = "N/A"

// Document is the root of a parsed estimation workflow checklist.
type Document struct {
	Title           string                                 `json:"title"`
	Version         string                                 `json:"version"`
	Date            string                                 `json:"date"`
	HierarchyLevels int                                    `json:"hierarchy_levels"`
	Categories      *orderedmap.OrderedMap[string, string] `json:"categories"`
	Sections        []*Section                             `json:"sections"`
}

// Meta holds the document attributes that do not come from the source text.
type Meta struct {
	Title   string
	Version string
	Date    string
}

// DefaultMeta returns the attributes used when none are configured.
func DefaultMeta() Meta {
	return Meta{
		Title:   "Estimation Workflow - Mineral Resource Estimation",
		Version: "1.0",
		Date:    "2025-11-11",
	}
}

// Merge fills the blank attributes of m from other.
func (m Meta) Merge(other Meta) Meta {
	if m.Title == "" {
		m.Title = other.Title
	}
	if m.Version == "" {
		m.Version = other.Version
	}
	if m.Date == "" {
		m.Date = other.Date
	}
	return m
}

// NewDocument returns an empty document carrying the category glossary.
func NewDocument(meta Meta) *Document {
	meta = meta.Merge(DefaultMeta())
	return &Document{
		Title:           meta.Title,
		Version:         meta.Version,
		Date:            meta.Date,
		HierarchyLevels: HierarchyLevels,
		Categories:      Glossary(),
		Sections:        []*Section{},
	}
}

// Section is a level-1 node opened by a "## " heading.
type Section struct {
	Level       int           `json:"level"`
	LineNumber  int           `json:"line_number"`
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Subsections []*Subsection `json:"subsections"`
}

// Subsection is a level-2 node opened by a "### " heading. Its items mix
// checklist entries and loose details in source order.
type Subsection struct {
	Level      int    `json:"level"`
	LineNumber int    `json:"line_number"`
	Title      string `json:"title"`
	Items      []Item `json:"items"`
}

// Item is a child of a Subsection: either *Entry or *Detail.
type Item interface {
	NodeLevel() int
	Line() int
}

// Entry is a level-3 checklist item opened by a "#### " heading.
type Entry struct {
	Level       int       `json:"level"`
	LineNumber  int       `json:"line_number"`
	ChecklistID string    `json:"checklist_id"`
	Title       string    `json:"title"`
	Details     []*Detail `json:"details"`
}

// Detail is a level-4 bullet.
type Detail struct {
	Level      int          `json:"level"`
	LineNumber int          `json:"line_number"`
	Category   Category     `json:"category"`
	Content    string       `json:"content"`
	SubItems   []*SubDetail `json:"sub_items"`
}

// SubDetail is a level-5 indented bullet.
type SubDetail struct {
	Level      int      `json:"level"`
	LineNumber int      `json:"line_number"`
	Category   Category `json:"category"`
	Content    string   `json:"content"`
}

func NewSection(line int, title string) *Section {
	return &Section{
		Level:       LevelSection,
		LineNumber:  line,
		ID:          title,
		Title:       title,
		Subsections: []*Subsection{},
	}
}

func NewSubsection(line int, title string) *Subsection {
	return &Subsection{
		Level:      LevelSubsection,
		LineNumber: line,
		Title:      title,
		Items:      []Item{},
	}
}

func NewEntry(line int, id, title string) *Entry {
	return &Entry{
		Level:       LevelEntry,
		LineNumber:  line,
		ChecklistID: id,
		Title:       title,
		Details:     []*Detail{},
	}
}

func NewDetail(line int, cat Category, content string) *Detail {
	return &Detail{
		Level:      LevelDetail,
		LineNumber: line,
		Category:   cat,
		Content:    content,
		SubItems:   []*SubDetail{},
	}
}

func NewSubDetail(line int, cat Category, content string) *SubDetail {
	return &SubDetail{
		Level:      LevelSubDetail,
		LineNumber: line,
		Category:   cat,
		Content:    content,
	}
}

func (e *Entry) NodeLevel() int  { return e.Level }
func (e *Entry) Line() int       { return e.LineNumber }
func (d *Detail) NodeLevel() int { return d.Level }
func (d *Detail) Line() int      { return d.LineNumber }

// HasID reports whether the entry carries a parsed N.N identifier.
func (e *Entry) HasID() bool {
	return e.ChecklistID != NoID
}
