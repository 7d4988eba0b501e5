package parser

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/workflowdoc/internal/checklist"
	"github.com/dgallion1/workflowdoc/internal/classify"
)

var entryPattern = regexp.MustCompile(`^####\s+(\d+\.\d+)\s*-\s*(.+)`)

// ChecklistParser builds the five-level checklist tree from a markdown file
// that uses ##/###/#### headings and dash bullets.
type ChecklistParser struct {
	Meta checklist.Meta
}

// state holds the innermost open node at each level. A nil field means no
// node of that level is open.
type state struct {
	section    *checklist.Section
	subsection *checklist.Subsection
	entry      *checklist.Entry
	detail     *checklist.Detail
}

// Parse reads all of r before building the tree. Attributes left blank in
// p.Meta are taken from the document's front matter when it has one.
func (p *ChecklistParser) Parse(r io.Reader) (*checklist.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines, err := ReadLines(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	meta := p.Meta
	// A leading block that does not decode as front matter is plain body.
	if fm, err := FrontMatter(src); err == nil {
		meta = meta.Merge(fm)
	}
	return build(meta, lines), nil
}

// ParseLines builds the tree in a single pass. Lines whose required parent
// is not open are dropped.
func (p *ChecklistParser) ParseLines(lines []string) *checklist.Document {
	return build(p.Meta, lines)
}

func build(meta checklist.Meta, lines []string) *checklist.Document {
	doc := checklist.NewDocument(meta)
	var st state
	for i, line := range lines {
		st = step(doc, st, i+1, line)
	}
	return doc
}

func step(doc *checklist.Document, st state, lineNum int, line string) state {
	stripped := strings.TrimSpace(line)

	switch {
	case stripped == "" || strings.HasPrefix(stripped, "---"):
		return st

	case strings.HasPrefix(stripped, "## "):
		sec := checklist.NewSection(lineNum, strings.TrimSpace(stripped[3:]))
		doc.Sections = append(doc.Sections, sec)
		return state{section: sec}

	case strings.HasPrefix(stripped, "### "):
		if st.section == nil {
			return st
		}
		sub := checklist.NewSubsection(lineNum, strings.TrimSpace(stripped[4:]))
		st.section.Subsections = append(st.section.Subsections, sub)
		return state{section: st.section, subsection: sub}

	case strings.HasPrefix(stripped, "#### "):
		if st.subsection == nil {
			return st
		}
		id, title := checklist.NoID, strings.TrimSpace(stripped[5:])
		if m := entryPattern.FindStringSubmatch(stripped); m != nil {
			id, title = m[1], m[2]
		}
		entry := checklist.NewEntry(lineNum, id, title)
		st.subsection.Items = append(st.subsection.Items, entry)
		st.entry = entry
		st.detail = nil
		return st

	case strings.HasPrefix(line, "  ") && strings.HasPrefix(stripped, "-"):
		content := strings.TrimSpace(strings.TrimLeft(stripped, "- "))
		sub := checklist.NewSubDetail(lineNum, classify.Classify(content), content)
		if st.detail != nil {
			st.detail.SubItems = append(st.detail.SubItems, sub)
		}
		return st

	case strings.HasPrefix(stripped, "- "):
		content := strings.TrimSpace(stripped[2:])
		detail := checklist.NewDetail(lineNum, classify.Classify(content), content)
		switch {
		case st.entry != nil:
			st.entry.Details = append(st.entry.Details, detail)
		case st.subsection != nil:
			st.subsection.Items = append(st.subsection.Items, detail)
		}
		// An orphan detail still becomes the open detail, so its sub-bullets
		// are dropped along with it.
		st.detail = detail
		return st
	}

	return st
}
