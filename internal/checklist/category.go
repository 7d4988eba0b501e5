package checklist

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category is the semantic role of a detail line.
type Category string

const (
	Action        Category = "ACTION"
	Validation    Category = "VALIDATION"
	Parameter     Category = "PARAMETER"
	Rationale     Category = "RATIONALE"
	Warning       Category = "WARNING"
	Documentation Category = "DOCUMENTATION"
	Formula       Category = "FORMULA"
	Deliverable   Category = "DELIVERABLE"
	Input         Category = "INPUT"
	Decision      Category = "DECISION"
)

// categoryInfo keeps the glossary order stable in the output document.
var categoryInfo = []struct {
	Category    Category
	Description string
}{
	{Action, "Tasks to execute"},
	{Validation, "Quality control checks"},
	{Parameter, "Numerical values and thresholds"},
	{Rationale, "Explanations and justifications"},
	{Warning, "Critical alerts and errors to avoid"},
	{Documentation, "Recording requirements"},
	{Formula, "Mathematical equations"},
	{Deliverable, "Expected outputs"},
	{Input, "Required data"},
	{Decision, "Decision points"},
}

// Categories returns all labels in glossary order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryInfo))
	for _, ci := range categoryInfo {
		out = append(out, ci.Category)
	}
	return out
}

// Valid reports whether c is one of the ten known labels.
func (c Category) Valid() bool {
	for _, ci := range categoryInfo {
		if ci.Category == c {
			return true
		}
	}
	return false
}

// Description returns the glossary text for c, or "" if unknown.
func (c Category) Description() string {
	for _, ci := range categoryInfo {
		if ci.Category == c {
			return ci.Description
		}
	}
	return ""
}

// Glossary builds the name -> description map embedded in every document.
func Glossary() *orderedmap.OrderedMap[string, string] {
	g := orderedmap.New[string, string](len(categoryInfo))
	for _, ci := range categoryInfo {
		g.Set(string(ci.Category), ci.Description)
	}
	return g
}
