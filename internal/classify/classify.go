package classify

import (
	"regexp"
	"strings"

	"github.com/dgallion1/workflowdoc/internal/checklist"
)

// Rule is one entry in the ordered classification table.
type Rule struct {
	Category checklist.Category
	Match    func(text, lower string) bool
}

var parameterPattern = regexp.MustCompile(
	`\d+[a-z%°]|\d+\s*(?:-|to)\s*\d+|typical:|range:|threshold:`,
)

// rules are evaluated in order; the first match wins.
var rules = []Rule{
	{checklist.Warning, containsAny("critical", "warning", "wrong", "error", "risk", "avoid", "never")},
	{checklist.Formula, func(text, lower string) bool {
		return strings.ContainsAny(text, "=∑Σ±×÷") || strings.Contains(lower, "formula")
	}},
	{checklist.Validation, containsAny("check", "validate", "verify", "confirm", "ensure", "compare")},
	{checklist.Action, hasAnyPrefix("calculate", "define", "apply", "create", "generate", "execute",
		"perform", "identify", "analyze", "model", "estimate", "develop")},
	{checklist.Parameter, func(_, lower string) bool { return parameterPattern.MatchString(lower) }},
	{checklist.Documentation, containsAny("document", "record", "store", "archive", "track", "log")},
	{checklist.Deliverable, containsAny("report", "presentation", "output", "export", "deliver")},
	{checklist.Input, containsAny("import", "load", "input", "source", "from")},
	{checklist.Decision, containsAny("consider", "decide", "choose", "select", "option", "if")},
}

// Classify returns the category of a bullet's text. Text that matches no
// rule is RATIONALE.
func Classify(text string) checklist.Category {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, r := range rules {
		if r.Match(text, lower) {
			return r.Category
		}
	}
	return checklist.Rationale
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func containsAny(words ...string) func(string, string) bool {
	return func(_, lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

func hasAnyPrefix(prefixes ...string) func(string, string) bool {
	return func(_, lower string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		return false
	}
}
