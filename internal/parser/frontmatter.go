package parser

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/dgallion1/workflowdoc/internal/checklist"
)

type frontMatterEnvelope struct {
	Title   string `yaml:"title" toml:"title"`
	Version string `yaml:"version" toml:"version"`
	Date    string `yaml:"date" toml:"date"`
}

// FrontMatter reads title, version and date from a leading YAML or TOML
// block. A source without one yields an empty Meta.
func FrontMatter(src []byte) (checklist.Meta, error) {
	var env frontMatterEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader(src), &env); err != nil {
		return checklist.Meta{}, fmt.Errorf("parse front matter: %w", err)
	}
	return checklist.Meta{Title: env.Title, Version: env.Version, Date: env.Date}, nil
}
