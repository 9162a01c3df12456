// Package config loads extraction rules from YAML rule files.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tiendc/go-deepcopy"
	"go.yaml.in/yaml/v3"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab/models"
)

// Defaults are file-wide settings applied to every rule that does not set
// its own.
type Defaults struct {
	// HeaderJoin is the multi-row header separator for rules without one.
	HeaderJoin string `yaml:"header_join,omitempty"`
	// StripEmptyRows turns on empty-row stripping for every rule.
	StripEmptyRows bool `yaml:"strip_empty_rows,omitempty"`
}

// File is the top-level shape of a rule file.
type File struct {
	Defaults Defaults      `yaml:"defaults,omitempty"`
	Rules    []models.Rule `yaml:"rules"`
}

// LoadRules reads a YAML rule file and returns validated rules with the
// file defaults applied.
func LoadRules(path string) ([]models.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes and validates a YAML rule document. Unknown fields
// are rejected so a typoed key fails loudly instead of silently changing
// the extraction. The returned rules are deep copies; they never alias
// the decoded document.
func ParseRules(data []byte) ([]models.Rule, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("rule file declares no rules")
	}

	rules := make([]models.Rule, 0, len(f.Rules))
	seen := make(map[string]bool, len(f.Rules))
	for i, raw := range f.Rules {
		var rule models.Rule
		if err := deepcopy.Copy(&rule, &raw); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		if rule.HeaderJoin == "" {
			rule.HeaderJoin = f.Defaults.HeaderJoin
		}
		if f.Defaults.StripEmptyRows {
			rule.StripEmptyRows = true
		}
		if err := validateRule(rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		if seen[rule.ID] {
			return nil, fmt.Errorf("rule %d: duplicate id %q", i+1, rule.ID)
		}
		seen[rule.ID] = true
		rules = append(rules, rule)
	}
	return rules, nil
}

func validateRule(rule models.Rule) error {
	if rule.ID == "" {
		return fmt.Errorf("missing id")
	}
	if rule.Sheet == "" {
		return fmt.Errorf("%s: missing sheet", rule.ID)
	}
	if rule.Header == "" {
		return fmt.Errorf("%s: missing header", rule.ID)
	}
	if len(rule.Blocks) == 0 {
		return fmt.Errorf("%s: rule declares no blocks", rule.ID)
	}
	for i, b := range rule.Blocks {
		if err := validateBlock(b); err != nil {
			return fmt.Errorf("%s: block %d: %w", rule.ID, i+1, err)
		}
	}
	return nil
}

func validateBlock(b models.BlockSpec) error {
	switch {
	case b.Range != "" && b.Start != nil:
		return fmt.Errorf("sets both range and start")
	case b.Range == "" && b.Start == nil:
		return fmt.Errorf("sets neither range nor start")
	case b.Range != "" && b.End != nil:
		return fmt.Errorf("end is only valid with an anchored start")
	case b.Start != nil && b.Columns == "":
		return fmt.Errorf("anchored block requires columns")
	}
	if b.Start != nil {
		if b.Start.Column == "" || b.Start.Text == "" {
			return fmt.Errorf("start requires column and text")
		}
		if err := validateMode(b.Start.Mode); err != nil {
			return err
		}
	}
	if b.End != nil && b.End.Keyword != nil {
		kw := b.End.Keyword
		if b.End.Row > 0 {
			return fmt.Errorf("end sets both row and keyword")
		}
		if kw.Column == "" || kw.Text == "" {
			return fmt.Errorf("end keyword requires column and text")
		}
		if err := validateMode(kw.Mode); err != nil {
			return err
		}
	}
	return nil
}

func validateMode(m models.MatchMode) error {
	switch m {
	case "", models.MatchExact, models.MatchContains, models.MatchRegex:
		return nil
	default:
		return fmt.Errorf("unknown match mode %q", m)
	}
}
