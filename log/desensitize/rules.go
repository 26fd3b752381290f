package desensitize

import (
	"fmt"
	"regexp"
)

// Mask replaces sensitive values
const Mask = "******"

// Rule rewrites one kind of sensitive data in a log line
type Rule interface {
	Name() string
	Process(s string) string
}

// ContentRule replaces every match of a pattern anywhere in the line
type ContentRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewContentRule compiles pattern into a ContentRule. replacement may refer
// to submatches ($1).
func NewContentRule(name, pattern, replacement string) (*ContentRule, error) {
	if name == "" {
		return nil, fmt.Errorf("desensitize: rule name cannot be empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("desensitize: invalid pattern %q: %w", pattern, err)
	}
	return &ContentRule{name: name, pattern: re, replacement: replacement}, nil
}

// MustNewContentRule is NewContentRule that panics on error
func MustNewContentRule(name, pattern, replacement string) *ContentRule {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *ContentRule) Name() string {
	return r.name
}

func (r *ContentRule) Process(s string) string {
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// FieldRule masks the string value of a JSON field, whatever it contains
type FieldRule struct {
	name    string
	field   string
	pattern *regexp.Regexp
}

// NewFieldRule creates a rule masking the JSON string field named field
func NewFieldRule(name, field string) (*FieldRule, error) {
	if name == "" || field == "" {
		return nil, fmt.Errorf("desensitize: rule and field name cannot be empty")
	}
	// The value may contain escaped quotes and newlines.
	re, err := regexp.Compile(fmt.Sprintf(`"%s"\s*:\s*"(?:[^"\\]|\\.)*"`, regexp.QuoteMeta(field)))
	if err != nil {
		return nil, err
	}
	return &FieldRule{name: name, field: field, pattern: re}, nil
}

// MustNewFieldRule is NewFieldRule that panics on error
func MustNewFieldRule(name, field string) *FieldRule {
	rule, err := NewFieldRule(name, field)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *FieldRule) Name() string {
	return r.name
}

func (r *FieldRule) Process(s string) string {
	return r.pattern.ReplaceAllLiteralString(s, fmt.Sprintf(`"%s":"%s"`, r.field, Mask))
}
