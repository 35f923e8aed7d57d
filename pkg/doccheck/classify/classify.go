// Package classify tags document pages by keyword containment.
package classify

import (
	"strings"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
)

// DefaultFallback is the label assigned when no rule matches.
const DefaultFallback = "Other / Unclassified"

// Rule assigns Label to any page whose text contains Keyword, ignoring case.
type Rule struct {
	Keyword string `mapstructure:"keyword" yaml:"keyword" json:"keyword"`
	Label   string `mapstructure:"label" yaml:"label" json:"label"`
}

// DefaultRules returns the built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "invoice", Label: "Invoice Page"},
		{Keyword: "purchase order", Label: "Purchase Order Page"},
		{Keyword: "packing list", Label: "Packing List"},
	}
}

// Classifier applies rules in order; the first matching rule wins.
type Classifier struct {
	rules    []Rule
	fallback string
}

// New creates a Classifier. Rules with an empty keyword are ignored and an
// empty fallback is replaced by DefaultFallback.
func New(rules []Rule, fallback string) *Classifier {
	c := &Classifier{fallback: fallback}
	if c.fallback == "" {
		c.fallback = DefaultFallback
	}
	for _, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" {
			continue
		}
		c.rules = append(c.rules, Rule{Keyword: kw, Label: r.Label})
	}
	return c
}

// Rules returns the effective rules in priority order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify returns the label for a page's text.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Label
		}
	}
	return c.fallback
}

// ClassifyPages labels each page text; page numbers start at 1.
func (c *Classifier) ClassifyPages(texts []string) []models.PageClassification {
	result := make([]models.PageClassification, 0, len(texts))
	for i, text := range texts {
		result = append(result, models.PageClassification{
			Page:  i + 1,
			Label: c.Classify(text),
		})
	}
	return result
}
