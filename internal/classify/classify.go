// Package classify assigns categories and transaction types from raw bank
// description strings using an ordered, first-match-wins rule table.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/model"
)

// Classifier evaluates an ordered rule table against descriptions. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	rules       []compiledRule
	incomeHints []string
}

type compiledRule struct {
	substring string // lowercase, empty when regex
	regex     *regexp.Regexp
	category  string
}

// New compiles a rule table. Regex rules are compiled case-insensitively;
// a bad pattern fails construction rather than silently never matching.
func New(rules []Rule, incomeHints []string) (*Classifier, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		switch r.Kind {
		case MatchRegex:
			rx, err := regexp.Compile("(?i)" + r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("rule %d (%s): %w", i+1, r.Pattern, err)
			}
			compiled = append(compiled, compiledRule{regex: rx, category: r.Category})
		default:
			compiled = append(compiled, compiledRule{
				substring: strings.ToLower(r.Pattern),
				category:  r.Category,
			})
		}
	}
	hints := make([]string, len(incomeHints))
	for i, h := range incomeHints {
		hints[i] = strings.ToLower(h)
	}
	return &Classifier{rules: compiled, incomeHints: hints}, nil
}

// Default returns a classifier over the built-in rule table.
func Default() *Classifier {
	c, err := New(DefaultRules(), DefaultIncomeHints())
	if err != nil {
		// The built-in table is covered by tests; a panic here is a
		// programming error, not an input error.
		panic(err)
	}
	return c
}

// Category returns the category for a description, or Other when no rule
// matches. Evaluation is top to bottom; the first matching rule wins.
func (c *Classifier) Category(description string) string {
	lower := strings.ToLower(description)
	for _, r := range c.rules {
		if r.regex != nil {
			if r.regex.MatchString(description) {
				return r.category
			}
		} else if strings.Contains(lower, r.substring) {
			return r.category
		}
	}
	return model.CatOther
}

// Type infers income or expense from the signed source amount. Income hints
// override the sign; otherwise positive means income.
func (c *Classifier) Type(signedAmount decimal.Decimal, description string) model.TxType {
	lower := strings.ToLower(description)
	for _, h := range c.incomeHints {
		if strings.Contains(lower, h) {
			return model.TypeIncome
		}
	}
	if signedAmount.GreaterThan(decimal.Zero) {
		return model.TypeIncome
	}
	return model.TypeExpense
}

// Essential returns the default essential flag for a category at creation
// time. Later user toggles are never overridden by reclassification.
func (c *Classifier) Essential(category string) bool {
	return model.AutoEssential(category)
}
