package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skint-dev/skint/internal/model"
)

// MatchKind selects how a rule pattern is applied to a description.
type MatchKind string

const (
	// MatchSubstring matches case-insensitively anywhere in the description.
	MatchSubstring MatchKind = "substring"
	// MatchRegex applies a case-insensitive regular expression to the raw
	// description.
	MatchRegex MatchKind = "regex"
)

// Rule maps a description pattern to a category. Rules are evaluated in
// order and the first match wins, so specific patterns must precede broader
// ones that overlap them.
type Rule struct {
	Kind     MatchKind `yaml:"kind"`
	Pattern  string    `yaml:"pattern"`
	Category string    `yaml:"category"`
}

func sub(pattern, category string) Rule {
	return Rule{Kind: MatchSubstring, Pattern: pattern, Category: category}
}

func re(pattern, category string) Rule {
	return Rule{Kind: MatchRegex, Pattern: pattern, Category: category}
}

// DefaultRules is the built-in rule table, tuned for UK bank exports. It is
// sample data: deployments targeting other banks supply their own table via
// the rules file.
//
// Order is load-bearing. The Plum fee rule sits above the Plum direct-debit
// rule so a direct-debit service fee lands in Bank Fees, not Savings.
func DefaultRules() []Rule {
	return []Rule{
		sub("plum fintech", model.CatInternalTransfer),
		re(`plum\b.*fee`, model.CatBankFees),
		sub("moneybox", model.CatSavings),
		re(`plum\b.*ddr`, model.CatSavings),
		sub("my jaja card", model.CatCreditCard),
		sub("capital one", model.CatCreditCard),
		sub("primark stores ltd", model.CatSalary),
		sub("trinity estates", model.CatRent),
		re(`basingstoke.*dean`, model.CatBills),
		sub("british gas", model.CatBills),
		sub("bg services", model.CatBills),
		sub("ovo energy", model.CatBills),
		sub("south east water", model.CatBills),
		sub("tv licens", model.CatBills),
		sub("animal friends", model.CatPets),
		sub("tails.com", model.CatPets),
		sub("zooplus", model.CatPets),
		sub("untamed", model.CatPets),
		sub("deliveroo", model.CatTakeaway),
		sub("just eat", model.CatTakeaway),
		sub("uber eats", model.CatTakeaway),
		sub("pret a manger", model.CatEatingOut),
		sub("caffe nero", model.CatEatingOut),
		sub("muffin break", model.CatEatingOut),
		sub("itsu", model.CatEatingOut),
		sub("costa", model.CatEatingOut),
		sub("starbucks", model.CatEatingOut),
		sub("greggs", model.CatEatingOut),
		sub("whittard", model.CatEatingOut),
		sub("nandos", model.CatEatingOut),
		sub("mcdonalds", model.CatEatingOut),
		sub("waterstones", model.CatBooks),
		sub("skin + me", model.CatSelfCare),
		sub("skin+me", model.CatSelfCare),
		sub("superdrug", model.CatSelfCare),
		sub("boots", model.CatSelfCare),
		sub("pharmacy", model.CatHealth),
		sub("gll better", model.CatGym),
		sub("trainline", model.CatTransport),
		sub("stagecoach", model.CatTransport),
		sub("tfl", model.CatTransport),
		sub("clearpay", model.CatBNPL),
		sub("klarna", model.CatBNPL),
		sub("netflix", model.CatSubscriptions),
		sub("spotify", model.CatSubscriptions),
		sub("disney", model.CatSubscriptions),
		sub("sky digital", model.CatSubscriptions),
		sub("apple.com", model.CatSubscriptions),
		sub("microsoft", model.CatSubscriptions),
		sub("google youtube", model.CatSubscriptions),
		sub("google one", model.CatSubscriptions),
		sub("google cloud", model.CatSubscriptions),
		sub("google play", model.CatSubscriptions),
		sub("openai", model.CatSubscriptions),
		sub("anthropic", model.CatSubscriptions),
		sub("discord", model.CatSubscriptions),
		sub("experian", model.CatSubscriptions),
		sub("amazon prime", model.CatSubscriptions),
		sub("lebara", model.CatPhone),
		sub("sainsbury", model.CatGroceries),
		sub("tesco", model.CatGroceries),
		sub("asda", model.CatGroceries),
		sub("aldi", model.CatGroceries),
		sub("lidl", model.CatGroceries),
		sub("morrisons", model.CatGroceries),
		sub("waitrose", model.CatGroceries),
		sub("co-op", model.CatGroceries),
		re(`marks.spencer`, model.CatGroceries),
		sub("national lottery", model.CatEntertainment),
		sub("unwfp", model.CatCharity),
		sub("blue rewards fee", model.CatBankFees),
		sub("dunelm", model.CatHomeKitchen),
		sub("robert dyas", model.CatHomeKitchen),
		sub("amazon", model.CatShopping),
		sub("amzn", model.CatShopping),
		sub("argos", model.CatShopping),
		re(`sports? ?direct`, model.CatShopping),
		re(`t ?k ?maxx`, model.CatShopping),
		sub("cotton on", model.CatShopping),
		sub("paypal", model.CatShopping),
	}
}

// DefaultIncomeHints are description substrings that force the income type
// regardless of the amount's sign, covering payroll lines some banks export
// with a flipped sign.
func DefaultIncomeHints() []string {
	return []string{"primark stores ltd", "plum fintech bgc"}
}

// rulesFile is the YAML shape of an external rule table.
type rulesFile struct {
	Rules       []Rule   `yaml:"rules"`
	IncomeHints []string `yaml:"income_hints"`
}

// LoadRules reads an ordered rule table from a YAML file.
func LoadRules(path string) ([]Rule, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading rules: %w", err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, nil, fmt.Errorf("parsing rules: %w", err)
	}
	for i, r := range rf.Rules {
		if r.Pattern == "" || r.Category == "" {
			return nil, nil, fmt.Errorf("rule %d: pattern and category are required", i+1)
		}
		switch r.Kind {
		case MatchSubstring, MatchRegex, "":
		default:
			return nil, nil, fmt.Errorf("rule %d: unknown kind %q", i+1, r.Kind)
		}
	}
	hints := rf.IncomeHints
	if hints == nil {
		hints = DefaultIncomeHints()
	}
	return rf.Rules, hints, nil
}

// SaveRules writes a rule table to a YAML file.
func SaveRules(path string, rules []Rule, incomeHints []string) error {
	data, err := yaml.Marshal(rulesFile{Rules: rules, IncomeHints: incomeHints})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
