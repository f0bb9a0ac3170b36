package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skint-dev/skint/internal/classify"
	"github.com/skint-dev/skint/internal/config"
	"github.com/skint-dev/skint/internal/cycle"
	"github.com/skint-dev/skint/internal/ledger"
	"github.com/skint-dev/skint/internal/model"
	"github.com/skint-dev/skint/internal/store"
)

// app holds the pieces every subcommand needs: where the config lives and
// what "today" means. Tests swap now for a fixed clock.
type app struct {
	configPath string
	now        func() time.Time
}

func newApp() *app {
	return &app{configPath: "skint.yaml", now: time.Now}
}

func (a *app) today() time.Time {
	return model.Day(a.now().UTC())
}

// loadConfig reads skint.yaml, falling back to defaults when the file does
// not exist yet so commands work before init has run.
func (a *app) loadConfig() (*config.Config, error) {
	if _, err := os.Stat(a.configPath); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(a.configPath)
}

// resolve turns a path from the config file into one relative to the
// config file's directory, unless it is already absolute.
func (a *app) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(a.configPath), path)
}

func (a *app) dataPath(cfg *config.Config) string {
	p := cfg.Files.Data
	if p == "" {
		p = store.DefaultFile
	}
	return a.resolve(p)
}

// classifier builds the transaction classifier, preferring a rules file
// named in the config over the built-in rule table.
func (a *app) classifier(cfg *config.Config) (*classify.Classifier, error) {
	if cfg.Files.Rules == "" {
		return classify.Default(), nil
	}
	rules, hints, err := classify.LoadRules(a.resolve(cfg.Files.Rules))
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return classify.New(rules, hints)
}

func (a *app) loadLedger(cfg *config.Config) (*ledger.Ledger, error) {
	l, err := store.Load(a.dataPath(cfg))
	if err != nil {
		return nil, err
	}
	// The config budget seeds the ledger until `skint set --budget`
	// stores an explicit one.
	if l.Budget.Equal(ledger.DefaultBudget) {
		l.Budget = cfg.BudgetAmount()
	}
	return l, nil
}

func (a *app) saveLedger(cfg *config.Config, l *ledger.Ledger) error {
	return store.Save(a.dataPath(cfg), l)
}

// window resolves a --period flag value to a cycle window. "all" is the
// zero window, which the aggregations treat as unbounded.
func (a *app) window(cfg *config.Config, period string) (cycle.Window, error) {
	switch period {
	case "all":
		return cycle.Window{}, nil
	case "current", "last":
	default:
		return cycle.Window{}, fmt.Errorf("unknown period %q (want current, last, or all)", period)
	}
	cal, err := cfg.Calendar()
	if err != nil {
		return cycle.Window{}, err
	}
	offset := 0
	if period == "last" {
		offset = -1
	}
	return cal.At(offset, a.today()), nil
}

// money formats a decimal as a GBP amount for table output.
func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-£" + d.Abs().StringFixed(2)
	}
	return "£" + d.StringFixed(2)
}

// f64 converts a decimal for JSON output.
func f64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
