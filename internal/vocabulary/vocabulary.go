// Package vocabulary holds the closed set of spending categories used by both
// the deterministic inference engine and the classification oracle. The
// vocabulary is loaded once at startup and never mutated afterwards.
package vocabulary

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
)

// Category is one entry of the vocabulary. Keywords are lower-case fragments
// matched as substrings of a lower-cased transaction description.
type Category struct {
	Name     string   `mapstructure:"name"`
	Bucket   string   `mapstructure:"bucket"` // needs, wants or savings; may be empty
	Keywords []string `mapstructure:"keywords"`
}

// Vocabulary is the full category table, partitioned by direction.
//
// The slices are ordered and the order is semantically load-bearing: keyword
// inference tests categories front to back and the first keyword hit wins.
// That is why these are slices and not maps.
type Vocabulary struct {
	Expense        []Category
	Income         []Category
	DefaultExpense string
	DefaultIncome  string
}

// Table returns the ordered category table for a direction.
func (v *Vocabulary) Table(dir model.Direction) []Category {
	if dir == model.Income {
		return v.Income
	}
	return v.Expense
}

// Names returns the category labels for a direction, in table order.
func (v *Vocabulary) Names(dir model.Direction) []string {
	table := v.Table(dir)
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.Name
	}
	return names
}

// Contains reports whether name is a valid category for the given direction.
func (v *Vocabulary) Contains(name string, dir model.Direction) bool {
	for _, c := range v.Table(dir) {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Default returns the fallback category for a direction.
func (v *Vocabulary) Default(dir model.Direction) string {
	if dir == model.Income {
		return v.DefaultIncome
	}
	return v.DefaultExpense
}

// Infer assigns a category to a description using ordered keyword matching.
// The description is lower-cased and each category's keywords are tested for
// substring containment, front to back; the first hit wins. When nothing
// matches, the direction default is returned.
func (v *Vocabulary) Infer(description string, dir model.Direction) string {
	lower := strings.ToLower(description)
	for _, c := range v.Table(dir) {
		for _, kw := range c.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				return c.Name
			}
		}
	}
	return v.Default(dir)
}

// Validate checks structural invariants: non-empty unique names per table and
// defaults that belong to their table, so a user override to the default is
// always accepted.
func (v *Vocabulary) Validate() error {
	for _, dir := range []model.Direction{model.Expense, model.Income} {
		seen := make(map[string]bool)
		for _, c := range v.Table(dir) {
			if strings.TrimSpace(c.Name) == "" {
				return fmt.Errorf("vocabulary: empty category name in %s table", dir)
			}
			if seen[c.Name] {
				return fmt.Errorf("vocabulary: duplicate category %q in %s table", c.Name, dir)
			}
			seen[c.Name] = true
		}
		if !v.Contains(v.Default(dir), dir) {
			return fmt.Errorf("vocabulary: default %s category %q is not in the table", dir, v.Default(dir))
		}
	}
	return nil
}

// vocabularyFile is the on-disk layout of a vocabulary config file.
type vocabularyFile struct {
	DefaultExpense string     `mapstructure:"default_expense"`
	DefaultIncome  string     `mapstructure:"default_income"`
	Expense        []Category `mapstructure:"expense"`
	Income         []Category `mapstructure:"income"`
}

// Load reads a vocabulary from a YAML config file. The file fully replaces
// the built-in default; there is no merging.
func Load(path string) (*Vocabulary, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("Load: reading vocabulary file: %w", err)
	}

	var file vocabularyFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("Load: unmarshal vocabulary: %w", err)
	}

	vocab := &Vocabulary{
		Expense:        file.Expense,
		Income:         file.Income,
		DefaultExpense: file.DefaultExpense,
		DefaultIncome:  file.DefaultIncome,
	}
	for _, table := range [][]Category{vocab.Expense, vocab.Income} {
		for i := range table {
			for j, kw := range table[i].Keywords {
				table[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
			}
		}
	}
	if err := vocab.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return vocab, nil
}
