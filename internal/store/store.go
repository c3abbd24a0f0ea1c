// Package store loads and saves the goal keyword vocabulary.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/bank-reco/internal/logging"
	"fjacquet/bank-reco/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultGoalsFile is looked up when no goals file is configured.
const DefaultGoalsFile = "goals.yaml"

// GoalRules holds the keywords the text-matching goals look for in the
// reward/interest type, compared case-insensitively as substrings.
type GoalRules struct {
	Travel   []string `yaml:"travel"`
	Cashback []string `yaml:"cashback"`
}

// DefaultGoalRules returns the built-in vocabulary.
func DefaultGoalRules() GoalRules {
	return GoalRules{
		Travel:   []string{"travel", "miles", "point"},
		Cashback: []string{"cash"},
	}
}

// Keywords returns the keywords for a text-matching goal, nil otherwise.
func (r GoalRules) Keywords(g models.Goal) []string {
	switch g {
	case models.GoalTravelRewards:
		return r.Travel
	case models.GoalCashbackValue:
		return r.Cashback
	}
	return nil
}

type goalsFile struct {
	Goals GoalRules `yaml:"goals"`
}

// GoalStore reads the goals file from the configured path or from the
// standard locations.
type GoalStore struct {
	File   string
	logger logging.Logger
}

// NewGoalStore creates a store for file. An empty file name means
// DefaultGoalsFile.
func NewGoalStore(file string, logger logging.Logger) *GoalStore {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if file == "" {
		file = DefaultGoalsFile
	}
	return &GoalStore{File: file, logger: logger}
}

// FindConfigFile looks for filename as given, then under ./config and
// finally under ~/.config/bank-reco.
func (s *GoalStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "bank-reco", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadRules reads the goals file. A missing file yields the defaults, and
// goals left empty in the file keep their default keywords.
func (s *GoalStore) LoadRules() (GoalRules, error) {
	defaults := DefaultGoalRules()

	path, err := s.FindConfigFile(s.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Goals file not found, using built-in keywords",
				logging.F(logging.FieldFile, s.File))
			return defaults, nil
		}
		return GoalRules{}, fmt.Errorf("error resolving goals file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return GoalRules{}, fmt.Errorf("error reading goals file: %w", err)
	}

	var parsed goalsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return GoalRules{}, fmt.Errorf("error parsing goals file %s: %w", path, err)
	}

	rules := GoalRules{
		Travel:   cleanKeywords(parsed.Goals.Travel),
		Cashback: cleanKeywords(parsed.Goals.Cashback),
	}
	if len(rules.Travel) == 0 {
		rules.Travel = defaults.Travel
	}
	if len(rules.Cashback) == 0 {
		rules.Cashback = defaults.Cashback
	}

	s.logger.Debug("Loaded goal keywords",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(rules.Travel)+len(rules.Cashback)))
	return rules, nil
}

// SaveRules writes rules to the store's file, creating parent directories.
func (s *GoalStore) SaveRules(rules GoalRules) error {
	path := s.File
	if found, err := s.FindConfigFile(s.File); err == nil {
		path = found
	}

	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(goalsFile{Goals: rules})
	if err != nil {
		return fmt.Errorf("error marshaling goal keywords: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing goals file: %w", err)
	}

	s.logger.Debug("Saved goal keywords", logging.F(logging.FieldFile, path))
	return nil
}

func cleanKeywords(in []string) []string {
	var out []string
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
