package domain

import "fmt"

// Config holds project-level configuration loaded from .casepilot.yaml in the
// case-studies repo.
type Config struct {
	// QualityThreshold is the minimum case study quality score (0-1).
	QualityThreshold float64 `yaml:"quality_threshold" json:"quality_threshold"`
	// ProfileThreshold is the minimum presenter profile quality score (0-1).
	ProfileThreshold float64 `yaml:"profile_threshold" json:"profile_threshold"`
	// ExtraKnownCompanies extends the built-in wrong-attribution allow-list.
	ExtraKnownCompanies []string `yaml:"extra_known_companies" json:"extra_known_companies,omitempty"`
	// ExtraGenericNames extends the built-in company placeholder set.
	ExtraGenericNames []string `yaml:"extra_generic_names" json:"extra_generic_names,omitempty"`
	// HistoryEnabled controls whether runs are appended to the history store.
	HistoryEnabled bool `yaml:"history_enabled" json:"history_enabled"`
}

// DefaultConfig returns the configuration used when no .casepilot.yaml
// exists.
func DefaultConfig() Config {
	return Config{
		QualityThreshold: 0.60,
		ProfileThreshold: 0.60,
		HistoryEnabled:   true,
	}
}

// Validate catches out-of-range values in user-supplied raw config.
func (c Config) Validate() error {
	if c.QualityThreshold < 0 || c.QualityThreshold > 1 {
		return fmt.Errorf("quality_threshold must be in [0,1], got %.2f", c.QualityThreshold)
	}
	if c.ProfileThreshold < 0 || c.ProfileThreshold > 1 {
		return fmt.Errorf("profile_threshold must be in [0,1], got %.2f", c.ProfileThreshold)
	}
	return nil
}

// KnownCompanyList returns the built-in allow-list extended with configured
// extras.
func (c Config) KnownCompanyList() []string {
	if len(c.ExtraKnownCompanies) == 0 {
		return KnownCompanies
	}
	out := make([]string, 0, len(KnownCompanies)+len(c.ExtraKnownCompanies))
	out = append(out, KnownCompanies...)
	out = append(out, c.ExtraKnownCompanies...)
	return out
}

// GenericNameList returns the built-in placeholder set extended with
// configured extras.
func (c Config) GenericNameList() []string {
	if len(c.ExtraGenericNames) == 0 {
		return GenericCompanyNames
	}
	out := make([]string, 0, len(GenericCompanyNames)+len(c.ExtraGenericNames))
	out = append(out, GenericCompanyNames...)
	out = append(out, c.ExtraGenericNames...)
	return out
}
