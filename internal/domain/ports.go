package domain

// TextMatcher computes approximate string similarity. Validators take it as a
// dependency so the matching algorithm can be swapped without touching
// validator logic.
type TextMatcher interface {
	// PartialRatio returns the best substring similarity of a within b,
	// 0-100.
	PartialRatio(a, b string) int
	// TokenSortRatio returns the order-insensitive token similarity of a and
	// b, 0-100.
	TokenSortRatio(a, b string) int
}

// ConfigLoader loads project configuration from a case-studies repo root.
type ConfigLoader interface {
	Load(repoPath string) (Config, error)
}

// RunHistory persists per-run validation entries for a case-studies repo.
type RunHistory interface {
	Save(repoPath string, entry RunEntry) error
	Load(repoPath string) ([]RunEntry, error)
}

// RepoInfo reports version-control facts about a case-studies repo.
type RepoInfo interface {
	IsGitRepo(repoPath string) bool
	CommitHash(repoPath string) (string, error)
}

// RunEntry is one recorded validation run.
type RunEntry struct {
	Timestamp  string   `json:"timestamp"`
	Validator  string   `json:"validator"`
	Target     string   `json:"target,omitempty"`
	Status     Severity `json:"status"`
	CommitHash string   `json:"commit_hash,omitempty"`
}
