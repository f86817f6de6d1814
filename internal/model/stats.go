package model

// Count is a named tally kept in a stable order.
type Count struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Stats summarizes one generation run without writing any artifact.
type Stats struct {
	Vectors      int            `yaml:"vectors"`
	Accepted     int            `yaml:"accepted"`
	Pruned       []Count        `yaml:"pruned"`
	Outcomes     []Count        `yaml:"outcomes"`
	Alternatives []Count        `yaml:"alternatives"`
	Shards       []ShardSummary `yaml:"shards"`
}

// DiffStatus classifies an artifact compared with freshly generated output.
type DiffStatus int

const (
	// UpToDate means the artifact matches byte for byte.
	UpToDate DiffStatus = iota
	// Stale means the artifact exists but differs.
	Stale
	// Missing means the artifact does not exist.
	Missing
	// Unexpected means an artifact exists past the last generated shard.
	Unexpected
)

func (s DiffStatus) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case Stale:
		return "stale"
	case Missing:
		return "missing"
	case Unexpected:
		return "unexpected"
	}

	return "unknown"
}

// ShardDiff is the result of checking one shard artifact.
type ShardDiff struct {
	Shard  ShardSummary
	Status DiffStatus
	// Diff is a unified diff from the artifact to the expected text, set for stale shards.
	Diff string
}
