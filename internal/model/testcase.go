package model

// TestCase is one generated test: the accepted vector, its rendered source
// and the simulated final state.
type TestCase struct {
	// Index is the 1-based position among accepted vectors.
	Index  int
	Flags  Flags
	Source string
	State  State
}

// ShardSummary describes one written batch of test cases.
type ShardSummary struct {
	Index      int  `yaml:"index"`
	Path       Path `yaml:"path,omitempty"`
	Tests      int  `yaml:"tests"`
	Cumulative int  `yaml:"cumulative"`
}
