package turing_machine

// ToolConfig is what the cmd tools decode from config.toml: where the run
// archive lives and how runs are executed and judged. Instruction tables are
// never read from configuration; programs come from the library (or from
// code), only their inputs are data.
type ToolConfig struct {
	Persistence *PersistenceConfig `toml:"persistence"`
	Harness     *HarnessConfig     `toml:"harness"`
	Check       *CheckConfig       `toml:"check"`
	Workers     uint               `toml:"workers"`
	BatchSize   uint               `toml:"batch_size"`
}
