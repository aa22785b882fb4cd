package semconv

// Invocation
const (
	// Name of the CLI command being executed.
	Command = "command"

	// Unique ID of a single interpreter run. Shared by all logs and spans of the run.
	RunID = "run_id"
)

// Source
const (
	// Name of the evaluated source: a file path, "<stdin>", "<expr:N>" or "<repl>".
	SourceName = "source_name"

	// Number of sources evaluated together.
	SourceCount = "source_count"

	// Length of the source text in bytes.
	SourceLength = "source_length"
)

// Program
const (
	// Number of top-level nodes in a parsed program.
	NodeCount = "node_count"

	// Textual value of an evaluated program.
	Value = "value"
)
