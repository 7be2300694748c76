package types

// Backend identifies the PDF library used to extract text.
type Backend string

const (
	BackendLedongthuc Backend = "ledongthuc"
	BackendDslipak    Backend = "dslipak"
	BackendRSC        Backend = "rsc"
)

// RenderMode selects how extraction results are presented.
type RenderMode string

const (
	ModeRaw     RenderMode = "raw"
	ModeParse   RenderMode = "parse"
	ModeCompare RenderMode = "compare"
)

// OutputFormat selects the encoding of rendered output.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// DefaultPattern is the glob used when scanning a directory.
const DefaultPattern = "*.pdf"

// InputConfig describes where the batch runner finds its files.
type InputConfig struct {
	// Paths lists explicit PDF files, processed in the given order.
	Paths []string `json:"paths" yaml:"paths"`

	// Directory, when set, is scanned instead of Paths.
	Directory string `json:"directory" yaml:"directory"`

	// Pattern is the glob applied inside Directory (default "*.pdf").
	Pattern string `json:"pattern" yaml:"pattern"`
}

// ExtractConfig holds settings for one extraction run of the CLI.
type ExtractConfig struct {
	InputConfig `yaml:",inline"`

	// Backend selects the PDF library. Empty picks the first one compiled in.
	Backend Backend `json:"backend" yaml:"backend"`

	// Mode selects raw text, parsed summaries, or a comparison.
	Mode RenderMode `json:"mode" yaml:"mode"`

	// Format selects text, yaml, or json output for parse and compare modes.
	Format OutputFormat `json:"format" yaml:"format"`

	// Output is a file to write the rendered output to instead of stdout.
	Output string `json:"output" yaml:"output"`

	// Verbose enables per-file diagnostic logging.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// ArchiveConfig holds settings for the schedule archive.
type ArchiveConfig struct {
	// DBPath is the SQLite database file (default "schedules.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}
