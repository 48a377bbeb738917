package config

const (
	// DefaultBaseDir is the directory relative paths are resolved against
	DefaultBaseDir = "."
	// DefaultCasesDir is the directory holding case inputs and snapshots
	DefaultCasesDir = "cases"
	// DefaultInputExt is the extension of case input files, without the dot
	DefaultInputExt = "la"
	// DefaultSubjectPath is the subject program, relative to the base directory
	DefaultSubjectPath = "../target/debug/linear-algebra-ast"
	// ProjectFileName is the optional dotenv-format project file in the base directory
	ProjectFileName = "goldrun.env"
)

// Keys recognised in the project file
const (
	KeySubject  = "SUBJECT"
	KeyCasesDir = "CASES_DIR"
	KeyInputExt = "INPUT_EXT"
)
