package domain

// TextStore is the filesystem seen by the patch services. Paths are absolute.
type TextStore interface {
	// Read decodes a text file, tolerating legacy encodings.
	Read(path string) (string, error)
	// Write stores text as UTF-8 with LF line endings.
	Write(path, content string) error
	Exists(path string) bool
	IsDir(path string) bool
	MkdirAll(path string) error
	// Copy duplicates src to dst byte for byte.
	Copy(src, dst string) error
	RemoveAll(path string) error
}

// Logger receives progress messages. Level is one of the Level constants.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// Level tags a log line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelStep  Level = "STEP"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Prompter asks a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// ScriptRunner starts an external build script by path, with no arguments.
type ScriptRunner interface {
	Run(script string) error
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo provides git metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
