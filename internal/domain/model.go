package domain

import (
	"strings"
	"time"

	"github.com/fatih/camelcase"
)

// RunState is a step of the patch run state machine.
type RunState string

const (
	StateCheckingRoot RunState = "CheckingRoot"
	StateProvisioning RunState = "Provisioning"
	StatePatching     RunState = "Patching"
	StateVerifying    RunState = "Verifying"
	StateDone         RunState = "Done"
	StateFailed       RunState = "Failed"
)

// Terminal reports whether no further transition is possible from s.
func (s RunState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Label renders the state for people: "CheckingRoot" becomes "Checking root".
func (s RunState) Label() string {
	words := camelcase.Split(string(s))
	for i := 1; i < len(words); i++ {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, " ")
}

// StubPolicy controls what happens when a stub file already exists.
type StubPolicy int

const (
	// CreateIfAbsent leaves an existing file untouched.
	CreateIfAbsent StubPolicy = iota
	// AlwaysOverwrite rewrites the file whenever its content differs.
	AlwaysOverwrite
)

func (p StubPolicy) String() string {
	if p == AlwaysOverwrite {
		return "always-overwrite"
	}
	return "create-if-absent"
}

// StubFileSpec describes a placeholder file with fixed content.
type StubFileSpec struct {
	Path    string     `json:"path"    yaml:"path"`
	Content string     `json:"-"       yaml:"-"`
	Policy  StubPolicy `json:"policy"  yaml:"policy"`
}

// BackupRecord tracks the one-time copy taken before a file is first modified.
type BackupRecord struct {
	Source  string `json:"source"`
	Backup  string `json:"backup"`
	Created bool   `json:"created"`
}

// VerifyEntry is the existence check result for one required file.
type VerifyEntry struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// PatchReport accumulates the outcome of a run. It is threaded through every
// step and returned to the caller; nothing in it drives rollback.
type PatchReport struct {
	Root     string        `json:"root"`
	State    RunState      `json:"state"`
	Fixes    []string      `json:"fixes"`
	Warnings []string      `json:"warnings,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
	Backup   *BackupRecord `json:"backup,omitempty"`
	Verified []VerifyEntry `json:"verified,omitempty"`
}

func NewPatchReport(root string) *PatchReport {
	return &PatchReport{Root: root, State: StateCheckingRoot}
}

func (r *PatchReport) AddFix(desc string)  { r.Fixes = append(r.Fixes, desc) }
func (r *PatchReport) Warn(msg string)     { r.Warnings = append(r.Warnings, msg) }
func (r *PatchReport) AddError(msg string) { r.Errors = append(r.Errors, msg) }

// AllVerified reports whether every verified file exists. An empty
// verification list counts as not verified.
func (r *PatchReport) AllVerified() bool {
	if len(r.Verified) == 0 {
		return false
	}
	for _, v := range r.Verified {
		if !v.Exists {
			return false
		}
	}
	return true
}

// RunEntry is one line of the persisted run history.
type RunEntry struct {
	Timestamp  string   `json:"timestamp"`
	CommitHash string   `json:"commit_hash,omitempty"`
	State      RunState `json:"state"`
	Fixes      int      `json:"fixes"`
	Warnings   int      `json:"warnings"`
	Verified   bool     `json:"verified"`
}

// NewRunEntry summarizes a finished report.
func NewRunEntry(r *PatchReport, at time.Time, commit string) RunEntry {
	return RunEntry{
		Timestamp:  at.Format(time.RFC3339),
		CommitHash: commit,
		State:      r.State,
		Fixes:      len(r.Fixes),
		Warnings:   len(r.Warnings),
		Verified:   r.AllVerified(),
	}
}
