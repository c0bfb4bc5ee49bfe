package application

import (
	"time"

	"github.com/abdidvp/appatch/internal/domain"
)

// RecordRun appends a summary of report to hist. The commit hash is left
// empty when root is not inside a git work tree.
func RecordRun(hist domain.RunHistory, git domain.GitInfo, root string, report *domain.PatchReport, at time.Time) error {
	var hash string
	if git.IsGitRepo(root) {
		if h, err := git.CommitHash(root); err == nil {
			hash = h
		}
	}
	return hist.Save(root, domain.NewRunEntry(report, at, hash))
}
