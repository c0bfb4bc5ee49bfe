package domain

import "errors"

var (
	// ErrProjectRootMissing means the integration directory was not found
	// under the project root. Nothing has been modified.
	ErrProjectRootMissing = errors.New("cannot find src/archipelago directory")

	// ErrVerificationFailed means at least one required file is missing
	// after the run.
	ErrVerificationFailed = errors.New("some required files are missing")
)
