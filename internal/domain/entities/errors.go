package entities

import "errors"

var (
	// ErrMissingProperty is returned when a link builder is handed an identity
	// without a property it requires.
	ErrMissingProperty = errors.New("repository identity is missing a required property")

	// ErrEmptyBranch is returned when no remote branch could be resolved.
	ErrEmptyBranch = errors.New("could not resolve a remote branch")

	// ErrEmptyCommit is returned when no commit could be resolved.
	ErrEmptyCommit = errors.New("could not resolve a commit")

	// ErrUnknownProvider is returned for provider names that were never registered.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrNotInRepository is returned when a file is not part of a known remote repository.
	ErrNotInRepository = errors.New("file is not part of a known remote repository")

	// ErrFileOutsideRepository is returned when the file path does not live under the repository folder.
	ErrFileOutsideRepository = errors.New("file is outside of the repository folder")
)
