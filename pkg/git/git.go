package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides the Git capabilities the snapshot launcher needs.
type Git interface {
	// IsRepository checks if the specified directory is inside a Git work tree.
	IsRepository(repoPath string) (bool, error)

	// ListBranches lists local and remote-tracking branches of the repository.
	ListBranches(repoPath string) (BranchSet, error)

	// CreateTrackingBranch creates a local branch tracking a remote-tracking branch.
	CreateTrackingBranch(params CreateTrackingBranchParams) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
