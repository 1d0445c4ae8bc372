package git

// CreateTrackingBranchParams contains parameters for CreateTrackingBranch.
type CreateTrackingBranchParams struct {
	RepoPath string
	Branch   string
	Remote   string
}

// Upstream returns the remote-tracking branch name, e.g. "origin/debian-develop".
func (p CreateTrackingBranchParams) Upstream() string {
	return p.Remote + "/" + p.Branch
}
