package git

import (
	"sort"
	"strings"
)

const (
	localRefPrefix  = "refs/heads/"
	remoteRefPrefix = "refs/remotes/"
)

// BranchSet is the set of distinct branch names known to a repository.
// Local branches are stored by short name ("debian-develop"), remote-tracking
// branches by remote-qualified name ("origin/debian-develop").
type BranchSet struct {
	local  map[string]struct{}
	remote map[string]struct{}
}

// NewBranchSet creates a BranchSet from local and remote-tracking names.
func NewBranchSet(local, remote []string) BranchSet {
	set := BranchSet{
		local:  make(map[string]struct{}, len(local)),
		remote: make(map[string]struct{}, len(remote)),
	}
	for _, name := range local {
		set.local[name] = struct{}{}
	}
	for _, name := range remote {
		set.remote[name] = struct{}{}
	}
	return set
}

// ParseBranchRefs parses the output of `git branch --all --format=%(refname)`.
// Symbolic HEAD entries, blank lines and anything outside refs/heads and
// refs/remotes are ignored.
func ParseBranchRefs(output string) BranchSet {
	var local, remote []string
	for _, line := range strings.Split(output, "\n") {
		ref := strings.TrimSpace(line)
		switch {
		case ref == "":
			continue
		case strings.HasPrefix(ref, localRefPrefix):
			local = append(local, strings.TrimPrefix(ref, localRefPrefix))
		case strings.HasPrefix(ref, remoteRefPrefix):
			name := strings.TrimPrefix(ref, remoteRefPrefix)
			if strings.HasSuffix(name, "/HEAD") {
				continue
			}
			remote = append(remote, name)
		}
	}
	return NewBranchSet(local, remote)
}

// HasLocal reports whether a local branch with exactly this name exists.
func (s BranchSet) HasLocal(branch string) bool {
	_, ok := s.local[branch]
	return ok
}

// HasRemote reports whether the remote-tracking branch remote/branch exists.
func (s BranchSet) HasRemote(remote, branch string) bool {
	_, ok := s.remote[remote+"/"+branch]
	return ok
}

// Local returns the sorted local branch names.
func (s BranchSet) Local() []string {
	return sortedKeys(s.local)
}

// Remote returns the sorted remote-tracking branch names.
func (s BranchSet) Remote() []string {
	return sortedKeys(s.remote)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
