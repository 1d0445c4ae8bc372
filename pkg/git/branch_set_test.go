//go:build unit

package git

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParseBranchRefs(t *testing.T) {
	output := strings.Join([]string{
		"refs/heads/main",
		"refs/heads/feature-login",
		"refs/remotes/origin/HEAD",
		"refs/remotes/origin/main",
		"refs/remotes/origin/debian-develop",
		"refs/remotes/upstream/release-1.2",
		"",
		"  refs/heads/hotfix-0.14.1  ",
		"(HEAD detached at 1a2b3c4)",
	}, "\n")

	set := ParseBranchRefs(output)

	assert.Equal(t, []string{"feature-login", "hotfix-0.14.1", "main"}, set.Local())
	assert.Equal(t, []string{"origin/debian-develop", "origin/main", "upstream/release-1.2"}, set.Remote())
	assert.True(t, set.HasRemote("origin", "debian-develop"))
	assert.False(t, set.HasLocal("debian-develop"))
	assert.False(t, set.HasRemote("origin", "HEAD"))
}

func TestParseBranchRefs_Empty(t *testing.T) {
	set := ParseBranchRefs("")

	assert.Empty(t, set.Local())
	assert.Empty(t, set.Remote())
	assert.False(t, set.HasLocal("main"))
}

func TestBranchSet_HasLocal_NoSubstringMatch(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected bool
	}{
		{
			name:     "exact local branch",
			output:   "refs/heads/debian-develop\n",
			expected: true,
		},
		{
			name:     "only remote-tracking branch",
			output:   "refs/remotes/origin/debian-develop\n",
			expected: false,
		},
		{
			name:     "local branch containing the name",
			output:   "refs/heads/not-debian-develop-but-contains-debian-develop\n",
			expected: false,
		},
		{
			name:     "local branch with the name as prefix",
			output:   "refs/heads/debian-develop-old\n",
			expected: false,
		},
		{
			name:     "nested local branch",
			output:   "refs/heads/feature/debian-develop\n",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseBranchRefs(tt.output)
			assert.Equal(t, tt.expected, set.HasLocal("debian-develop"))
		})
	}
}

func TestCreateTrackingBranchParams_Upstream(t *testing.T) {
	params := CreateTrackingBranchParams{RepoPath: "/repo", Branch: "debian-develop", Remote: "origin"}
	assert.Equal(t, "origin/debian-develop", params.Upstream())
}

func TestBranchSet_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a listed local branch is found by exact name", prop.ForAll(
		func(name string) bool {
			return ParseBranchRefs(localRefPrefix + name + "\n").HasLocal(name)
		},
		gen.Identifier(),
	))

	properties.Property("a branch whose name only contains the wanted name is not found", prop.ForAll(
		func(prefix, name, suffix string) bool {
			set := ParseBranchRefs(localRefPrefix + prefix + "-" + name + "-" + suffix + "\n")
			return !set.HasLocal(name)
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("remote-tracking branches never count as local", prop.ForAll(
		func(remote, name string) bool {
			set := ParseBranchRefs(remoteRefPrefix + remote + "/" + name + "\n")
			return !set.HasLocal(name) && set.HasRemote(remote, name)
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("duplicate refs collapse into one entry", prop.ForAll(
		func(name string) bool {
			ref := localRefPrefix + name
			return len(ParseBranchRefs(ref+"\n"+ref+"\n").Local()) == 1
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
