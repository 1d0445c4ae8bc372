// Package main provides the run-snapshot command.
package main

import (
	"os"

	"github.com/grnet/devflow-snapshot/cmd/run-snapshot/internal/cli"
	"github.com/grnet/devflow-snapshot/pkg/dependencies"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:   "run-snapshot [workdir] [-- autopkg-options...]",
		Short: "Build a snapshot package of the debian-develop branch",
		Long: `Make sure a local debian-develop branch tracking origin/debian-develop exists,
then run 'devflow-autopkg -b <workdir> snapshot'.

Without a workdir a new temporary directory is created for the build. It is
left in place afterwards. The exit status of devflow-autopkg is returned as is.

Examples:
  run-snapshot
  run-snapshot /work/out
  run-snapshot -C ~/src/synnefo /work/out -- --no-sign`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			_, _, err := cli.SplitArgs(args, cmd.ArgsLenAtDash())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, extra, err := cli.SplitArgs(args, cmd.ArgsLenAtDash())
			if err != nil {
				return err
			}
			return cli.Run(dependencies.New(), opts, workDir, extra)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.RepoPath, "repo", "C", ".", "Repository root")
	flags.StringVar(&opts.Remote, "remote", "", "Remote holding the tracked branch (default \"origin\")")
	flags.StringVar(&opts.Branch, "branch", "", "Branch to build (default \"debian-develop\")")
	flags.StringVar(&opts.Tool, "tool", "", "Snapshot tool to run (default \"devflow-autopkg\")")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Specify a custom config file path")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	cli.ReportError(os.Stderr, err)
	os.Exit(cli.ExitCode(err))
}
