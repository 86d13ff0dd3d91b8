package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/posener/complete"

	"go.coder.com/cli"

	"github.com/ninja-extra/nex/internal/task"
)

var _ interface {
	cli.Command
	cli.FlaggedCommand
	cli.ParentCommand
} = new(rootCmd)

type rootCmd struct {
	globalFlags

	installAutocomplete   bool
	uninstallAutocomplete bool
}

func (r *rootCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "nex",
		Usage: "[GLOBAL FLAGS] TASK [TASK FLAGS]",
		Desc: `A development task runner for the ninja_extra package.

Each task wraps a fixed sequence of tool invocations and exits with
the status of the first one that fails. Run nex with no task to list
what's available.`,
	}
}

func (r *rootCmd) Run(fl *flag.FlagSet) {
	if r.handleAutocomplete() {
		return
	}

	// Running nex bare is the same as running nex help.
	renderHelp(os.Stdout, r.Subcommands())
}

func (r *rootCmd) RegisterFlags(fl *flag.FlagSet) {
	fl.BoolVar(&r.verbose, "v", false, "Enable debug logging.")
	fl.StringVar(&r.configPath, "config",
		filepath.Join(metaRoot(), "nex.toml"),
		"Path to config.",
	)

	// We don't use these directly, just added for visability on fl.Usage().
	fl.BoolVar(&r.installAutocomplete, "install-autocomplete", false, "Install autocomplete")
	fl.BoolVar(&r.uninstallAutocomplete, "uninstall-autocomplete", false, "Uninstall autocomplete")
}

func (r rootCmd) Subcommands() []cli.Command {
	var cmds []cli.Command
	for _, t := range task.Builtin(task.Tooling{}).List() {
		cmds = append(cmds, &taskcmd{
			gf:   &r.globalFlags,
			name: t.Name,
			desc: t.Desc,
		})
	}
	cmds = append(cmds, &helpcmd{subcommands: r.Subcommands})
	return cmds
}

func main() {
	cli.RunRoot(&rootCmd{})
}

func (r *rootCmd) handleAutocomplete() bool {
	cmds := []cli.Command{r}
	cmds = append(cmds, cli.ParentCommand(r).Subcommands()...)

	cmp := complete.New("nex", genAutocomplete(cmds))
	cmp.InstallName = "install-autocomplete"
	cmp.UninstallName = "uninstall-autocomplete"

	// only call run if we know we want to install/uninstall autocomplete
	if r.installAutocomplete || r.uninstallAutocomplete {
		return cmp.Run()
	}

	// otherwise just process autocomplete
	return cmp.Complete()
}
