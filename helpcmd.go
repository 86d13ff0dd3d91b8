package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"go.coder.com/cli"
)

type helpcmd struct {
	subcommands func() []cli.Command
}

func (c *helpcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name: "help",
		Desc: "Show the available tasks.",
	}
}

func (c *helpcmd) Run(fl *flag.FlagSet) {
	renderHelp(os.Stdout, c.subcommands())
}

var helpName = color.New(color.FgCyan)

// renderHelp writes one line per described command, sorted by name
// regardless of declaration order.
func renderHelp(w io.Writer, cmds []cli.Command) {
	type entry struct {
		name, desc string
	}

	var entries []entry
	for _, cmd := range cmds {
		spec := cmd.Spec()
		if spec.Desc == "" {
			continue
		}
		entries = append(entries, entry{spec.Name, firstLine(spec.Desc)})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	for _, e := range entries {
		fmt.Fprintf(w, "%v %v\n", helpName.Sprintf("%-12s", e.name), e.desc)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
