package main

import (
	"flag"
	"os"
	"os/exec"

	"github.com/pkg/browser"
	"golang.org/x/xerrors"

	"go.coder.com/cli"
	"go.coder.com/flog"

	"github.com/ninja-extra/nex/internal/task"
)

// htmlCovIndex is where pytest-cov writes the HTML report's entry page.
const htmlCovIndex = "htmlcov/index.html"

// taskcmd adapts a built-in task to a CLI command. The invocation
// sequence is resolved from config at run time so Spec stays cheap.
type taskcmd struct {
	gf *globalFlags

	name string
	desc string

	htmlCov bool
}

func (c *taskcmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name: c.name,
		Desc: c.desc,
	}
}

func (c *taskcmd) RegisterFlags(fl *flag.FlagSet) {
	if c.name == "test-cov" {
		fl.BoolVar(&c.htmlCov, "html", false, "Also write an HTML coverage report and open it.")
	}
}

func (c *taskcmd) Run(fl *flag.FlagSet) {
	t, ok := task.Builtin(c.gf.config().tooling()).Lookup(c.name)
	if !ok {
		flog.Fatal("unknown task %q", c.name)
	}

	if c.htmlCov {
		t = task.WithHTMLCoverage(t)
	}

	res := task.Runner{Debugf: c.gf.debug}.Run(t)
	if res.Err != nil {
		var ee *exec.Error
		if xerrors.As(res.Err, &ee) {
			flog.Fatal("failed to start %v: %v", ee.Name, ee.Err)
		}

		// The tool ran and failed. Its output already reached the
		// terminal, so surface nothing but its status.
		os.Exit(res.Code)
	}

	if c.htmlCov {
		err := browser.OpenFile(htmlCovIndex)
		if err != nil {
			flog.Error("failed to open %v: %v", htmlCovIndex, err)
		}
	}
}
