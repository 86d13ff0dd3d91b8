package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"

	"go.coder.com/flog"

	"github.com/ninja-extra/nex/internal/task"
)

// config describes nex.toml.
// Changes to this should be accompanied by changes to DefaultConfig.
type config struct {
	Package     string            `toml:"package"`
	SourceTrees []string          `toml:"source_trees"`
	TestsTree   string            `toml:"tests_tree"`
	Tools       map[string]string `toml:"tools"`
}

const DefaultConfig = `# nex configuration.
# The defaults reproduce the ninja_extra Makefile targets, so a fresh
# config changes nothing.

# package is the Python package coverage and type checking are scoped to.
# package = "ninja_extra"

# source_trees are the trees the formatters and linters run over.
# source_trees = ["ninja_extra", "tests"]

# tests_tree is the tree handed to the coverage run.
# tests_tree = "tests"

# [tools] overrides the binary used for a tool, keyed by its default name.
# [tools]
# black = "/opt/black"
`

// tooling renders the config into the values the built-in task table is
// rendered from. Empty fields fall back to the upstream defaults.
func (c config) tooling() task.Tooling {
	return task.Tooling{
		Package:     c.Package,
		SourceTrees: c.SourceTrees,
		TestsTree:   c.TestsTree,
		Bin:         c.Tools,
	}
}

// readConfig parses the config at path. If no file exists, the default
// config is written there first so the user has something to edit.
func readConfig(path string) (config, error) {
	var c config
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		if os.IsNotExist(err) {
			baseDir := filepath.Dir(path)
			err = os.MkdirAll(baseDir, 0755)
			if err != nil {
				return c, xerrors.Errorf("failed to mkdirall %v: %w", baseDir, err)
			}

			err = ioutil.WriteFile(path, []byte(DefaultConfig), 0644)
			if err != nil {
				return c, xerrors.Errorf("failed to write default config @ %v: %w", path, err)
			}

			return readConfig(path)
		}
		return c, xerrors.Errorf("failed to parse config @ %v: %w", path, err)
	}
	return c, nil
}

func mustReadConfig(path string) config {
	c, err := readConfig(path)
	if err != nil {
		flog.Fatal("%v", err)
	}
	return c
}

// metaRoot is where nex keeps its user-level files.
func metaRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		flog.Fatal("failed to find home dir: %v", err)
	}
	return filepath.Join(home, ".config", "nex")
}
