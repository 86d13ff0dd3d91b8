package task

// Tooling carries the project-specific values the built-in tasks are
// rendered from. The zero value reproduces the upstream ninja_extra
// targets exactly.
type Tooling struct {
	// Package is the Python package coverage and type checking are
	// scoped to.
	Package string
	// SourceTrees are the trees formatters and linters run over.
	SourceTrees []string
	// TestsTree is the tree handed to the coverage run.
	TestsTree string
	// Bin maps a tool's default name to an alternate binary.
	Bin map[string]string
}

func (tl Tooling) withDefaults() Tooling {
	if tl.Package == "" {
		tl.Package = "ninja_extra"
	}
	if len(tl.SourceTrees) == 0 {
		tl.SourceTrees = []string{"ninja_extra", "tests"}
	}
	if tl.TestsTree == "" {
		tl.TestsTree = "tests"
	}
	return tl
}

func (tl Tooling) bin(name string) string {
	if alt, ok := tl.Bin[name]; ok && alt != "" {
		return alt
	}
	return name
}

// Builtin returns the registry of built-in tasks rendered from tl.
func Builtin(tl Tooling) *Registry {
	tl = tl.withDefaults()

	fmtSeq := []Invocation{
		{Prog: tl.bin("black"), Args: tl.SourceTrees},
		{Prog: tl.bin("isort"), Args: tl.SourceTrees},
	}

	r := NewRegistry()
	r.Register(Task{
		Name: "install",
		Desc: "Install dependencies and the package in editable mode.",
		Invocations: []Invocation{
			{Prog: tl.bin("flit"), Args: []string{"install", "--deps", "develop", "--symlink"}},
		},
	})
	r.Register(Task{
		Name: "lint",
		Desc: "Run code linters.",
		Invocations: []Invocation{
			{Prog: tl.bin("black"), Args: append([]string{"--check"}, tl.SourceTrees...)},
			{Prog: tl.bin("isort"), Args: append([]string{"--check"}, tl.SourceTrees...)},
			{Prog: tl.bin("flake8"), Args: tl.SourceTrees},
			// The upstream lint target passes the package path to mypy
			// twice. Reproduced verbatim.
			// TODO: ask upstream whether the duplicated argument is
			// intentional.
			{Prog: tl.bin("mypy"), Args: []string{tl.Package, tl.Package}},
		},
	})
	r.Register(Task{
		Name:        "fmt",
		Desc:        "Format code.",
		Invocations: fmtSeq,
	})
	r.Register(Task{
		Name:        "format",
		Desc:        "Format code.",
		Invocations: fmtSeq,
	})
	r.Register(Task{
		Name: "test",
		Desc: "Run tests.",
		Invocations: []Invocation{
			{Prog: tl.bin("pytest"), Args: []string{"."}},
		},
	})
	r.Register(Task{
		Name: "test-cov",
		Desc: "Run tests with coverage.",
		Invocations: []Invocation{
			{Prog: tl.bin("pytest"), Args: []string{
				"--cov=" + tl.Package,
				"--cov-report", "term-missing",
				tl.TestsTree,
			}},
		},
	})
	return r
}

// WithHTMLCoverage returns a copy of t whose pytest invocations also
// write the htmlcov report.
func WithHTMLCoverage(t Task) Task {
	invs := make([]Invocation, len(t.Invocations))
	for i, inv := range t.Invocations {
		inv.Args = append(append([]string{}, inv.Args...), "--cov-report", "html")
		invs[i] = inv
	}
	t.Invocations = invs
	return t
}
