package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Defaults(t *testing.T) {
	r := Builtin(Tooling{})

	lint, ok := r.Lookup("lint")
	require.True(t, ok)
	assert.Equal(t, []Invocation{
		{Prog: "black", Args: []string{"--check", "ninja_extra", "tests"}},
		{Prog: "isort", Args: []string{"--check", "ninja_extra", "tests"}},
		{Prog: "flake8", Args: []string{"ninja_extra", "tests"}},
		{Prog: "mypy", Args: []string{"ninja_extra", "ninja_extra"}},
	}, lint.Invocations)

	install, ok := r.Lookup("install")
	require.True(t, ok)
	assert.Equal(t, []Invocation{
		{Prog: "flit", Args: []string{"install", "--deps", "develop", "--symlink"}},
	}, install.Invocations)

	test, ok := r.Lookup("test")
	require.True(t, ok)
	assert.Equal(t, []Invocation{
		{Prog: "pytest", Args: []string{"."}},
	}, test.Invocations)

	cov, ok := r.Lookup("test-cov")
	require.True(t, ok)
	assert.Equal(t, []Invocation{
		{Prog: "pytest", Args: []string{"--cov=ninja_extra", "--cov-report", "term-missing", "tests"}},
	}, cov.Invocations)
}

func TestBuiltin_FmtAliasesFormat(t *testing.T) {
	r := Builtin(Tooling{})

	fmtTask, ok := r.Lookup("fmt")
	require.True(t, ok)
	formatTask, ok := r.Lookup("format")
	require.True(t, ok)

	assert.Equal(t, fmtTask.Invocations, formatTask.Invocations)
	assert.Equal(t, []Invocation{
		{Prog: "black", Args: []string{"ninja_extra", "tests"}},
		{Prog: "isort", Args: []string{"ninja_extra", "tests"}},
	}, fmtTask.Invocations)
}

func TestBuiltin_Tooling(t *testing.T) {
	r := Builtin(Tooling{
		Package:     "mypkg",
		SourceTrees: []string{"mypkg"},
		TestsTree:   "t",
		Bin: map[string]string{
			"black": "/opt/black",
			"mypy":  "",
		},
	})

	lint, _ := r.Lookup("lint")
	assert.Equal(t, "/opt/black", lint.Invocations[0].Prog)
	// empty override falls back to the tool's own name
	assert.Equal(t, "mypy", lint.Invocations[3].Prog)
	assert.Equal(t, []string{"mypkg", "mypkg"}, lint.Invocations[3].Args)

	cov, _ := r.Lookup("test-cov")
	assert.Equal(t, []string{"--cov=mypkg", "--cov-report", "term-missing", "t"}, cov.Invocations[0].Args)
}

func TestBuiltin_EveryTaskRunnable(t *testing.T) {
	for _, tsk := range Builtin(Tooling{}).List() {
		t.Run(tsk.Name, func(t *testing.T) {
			fe := &fakeExec{}
			res := Runner{Exec: fe.exec}.Run(tsk)

			require.NoError(t, res.Err)
			assert.Equal(t, 0, res.Code)
			assert.Len(t, fe.ran, len(tsk.Invocations))
		})
	}
}

func TestBuiltin_EveryTaskDescribed(t *testing.T) {
	for _, tsk := range Builtin(Tooling{}).List() {
		assert.NotEmpty(t, tsk.Desc, "task %q has no description", tsk.Name)
	}
}

func TestWithHTMLCoverage(t *testing.T) {
	cov, _ := Builtin(Tooling{}).Lookup("test-cov")
	html := WithHTMLCoverage(cov)

	assert.Equal(t,
		[]string{"--cov=ninja_extra", "--cov-report", "term-missing", "tests", "--cov-report", "html"},
		html.Invocations[0].Args,
	)
	// the original task is untouched
	assert.Equal(t,
		[]string{"--cov=ninja_extra", "--cov-report", "term-missing", "tests"},
		cov.Invocations[0].Args,
	)
}
