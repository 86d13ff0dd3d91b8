// Package task defines the fixed set of developer tasks nex exposes and
// the runner that executes their tool invocations.
package task

import (
	"fmt"
	"sort"
	"strings"
)

// Invocation is a single execution of an external tool with fixed
// arguments.
type Invocation struct {
	Prog string
	Args []string
}

func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Prog
	}
	return i.Prog + " " + strings.Join(i.Args, " ")
}

// Task is a named, user-triggerable unit consisting of one or more
// ordered invocations.
type Task struct {
	Name string
	// Desc is the one-line description rendered by help.
	Desc        string
	Invocations []Invocation
}

// Registry is the static table of all defined tasks. It is populated
// once at startup and never mutated afterwards.
type Registry struct {
	tasks map[string]Task
}

func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]Task)}
}

// Register adds t to the registry. It panics if a task with the same
// name already exists, since the task table is authored in source.
func (r *Registry) Register(t Task) {
	if _, exists := r.tasks[t.Name]; exists {
		panic(fmt.Sprintf("task %q already registered", t.Name))
	}
	r.tasks[t.Name] = t
}

// Lookup returns the task and whether it exists.
func (r *Registry) Lookup(name string) (Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// List returns all tasks sorted by name, independent of registration
// order.
func (r *Registry) List() []Task {
	list := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
