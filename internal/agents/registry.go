package agents

import (
	"errors"
	"fmt"
	"sync"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

// ErrNotRegistered indicates no executor is registered for the requested
// agent kind.
var ErrNotRegistered = errors.New("agent not registered")

// Registry owns one executor instance per agent kind and resolves by key
// at dispatch time. It exists as a substitutability seam: new agent kinds
// slot in behind the Executor contract without changing call sites.
type Registry struct {
	mu        sync.RWMutex
	executors map[models.AgentKind]Executor
}

// NewRegistry creates a registry populated with all built-in executors.
func NewRegistry() *Registry {
	r := &Registry{
		executors: make(map[models.AgentKind]Executor),
	}
	r.Register(NewCoordinator())
	return r
}

// Register adds an executor under its own kind, replacing any previous
// registration for that kind.
func (r *Registry) Register(e Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executors[e.Kind()] = e
}

// Get resolves the executor for a kind.
func (r *Registry) Get(kind models.AgentKind) (Executor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.executors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, kind)
	}
	return e, nil
}

// Dispatch routes a single task to the executor registered for the
// task's assigned kind.
func (r *Registry) Dispatch(task models.AgentTask, ctx *Context) (models.AgentOutcome, error) {
	e, err := r.Get(task.Agent)
	if err != nil {
		return models.AgentOutcome{}, err
	}
	return e.Run(task, ctx)
}

// RunCoordinator resolves the coordinator slot and orchestrates the work
// item through it.
func (r *Registry) RunCoordinator(ctx *Context, item models.WorkItem) ([]models.ExecutionReport, error) {
	e, err := r.Get(models.AgentCoordinator)
	if err != nil {
		return nil, err
	}
	coordinator, ok := e.(*Coordinator)
	if !ok {
		return nil, fmt.Errorf("%w: coordinator slot holds %s", ErrNotRegistered, e.Name())
	}
	return coordinator.Orchestrate(item, ctx)
}
