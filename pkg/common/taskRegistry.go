package common

import (
	"sort"
	"sync"

	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/thoas/go-funk"
)

//Registry resolves task names to handlers
type Registry interface {
	GetTaskHandler(taskName string) (TaskHandler, error)
	IsRegistered(taskName string) bool
	GetTasks() []string
}

//TaskRegistry stores TaskConstructor per task name. It is safe for concurrent use
type TaskRegistry struct {
	mux          sync.RWMutex
	constructors map[string]TaskConstructor
}

var (
	once            sync.Once
	registeredTasks *TaskRegistry
)

func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{constructors: make(map[string]TaskConstructor)}
}

func newRegisteredTasks() *TaskRegistry {
	once.Do(func() { // <-- atomic, does not allow repeating
		registeredTasks = NewTaskRegistry()
	})

	return registeredTasks
}

//DefaultRegistry returns process wide registry populated by RegisterTask
func DefaultRegistry() *TaskRegistry {
	return newRegisteredTasks()
}

//Register stores TaskConstructor under taskName, replacing previous registration
func (r *TaskRegistry) Register(taskName string, constructor TaskConstructor) {
	log.Logger().TaskRegistered(taskName)

	r.mux.Lock()
	defer r.mux.Unlock()

	r.constructors[taskName] = constructor
}

//RegisterFunc registers stateless task function
func (r *TaskRegistry) RegisterFunc(taskName string, f TaskHandlerFunc) {
	r.Register(taskName, func() TaskHandler {
		return f
	})
}

//GetTaskHandler creates new TaskHandler instance for taskName
func (r *TaskRegistry) GetTaskHandler(taskName string) (TaskHandler, error) {
	r.mux.RLock()
	constructor, ok := r.constructors[taskName]
	r.mux.RUnlock()

	if !ok {
		return nil, &TaskNotFoundError{Task: taskName}
	}

	return constructor(), nil
}

func (r *TaskRegistry) IsRegistered(taskName string) bool {
	r.mux.RLock()
	defer r.mux.RUnlock()

	_, ok := r.constructors[taskName]

	return ok
}

//GetTasks returns sorted slice with all task names registered
func (r *TaskRegistry) GetTasks() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()

	if len(r.constructors) == 0 {
		return []string{}
	}

	tasks := funk.Keys(r.constructors).([]string)

	sort.Strings(tasks)

	return tasks
}

//RegisterTask registers tasks by name and stores TaskConstructor for TaskHandler instances creation
func RegisterTask(taskName string, constructor TaskConstructor) {
	newRegisteredTasks().Register(taskName, constructor)
}

//RegisterTaskFunc registers stateless task function by name
func RegisterTaskFunc(taskName string, f TaskHandlerFunc) {
	newRegisteredTasks().RegisterFunc(taskName, f)
}

//GetRegisteredTaskHandler retrieves TaskHandlers by name
func GetRegisteredTaskHandler(taskName string) (TaskHandler, error) {
	return newRegisteredTasks().GetTaskHandler(taskName)
}

//GetRegisteredTasks returns slice with all task names registered
func GetRegisteredTasks() []string {
	return newRegisteredTasks().GetTasks()
}
