//go:generate mockgen -destination=./mocks/mock_dispatcher.go -package=mocks . Backend,Handler
// Package dispatcher runs registered tasks inline or submits them to the broker
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/pkg/connection"
	"github.com/mnikita/task-dispatch/pkg/log"
)

var WireSet = wire.NewSet(NewDispatcher, ProvideRegistry, ProvideBackend,
	wire.Bind(new(Handler), new(*Dispatcher)))

type Mode int

const (
	Async Mode = iota
	Sync
)

func (m Mode) String() string {
	if m == Sync {
		return "sync"
	}

	return "async"
}

const (
	stateValidating = "Validating"
	stateExecuting  = "Executing"
	stateSubmitting = "Submitting"
	stateSucceeded  = "Succeeded"
	stateFailed     = "Failed"
)

//Outcome carries Result of inline run or Handle of accepted submission
type Outcome struct {
	Mode   Mode
	Result interface{}
	Handle *common.Handle
}

//Backend accepts tasks for out of process execution
type Backend interface {
	Submit(ctx context.Context, task *common.Task) (*common.Handle, error)
}

type Handler interface {
	Dispatch(ctx context.Context, taskName string, args common.Args, kwargs common.Kwargs, mode Mode) (*Outcome, error)
	Trigger(ctx context.Context, taskName string, rawArgs string, rawKwargs string, mode Mode) (*Outcome, error)
	Tasks() []string
}

type Dispatcher struct {
	registry common.Registry
	backend  Backend

	newId func() string
	now   func() time.Time
}

//ProvideRegistry returns process wide task registry
func ProvideRegistry() common.Registry {
	return common.DefaultRegistry()
}

//ProvideBackend submits tasks through broker connection
func ProvideBackend(conn *connection.Connection) Backend {
	return conn
}

func NewDispatcher(registry common.Registry, backend Backend) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		backend:  backend,
		newId:    func() string { return uuid.New().String() },
		now:      func() time.Time { return time.Now().UTC() },
	}
}

//Tasks lists task names runnable inline
func (d *Dispatcher) Tasks() []string {
	return d.registry.GetTasks()
}

//Trigger parses raw JSON payloads and dispatches the task.
//Payload errors are returned before registry or broker are touched
func (d *Dispatcher) Trigger(ctx context.Context, taskName string, rawArgs string, rawKwargs string,
	mode Mode) (*Outcome, error) {
	log.Logger().DispatchState(taskName, mode.String(), stateValidating)

	args, err := common.ParsePositionalArgs(rawArgs)

	if err != nil {
		log.Logger().DispatchState(taskName, mode.String(), stateFailed)

		return nil, err
	}

	kwargs, err := common.ParseNamedArgs(rawKwargs)

	if err != nil {
		log.Logger().DispatchState(taskName, mode.String(), stateFailed)

		return nil, err
	}

	return d.Dispatch(ctx, taskName, args, kwargs, mode)
}

func (d *Dispatcher) Dispatch(ctx context.Context, taskName string, args common.Args, kwargs common.Kwargs,
	mode Mode) (outcome *Outcome, err error) {
	if args == nil {
		args = common.Args{}
	}

	if kwargs == nil {
		kwargs = common.Kwargs{}
	}

	log.Logger().TaskPayload(taskName, len(args), len(kwargs))

	defer func() {
		if err != nil {
			log.Logger().DispatchState(taskName, mode.String(), stateFailed)
		} else {
			log.Logger().DispatchState(taskName, mode.String(), stateSucceeded)
		}
	}()

	if mode == Sync {
		return d.runInline(ctx, taskName, args, kwargs)
	}

	return d.submit(ctx, taskName, args, kwargs)
}

func (d *Dispatcher) runInline(ctx context.Context, taskName string, args common.Args,
	kwargs common.Kwargs) (*Outcome, error) {
	handler, err := d.registry.GetTaskHandler(taskName)

	if err != nil {
		return nil, err
	}

	log.Logger().DispatchState(taskName, Sync.String(), stateExecuting)

	start := time.Now()

	result, err := invoke(ctx, handler, args, kwargs)

	if err != nil {
		return nil, &common.TaskExecutionError{Task: taskName, Message: err.Error(), Err: err}
	}

	log.Logger().TaskRunInline(taskName, time.Since(start))

	return &Outcome{Mode: Sync, Result: result}, nil
}

//invoke runs handler turning a panic into error
func invoke(ctx context.Context, handler common.TaskHandler, args common.Args,
	kwargs common.Kwargs) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()

	return handler.Handle(ctx, args, kwargs)
}

func (d *Dispatcher) submit(ctx context.Context, taskName string, args common.Args,
	kwargs common.Kwargs) (*Outcome, error) {
	log.Logger().DispatchState(taskName, Async.String(), stateSubmitting)

	task := &common.Task{
		TaskId: d.newId(),
		Name:   taskName,
		Args:   args,
		Kwargs: kwargs,
		SentAt: d.now(),
	}

	handle, err := d.backend.Submit(ctx, task)

	if err != nil {
		if common.IsTaskSubmission(err) || common.IsBackendUnreachable(err) {
			return nil, err
		}

		return nil, &common.BackendUnreachableError{Task: taskName, Err: err}
	}

	log.Logger().TaskSubmitted(taskName, handle.TaskId, handle.JobId)

	return &Outcome{Mode: Async, Handle: handle}, nil
}
