//go:generate mockgen -destination=./mocks/mock_task.go -package=mocks . TaskPayloadHandler,TaskProcessEventHandler,TaskQueueEventHandler
// Package common provides primitives for task registration and marshalling of task request data
package common

import (
	"context"
	"time"
)

const (
	Error = iota
	Success
	Heartbeat
	Result
)

var eventTypes = []string{"Error", "Success", "Heartbeat", "Result"}

type TaskProcessEvent struct {
	EventId int
	Task    *Task
	Err     error
	Result  interface{}
}

//Task struct contains task requests data as sent to the broker
type Task struct {
	//Broker job id, assigned on reserve
	Id uint64 `json:"-" msgpack:"-"`

	TaskId string    `json:"id" msgpack:"id"`
	Name   string    `json:"task" msgpack:"task"`
	Args   Args      `json:"args" msgpack:"args"`
	Kwargs Kwargs    `json:"kwargs" msgpack:"kwargs"`
	SentAt time.Time `json:"sent_at" msgpack:"sent_at"`
}

//Handle identifies an accepted submission
type Handle struct {
	//Dispatcher generated task id
	TaskId string
	//Broker job id
	JobId uint64
}

//TaskHandler handles task requests
type TaskHandler interface {
	Handle(ctx context.Context, args Args, kwargs Kwargs) (interface{}, error)
}

//TaskHandlerFunc adapts ordinary function to TaskHandler
type TaskHandlerFunc func(ctx context.Context, args Args, kwargs Kwargs) (interface{}, error)

func (f TaskHandlerFunc) Handle(ctx context.Context, args Args, kwargs Kwargs) (interface{}, error) {
	return f(ctx, args, kwargs)
}

//TaskConstructor creates TaskHandler instances
type TaskConstructor func() TaskHandler

//TaskPayloadHandler handles consumer task payload
type TaskPayloadHandler interface {
	HandlePayload(task *Task)
}

type TaskProcessEventHandler interface {
	OnTaskResult(task *Task, result interface{})
	OnTaskSuccess(task *Task)
	OnTaskHeartbeat(task *Task)
	OnTaskError(task *Task, err error)
}

type TaskQueueEventHandler interface {
	OnTaskQueued(task *Task)
	OnTaskAcceptTimeout(task *Task)
}

func (e *TaskProcessEvent) GetEventType() string {
	return eventTypes[e.EventId]
}

type heartbeatKey struct{}

//WithHeartbeat returns context carrying heartbeat callback of the running task
func WithHeartbeat(ctx context.Context, heartbeat func()) context.Context {
	return context.WithValue(ctx, heartbeatKey{}, heartbeat)
}

//SendHeartbeat signals that long running task is still alive.
//Tasks running inline have no heartbeat and the call does nothing
func SendHeartbeat(ctx context.Context) {
	if heartbeat, ok := ctx.Value(heartbeatKey{}).(func()); ok && heartbeat != nil {
		heartbeat()
	}
}
