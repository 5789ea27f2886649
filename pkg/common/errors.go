package common

import (
	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/pkg/errors"
)

//Payload field names used in error messages
const (
	FieldArgs   = "args"
	FieldKwargs = "kwargs"
)

//MalformedPayloadError reports payload text that is not valid JSON
type MalformedPayloadError struct {
	Field string
	Err   error
}

func (e *MalformedPayloadError) Error() string {
	return log.MalformedPayloadMessage(e.Field, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

//InvalidArgumentShapeError reports valid JSON of the wrong type
type InvalidArgumentShapeError struct {
	Field string
	Want  Kind
	Got   Kind
}

func (e *InvalidArgumentShapeError) Error() string {
	return log.InvalidArgumentShapeMessage(e.Field, e.Want.String(), e.Got.String())
}

//TaskNotFoundError reports a task name missing from the registry
type TaskNotFoundError struct {
	Task string
}

func (e *TaskNotFoundError) Error() string {
	return log.TaskNotFoundMessage(e.Task)
}

//TaskExecutionError wraps a failure raised by a task running inline
type TaskExecutionError struct {
	Task    string
	Message string
	Err     error
}

func (e *TaskExecutionError) Error() string {
	return log.TaskExecutionMessage(e.Task, e.Message)
}

func (e *TaskExecutionError) Unwrap() error {
	return e.Err
}

//TaskSubmissionError reports a task rejected at broker protocol level
type TaskSubmissionError struct {
	Task string
	Err  error
}

func (e *TaskSubmissionError) Error() string {
	return log.TaskSubmissionMessage(e.Task, e.Err)
}

func (e *TaskSubmissionError) Unwrap() error {
	return e.Err
}

//BackendUnreachableError reports a broker transport failure
type BackendUnreachableError struct {
	Task string
	Err  error
}

func (e *BackendUnreachableError) Error() string {
	return log.BackendUnreachableMessage(e.Task, e.Err)
}

func (e *BackendUnreachableError) Unwrap() error {
	return e.Err
}

func IsMalformedPayload(err error) bool {
	var e *MalformedPayloadError
	return errors.As(err, &e)
}

func IsInvalidArgumentShape(err error) bool {
	var e *InvalidArgumentShapeError
	return errors.As(err, &e)
}

func IsTaskNotFound(err error) bool {
	var e *TaskNotFoundError
	return errors.As(err, &e)
}

func IsTaskExecution(err error) bool {
	var e *TaskExecutionError
	return errors.As(err, &e)
}

func IsTaskSubmission(err error) bool {
	var e *TaskSubmissionError
	return errors.As(err, &e)
}

func IsBackendUnreachable(err error) bool {
	var e *BackendUnreachableError
	return errors.As(err, &e)
}
