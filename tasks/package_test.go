package tasks_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/tasks"
	"github.com/stretchr/testify/assert"
)

func handle(t *testing.T, ctx context.Context, taskName string, rawArgs string, rawKwargs string) (interface{}, error) {
	handler, err := common.GetRegisteredTaskHandler(taskName)
	assert.Nil(t, err)

	args, err := common.ParsePositionalArgs(rawArgs)
	assert.Nil(t, err)

	kwargs, err := common.ParseNamedArgs(rawKwargs)
	assert.Nil(t, err)

	return handler.Handle(ctx, args, kwargs)
}

func TestRegistered(t *testing.T) {
	registered := common.GetRegisteredTasks()

	for _, name := range []string{tasks.AddTaskName, tasks.EchoTaskName, tasks.SleepTaskName} {
		assert.Contains(t, registered, name)
	}
}

func TestAdd(t *testing.T) {
	result, err := handle(t, context.Background(), tasks.AddTaskName, "[1, 2, 39]", "")
	assert.Nil(t, err)
	assert.Equal(t, int64(42), result)

	result, err = handle(t, context.Background(), tasks.AddTaskName, "[1, 2.5]", "")
	assert.Nil(t, err)
	assert.Equal(t, 3.5, result)

	result, err = handle(t, context.Background(), tasks.AddTaskName, "[]", "")
	assert.Nil(t, err)
	assert.Equal(t, int64(0), result)

	_, err = handle(t, context.Background(), tasks.AddTaskName, `[1, "2"]`, "")
	assert.EqualError(t, err, "argument 1: value is string, not number")
}

func TestAddFreshInstance(t *testing.T) {
	for i := 0; i < 2; i++ {
		result, err := handle(t, context.Background(), tasks.AddTaskName, "[2, 3]", "")

		assert.Nil(t, err)
		assert.Equal(t, int64(5), result)
	}
}

func TestEcho(t *testing.T) {
	result, err := handle(t, context.Background(), tasks.EchoTaskName, `[1, "a"]`, `{"force": true}`)
	assert.Nil(t, err)

	b, err := json.Marshal(result)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"args": [1, "a"], "kwargs": {"force": true}}`, string(b))
}

func TestSleepHeartbeat(t *testing.T) {
	var beats int

	ctx := common.WithHeartbeat(context.Background(), func() {
		beats++
	})

	result, err := handle(t, ctx, tasks.SleepTaskName, "", `{"seconds": 1.2}`)

	assert.Nil(t, err)
	assert.Equal(t, 1.2, result)
	assert.Equal(t, 1, beats)
}

func TestSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*20)
	defer cancel()

	_, err := handle(t, ctx, tasks.SleepTaskName, "", `{"seconds": 10}`)

	assert.Equal(t, context.DeadlineExceeded, err)

	_, err = handle(t, context.Background(), tasks.SleepTaskName, "", `{"seconds": "x"}`)

	assert.NotNil(t, err)
}
