package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/pkg/dispatcher"
	"github.com/mnikita/task-dispatch/pkg/dispatcher/mocks"
	"github.com/mnikita/task-dispatch/pkg/util"
	"github.com/stretchr/testify/assert"
)

type Mock struct {
	t *testing.T

	ctrl *gomock.Controller

	registry *common.TaskRegistry
	backend  *mocks.MockBackend

	handler *dispatcher.Dispatcher

	calls  int
	args   common.Args
	kwargs common.Kwargs
}

func newMock(t *testing.T) *Mock {
	m := &Mock{}
	m.t = t
	m.ctrl = gomock.NewController(t)

	m.backend = mocks.NewMockBackend(m.ctrl)
	m.registry = common.NewTaskRegistry()

	m.registry.RegisterFunc("echo", func(ctx context.Context, args common.Args,
		kwargs common.Kwargs) (interface{}, error) {
		m.calls++
		m.args = args
		m.kwargs = kwargs

		return args.Interface(), nil
	})

	m.registry.RegisterFunc("fail", func(ctx context.Context, args common.Args,
		kwargs common.Kwargs) (interface{}, error) {
		m.calls++

		return nil, errors.New("division by zero")
	})

	m.registry.RegisterFunc("panic", func(ctx context.Context, args common.Args,
		kwargs common.Kwargs) (interface{}, error) {
		m.calls++

		panic("index out of range")
	})

	m.handler = dispatcher.NewDispatcher(m.registry, m.backend)

	return m
}

func setupTest(m *Mock) func() {
	if m == nil {
		panic("Mock not initialized")
	}

	return func() {
		defer m.ctrl.Finish()
		defer util.AssertPanic(m.t)
	}
}

func TestMalformedPayload(t *testing.T) {
	tests := []struct {
		name   string
		args   string
		kwargs string
	}{
		{name: "args", args: `[1,`, kwargs: `{}`},
		{name: "kwargs", args: `[]`, kwargs: `{"a"}`},
		{name: "both", args: `nope`, kwargs: `nope`},
	}

	for _, tt := range tests {
		for _, mode := range []dispatcher.Mode{dispatcher.Sync, dispatcher.Async} {
			t.Run(tt.name+"/"+mode.String(), func(t *testing.T) {
				m := newMock(t)

				defer setupTest(m)()

				outcome, err := m.handler.Trigger(context.Background(), "echo", tt.args, tt.kwargs, mode)

				assert.Nil(t, outcome)
				assert.True(t, common.IsMalformedPayload(err), "error %v", err)
				assert.Equal(t, 0, m.calls)
			})
		}
	}
}

func TestInvalidArgumentShape(t *testing.T) {
	for _, raw := range []string{`{"a": 1}`, `5`, `"x"`, `true`} {
		t.Run(raw, func(t *testing.T) {
			m := newMock(t)

			defer setupTest(m)()

			_, err := m.handler.Trigger(context.Background(), "echo", raw, "", dispatcher.Async)

			assert.True(t, common.IsInvalidArgumentShape(err), "error %v", err)
		})
	}
}

func TestSyncTaskNotFound(t *testing.T) {
	m := newMock(t)

	defer setupTest(m)()

	_, err := m.handler.Trigger(context.Background(), "missing", "[]", "{}", dispatcher.Sync)

	assert.True(t, common.IsTaskNotFound(err))
	assert.Equal(t, "Task(missing) not registered", err.Error())
	assert.Equal(t, 0, m.calls)
}

func TestSyncExactArgs(t *testing.T) {
	m := newMock(t)

	defer setupTest(m)()

	outcome, err := m.handler.Trigger(context.Background(), "echo", `[1,"hello"]`, `{}`, dispatcher.Sync)

	assert.Nil(t, err)
	assert.Equal(t, 1, m.calls)
	assert.Equal(t, common.Args{common.NewInt(1), common.NewString("hello")}, m.args)
	assert.Equal(t, common.Kwargs{}, m.kwargs)

	assert.Equal(t, dispatcher.Sync, outcome.Mode)
	assert.Nil(t, outcome.Handle)
	assert.Equal(t, []interface{}{int64(1), "hello"}, outcome.Result)
}

func TestSyncNilPayload(t *testing.T) {
	m := newMock(t)

	defer setupTest(m)()

	_, err := m.handler.Dispatch(context.Background(), "echo", nil, nil, dispatcher.Sync)

	assert.Nil(t, err)
	assert.NotNil(t, m.args)
	assert.NotNil(t, m.kwargs)
}

func TestSyncExecutionError(t *testing.T) {
	m := newMock(t)

	defer setupTest(m)()

	_, err := m.handler.Trigger(context.Background(), "fail", "", "", dispatcher.Sync)

	var executionError *common.TaskExecutionError

	assert.True(t, errors.As(err, &executionError))
	assert.Equal(t, "fail", executionError.Task)
	assert.Equal(t, "division by zero", executionError.Message)
	assert.Equal(t, 1, m.calls)
}

func TestSyncPanic(t *testing.T) {
	m := newMock(t)

	defer setupTest(m)()

	_, err := m.handler.Trigger(context.Background(), "panic", "", "", dispatcher.Sync)

	assert.True(t, common.IsTaskExecution(err))
	assert.Equal(t, "Task(panic) failed: index out of range", err.Error())
}

func TestSyncNeverSubmits(t *testing.T) {
	m := newMock(t)

	m.backend.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	defer setupTest(m)()

	_, err := m.handler.Trigger(context.Background(), "echo", "[]", "{}", dispatcher.Sync)

	assert.Nil(t, err)
}

func TestAsyncSkipsRegistry(t *testing.T) {
	m := newMock(t)

	var tasks []*common.Task

	m.backend.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, task *common.Task) (*common.Handle, error) {
			tasks = append(tasks, task)

			return &common.Handle{TaskId: task.TaskId, JobId: uint64(len(tasks))}, nil
		})

	defer setupTest(m)()

	kwargs := `{"user_id":5,"force":true}`

	first, err := m.handler.Trigger(context.Background(), "alerts.send", "[]", kwargs, dispatcher.Async)
	assert.Nil(t, err)

	second, err := m.handler.Trigger(context.Background(), "alerts.send", "[]", kwargs, dispatcher.Async)
	assert.Nil(t, err)

	assert.Equal(t, 0, m.calls)
	assert.Equal(t, dispatcher.Async, first.Mode)
	assert.Nil(t, first.Result)
	assert.NotEqual(t, first.Handle, second.Handle)
	assert.NotEqual(t, first.Handle.TaskId, second.Handle.TaskId)

	assert.Equal(t, "alerts.send", tasks[0].Name)
	assert.Equal(t, common.Args{}, tasks[0].Args)
	assert.Equal(t, common.Kwargs{"user_id": common.NewInt(5), "force": common.NewBool(true)}, tasks[0].Kwargs)
	assert.False(t, tasks[0].SentAt.IsZero())
}

func TestAsyncUnreachable(t *testing.T) {
	m := newMock(t)

	m.backend.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	defer setupTest(m)()

	_, err := m.handler.Trigger(context.Background(), "missing", "[]", "{}", dispatcher.Async)

	assert.True(t, common.IsBackendUnreachable(err))
	assert.False(t, common.IsTaskNotFound(err))
}

func TestAsyncSubmissionError(t *testing.T) {
	m := newMock(t)

	rejected := &common.TaskSubmissionError{Task: "echo", Err: errors.New("job too big")}

	m.backend.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, rejected)

	defer setupTest(m)()

	_, err := m.handler.Trigger(context.Background(), "echo", "[]", "{}", dispatcher.Async)

	assert.Equal(t, rejected, err)
	assert.False(t, common.IsBackendUnreachable(err))
}

func TestTasks(t *testing.T) {
	m := newMock(t)

	defer setupTest(m)()

	assert.Equal(t, []string{"echo", "fail", "panic"}, m.handler.Tasks())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "sync", dispatcher.Sync.String())
	assert.Equal(t, "async", dispatcher.Async.String())
}
