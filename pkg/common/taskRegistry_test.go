package common

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Mock struct {
	t *testing.T

	registry *TaskRegistry
}

func newMock(t *testing.T) (m *Mock) {
	m = &Mock{}
	m.t = t
	m.registry = NewTaskRegistry()

	return
}

func setupTest(m *Mock) func() {
	if m == nil {
		panic("Mock not initialized")
	}

	m.registry.RegisterFunc("short", HandleShortTest)

	return func() {
	}
}

func HandleShortTest(_ context.Context, args Args, _ Kwargs) (interface{}, error) {
	return len(args), nil
}

func TestMain(m *testing.M) {
	//	log.Logger().Level = logrus.TraceLevel

	RegisterTaskFunc("short", HandleShortTest)

	os.Exit(m.Run())
}

func TestGetRegisteredTaskHandler(t *testing.T) {
	taskHandler, err := GetRegisteredTaskHandler("short")

	assert.Nil(t, err)
	assert.NotNil(t, taskHandler)

	result, err := taskHandler.Handle(context.Background(), Args{NewInt(1), NewInt(2)}, Kwargs{})

	assert.Nil(t, err)
	assert.Equal(t, 2, result)
}

func TestGetRegisterTasks(t *testing.T) {
	assert.Equal(t, []string{"short"}, GetRegisteredTasks())
}

func TestGetUnregisteredTaskHandler(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	taskHandler, err := m.registry.GetTaskHandler("unknown")

	assert.Nil(t, taskHandler)
	assert.True(t, IsTaskNotFound(err))
	assert.Equal(t, "Task(unknown) not registered", err.Error())
}

func TestRegistryTasksSorted(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	m.registry.RegisterFunc("b", HandleShortTest)
	m.registry.RegisterFunc("a", HandleShortTest)

	assert.Equal(t, []string{"a", "b", "short"}, m.registry.GetTasks())
	assert.True(t, m.registry.IsRegistered("a"))
	assert.False(t, m.registry.IsRegistered("c"))
}

func TestEmptyRegistry(t *testing.T) {
	assert.Equal(t, []string{}, NewTaskRegistry().GetTasks())
}

func TestRegisterConstructorPerCall(t *testing.T) {
	m := newMock(t)
	defer setupTest(m)()

	calls := 0

	m.registry.Register("counted", func() TaskHandler {
		calls++

		return TaskHandlerFunc(HandleShortTest)
	})

	_, _ = m.registry.GetTaskHandler("counted")
	_, _ = m.registry.GetTaskHandler("counted")

	assert.Equal(t, 2, calls)
}

func TestSendHeartbeat(t *testing.T) {
	beats := 0

	ctx := WithHeartbeat(context.Background(), func() { beats++ })

	SendHeartbeat(ctx)
	SendHeartbeat(context.Background())

	assert.Equal(t, 1, beats)
}
