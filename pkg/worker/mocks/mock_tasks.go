package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mnikita/task-dispatch/pkg/common"
)

const (
	Short = iota
	ShortResult
	Long
	Error
	Heartbeat
	Panic
)

var Tasks = []string{"Short", "ShortResult", "Long", "Error", "Heartbeat", "Panic"}

var ErrorTaskErr = errors.New("ErrorTask test error")

var ShortTaskResult = "ShortTaskResult"

func HandleShortTest(_ context.Context, _ common.Args, _ common.Kwargs) (interface{}, error) {
	time.Sleep(time.Millisecond * 20)

	return nil, nil
}

func HandleShortTestWithResult(_ context.Context, args common.Args, _ common.Kwargs) (interface{}, error) {
	time.Sleep(time.Millisecond * 20)

	return ShortTaskResult, nil
}

func HandleLongTask(_ context.Context, _ common.Args, _ common.Kwargs) (interface{}, error) {
	time.Sleep(time.Millisecond * 500)

	return nil, nil
}

func HandleHeartbeatTask(ctx context.Context, _ common.Args, _ common.Kwargs) (interface{}, error) {
	time.Sleep(time.Millisecond * 100)

	common.SendHeartbeat(ctx)

	time.Sleep(time.Millisecond * 100)

	return nil, nil
}

func HandleErrorTask(_ context.Context, _ common.Args, _ common.Kwargs) (interface{}, error) {
	time.Sleep(time.Millisecond * 10)

	return nil, ErrorTaskErr
}

func HandlePanicTask(_ context.Context, args common.Args, _ common.Kwargs) (interface{}, error) {
	//index out of range
	return args[3], nil
}

func RegisterTasks(registry *common.TaskRegistry) {
	registry.RegisterFunc(Tasks[Short], HandleShortTest)
	registry.RegisterFunc(Tasks[ShortResult], HandleShortTestWithResult)
	registry.RegisterFunc(Tasks[Long], HandleLongTask)
	registry.RegisterFunc(Tasks[Error], HandleErrorTask)
	registry.RegisterFunc(Tasks[Heartbeat], HandleHeartbeatTask)
	registry.RegisterFunc(Tasks[Panic], HandlePanicTask)
}
