//Package tasks registers task handlers available to the dispatcher and worker.
//Import it for side effects
package tasks

import (
	"context"
	"time"

	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/pkg/errors"
)

const (
	AddTaskName   string = "add"
	EchoTaskName  string = "echo"
	SleepTaskName string = "sleep"
)

func init() {
	common.RegisterTask(AddTaskName, func() common.TaskHandler {
		return &AddTask{}
	})
	common.RegisterTaskFunc(EchoTaskName, Echo)
	common.RegisterTaskFunc(SleepTaskName, Sleep)
}

//AddTask sums numeric positional arguments.
//Result is integer when every argument is integral
type AddTask struct {
	intSum   int64
	floatSum float64
	isFloat  bool
}

func (t *AddTask) Handle(_ context.Context, args common.Args, _ common.Kwargs) (interface{}, error) {
	for i, arg := range args {
		if err := t.add(arg); err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
	}

	if t.isFloat {
		return t.floatSum, nil
	}

	return t.intSum, nil
}

func (t *AddTask) add(arg common.Value) error {
	if !t.isFloat {
		if i, err := arg.AsInt(); err == nil {
			t.intSum += i
			t.floatSum += float64(i)

			return nil
		}
	}

	f, err := arg.AsFloat()

	if err != nil {
		return err
	}

	t.isFloat = true
	t.floatSum += f

	return nil
}

//Echo returns its arguments unchanged
func Echo(_ context.Context, args common.Args, kwargs common.Kwargs) (interface{}, error) {
	return map[string]interface{}{
		"args":   args,
		"kwargs": kwargs,
	}, nil
}

//Sleep waits for kwarg "seconds" (default 1), sending heartbeat every second
func Sleep(ctx context.Context, _ common.Args, kwargs common.Kwargs) (interface{}, error) {
	seconds := 1.0

	if v, ok := kwargs.Get("seconds"); ok {
		f, err := v.AsFloat()

		if err != nil {
			return nil, errors.Wrap(err, "seconds")
		}

		seconds = f
	}

	deadline := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer deadline.Stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			common.SendHeartbeat(ctx)
		case <-deadline.C:
			return seconds, nil
		}
	}
}
