//go:generate mockgen -destination=./mocks/mock_worker.go -package=mocks . Handler,EventHandler
//Package worker runs reserved tasks on a pool of task threads
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/wire"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/pkg/dispatcher"
	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/mnikita/task-dispatch/pkg/util"
)

var WireSet = wire.NewSet(NewWorker, NewConfiguration,
	wire.Bind(new(Handler), new(*Worker)))

type EventHandler interface {
	OnStartWorker()
	OnEndWorker()

	OnPreTask(task *common.Task)
	OnPostTask(task *common.Task)
	OnThreadHeartbeat(threadId int)
}

type Handler interface {
	Init() error
	Close() error

	HandlePayload(task *common.Task)

	SetEventHandler(eventHandler EventHandler)
	SetTaskEventHandler(eventHandler common.TaskProcessEventHandler)
	SetTaskQueueEventHandler(eventHandler common.TaskQueueEventHandler)
	UpdateConfiguration(config *Configuration)
	StartWorker()
	StopWorker()
}

//Worker stores configuration for server activation
type Worker struct {
	taskQueue     chan *common.Task
	taskQueueQuit chan bool
	quit          chan bool

	configMux sync.RWMutex
	*Configuration

	dispatcher dispatcher.Handler

	taskEventHandler      common.TaskProcessEventHandler
	taskQueueEventHandler common.TaskQueueEventHandler
	eventHandler          EventHandler

	taskQueueCounter int
	mux              sync.Mutex
}

//Configuration stores initialization data for worker server
type Configuration struct {
	//Number of pre-initialized task thread
	Concurrency int `validate:"min=1"`

	//Waiting time for worker to wait task threads closing
	WaitTaskThreadsToClose time.Duration `validate:"gt=0"`

	//Waiting time for a free task thread before reserved task is released
	WaitToAcceptConsumerTask time.Duration `validate:"gt=0"`

	//Waiting time to issue heartbeat
	Heartbeat time.Duration `validate:"gt=0"`
}

func NewConfiguration() *Configuration {
	//make default configuration
	return &Configuration{
		Concurrency:              util.GetSystemConcurrency(),
		Heartbeat:                time.Second * 5,
		WaitTaskThreadsToClose:   time.Second * 30,
		WaitToAcceptConsumerTask: time.Second * 5,
	}
}

//NewWorker creates and configures Worker instance
func NewWorker(config *Configuration, dispatcher dispatcher.Handler) *Worker {
	return &Worker{Configuration: config, dispatcher: dispatcher}
}

func (w *Worker) config() Configuration {
	w.configMux.RLock()
	defer w.configMux.RUnlock()

	return *w.Configuration
}

//UpdateConfiguration applies new timings. Concurrency change requires restart
func (w *Worker) UpdateConfiguration(config *Configuration) {
	w.configMux.Lock()
	defer w.configMux.Unlock()

	if config.Concurrency != w.Concurrency {
		log.Logger().ConfigReloadRequired("worker concurrency")
	}

	w.Heartbeat = config.Heartbeat
	w.WaitTaskThreadsToClose = config.WaitTaskThreadsToClose
	w.WaitToAcceptConsumerTask = config.WaitToAcceptConsumerTask
}

func (w *Worker) handle(wg *sync.WaitGroup) {
	defer wg.Done()

	w.mux.Lock()
	w.taskQueueCounter++
	id := w.taskQueueCounter
	w.mux.Unlock()

	log.Logger().TaskThreadStarted(id)
	defer log.Logger().TaskThreadEnded(id)

	for {
		select {
		case <-w.taskQueueQuit:
			return
		case task := <-w.taskQueue:
			if task != nil {
				w.handleTask(id, task)
			} else {
				return
			}
		case <-time.After(w.config().Heartbeat):
			w.OnThreadHeartbeat(id)
		}
	}
}

func (w *Worker) handleTask(threadId int, task *common.Task) {
	ctx := common.WithHeartbeat(context.Background(), func() {
		w.OnTaskHeartbeat(task)
	})

	w.OnPreTask(task, threadId)

	//unregistered task fails here with TaskNotFoundError
	outcome, err := w.dispatcher.Dispatch(ctx, task.Name, task.Args, task.Kwargs, dispatcher.Sync)

	if err != nil {
		w.OnTaskError(task, err)

		return
	}

	w.OnPostTask(task, threadId)

	if outcome.Result != nil {
		w.OnTaskResult(task, outcome.Result)
	}

	w.OnTaskSuccess(task)
}

func (w *Worker) startTaskThreads(waitGroup *sync.WaitGroup) {
	for i := 0; i < w.Concurrency; i++ {
		waitGroup.Add(1)
		go w.handle(waitGroup)
	}
}

func (w *Worker) stopTaskThreads(waitGroup *sync.WaitGroup) {
	log.Logger().TaskThreadsStopping(w.Concurrency)

	for i := 0; i < w.Concurrency; i++ {
		w.taskQueueQuit <- true
	}

	err := util.WaitTimeout(waitGroup, w.config().WaitTaskThreadsToClose)

	if err != nil {
		log.Logger().Error(err)
	}
}

func (w *Worker) Init() error {
	w.quit = make(chan bool)
	w.taskQueueQuit = make(chan bool, w.Concurrency)
	w.taskQueue = make(chan *common.Task, w.Concurrency)

	return nil
}

func (w *Worker) Close() error {
	close(w.taskQueue)
	close(w.quit)

	return nil
}

//HandlePayload queues task for the first free task thread.
//Task not accepted within WaitToAcceptConsumerTask is handed back to the broker
func (w *Worker) HandlePayload(task *common.Task) {
	w.OnTaskQueued(task)

	timeout := w.config().WaitToAcceptConsumerTask

	select {
	case w.taskQueue <- task:
	case <-time.After(timeout):
		log.Logger().TaskQueueTimeout(task.Name, timeout)

		w.OnTaskAcceptTimeout(task)
	}
}

//SetEventHandler
func (w *Worker) SetEventHandler(eventHandler EventHandler) {
	w.eventHandler = eventHandler
}

//SetTaskEventHandler
func (w *Worker) SetTaskEventHandler(eventHandler common.TaskProcessEventHandler) {
	w.taskEventHandler = eventHandler
}

//SetTaskQueueEventHandler
func (w *Worker) SetTaskQueueEventHandler(eventHandler common.TaskQueueEventHandler) {
	w.taskQueueEventHandler = eventHandler
}

//StartWorker starts workers server
func (w *Worker) StartWorker() {
	w.OnStartWorker()

	var waitGroup sync.WaitGroup

	w.startTaskThreads(&waitGroup)

	go func(wg *sync.WaitGroup) {
		<-w.quit
		w.stopTaskThreads(wg)

		w.quit <- true

		w.OnEndWorker()
	}(&waitGroup)
}

//StopWorker stops workers server
func (w *Worker) StopWorker() {
	log.Logger().WorkerStopping()

	//send stop signal to worker thread
	w.quit <- true

	//wait for worker thread stop confirmation
	<-w.quit
}

func (w *Worker) OnStartWorker() {
	log.Logger().WorkerStarted()

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnStartWorker()
	}
}

func (w *Worker) OnEndWorker() {
	log.Logger().WorkerEnded()

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnEndWorker()
	}
}

func (w *Worker) OnPreTask(task *common.Task, threadId int) {
	log.Logger().TaskPre(task.Name, threadId)

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnPreTask(task)
	}
}

func (w *Worker) OnPostTask(task *common.Task, threadId int) {
	log.Logger().TaskPost(task.Name, threadId)

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnPostTask(task)
	}
}

func (w *Worker) OnThreadHeartbeat(threadId int) {
	log.Logger().ThreadHeartbeat(threadId, w.config().Heartbeat)

	if !util.IsNil(w.eventHandler) {
		w.eventHandler.OnThreadHeartbeat(threadId)
	}
}

func (w *Worker) OnTaskQueued(task *common.Task) {
	log.Logger().TaskQueued(task.Name)

	if !util.IsNil(w.taskQueueEventHandler) {
		w.taskQueueEventHandler.OnTaskQueued(task)
	}
}

func (w *Worker) OnTaskAcceptTimeout(task *common.Task) {
	if !util.IsNil(w.taskQueueEventHandler) {
		w.taskQueueEventHandler.OnTaskAcceptTimeout(task)
	}
}

func (w *Worker) OnTaskResult(task *common.Task, result interface{}) {
	log.Logger().TaskResult(task.Name, result)

	if !util.IsNil(w.taskEventHandler) {
		w.taskEventHandler.OnTaskResult(task, result)
	}
}

func (w *Worker) OnTaskSuccess(task *common.Task) {
	log.Logger().TaskSuccess(task.Name)

	if !util.IsNil(w.taskEventHandler) {
		w.taskEventHandler.OnTaskSuccess(task)
	}
}

func (w *Worker) OnTaskHeartbeat(task *common.Task) {
	log.Logger().TaskHeartbeat(task.Name)

	if !util.IsNil(w.taskEventHandler) {
		w.taskEventHandler.OnTaskHeartbeat(task)
	}
}

func (w *Worker) OnTaskError(task *common.Task, err error) {
	log.Logger().Error(err)

	if !util.IsNil(w.taskEventHandler) {
		w.taskEventHandler.OnTaskError(task, err)
	}
}
