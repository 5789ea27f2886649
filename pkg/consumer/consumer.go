//go:generate mockgen -destination=./mocks/mock_consumer.go -package=mocks . EventHandler,Handler
package consumer

import (
	"sync"
	"time"

	"github.com/google/wire"
	"github.com/mnikita/task-dispatch/pkg/codec"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/pkg/connection"
	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/mnikita/task-dispatch/pkg/util"
	"github.com/pkg/errors"
)

var WireSet = wire.NewSet(NewConsumer, NewConfiguration,
	wire.Bind(new(Service), new(*Consumer)))

type EventHandler interface {
	OnStartConsume()
	OnEndConsume()

	OnReserveTimeout()
	OnHeartbeat()
}

type Handler interface {
	Codec() codec.Codec

	Reserve(timeout time.Duration) (id uint64, body []byte, err error)
	Release(id uint64, pri uint32, delay time.Duration) error
	Delete(id uint64) error
	Bury(id uint64, pri uint32) error
	Touch(id uint64) error

	Close() error
}

//Service is the consumer lifecycle driven by container
type Service interface {
	common.TaskProcessEventHandler
	common.TaskQueueEventHandler

	SetEventHandler(handler EventHandler)
	SetTaskPayloadHandler(handler common.TaskPayloadHandler)
	UpdateConfiguration(config *Configuration)

	StartConsumer() error
	StopConsumer()
}

//Consumer reserves jobs from the broker and settles them by task outcome
type Consumer struct {
	handler Handler

	eventHandler EventHandler

	taskPayloadHandler common.TaskPayloadHandler

	mux    sync.RWMutex
	config *Configuration

	taskEventChannel chan *common.TaskProcessEvent
	quit             chan bool
	done             chan bool
}

//Configuration stores initialization data for consumer
type Configuration struct {
	//Waiting time for consumer reserve
	WaitForConsumerReserve time.Duration `validate:"gt=0"`

	//Idle time between reserves without task events
	Heartbeat time.Duration `validate:"gt=0"`

	//Waiting time for a task thread to post task event before the event is dropped
	WaitToAcceptEvent time.Duration `validate:"gt=0"`

	ReleasePriority uint32
	ReleaseDelay    time.Duration `validate:"min=0"`
	BuryPriority    uint32
}

const (
	//Channel size to allocate. Task threads block on send while channel is full
	TaskEventChannelSize = 16
)

//NewConsumer creates consumer instance with given Handler
func NewConsumer(config *Configuration, handler Handler) *Consumer {
	if config == nil {
		config = NewConfiguration()
	}

	return &Consumer{
		config:           config,
		handler:          handler,
		taskEventChannel: make(chan *common.TaskProcessEvent, TaskEventChannelSize),
	}
}

func NewConfiguration() *Configuration {
	return &Configuration{
		WaitForConsumerReserve: time.Second * 5,
		Heartbeat:              time.Second * 5,
		WaitToAcceptEvent:      time.Second * 10,
		ReleaseDelay:           time.Second * 5,
		ReleasePriority:        1,
		BuryPriority:           1,
	}
}

func (con *Consumer) SetHandler(handler Handler) {
	con.handler = handler
}

func (con *Consumer) SetEventHandler(handler EventHandler) {
	con.eventHandler = handler
}

func (con *Consumer) SetTaskPayloadHandler(handler common.TaskPayloadHandler) {
	con.taskPayloadHandler = handler
}

//Config returns copy of the active configuration
func (con *Consumer) Config() Configuration {
	con.mux.RLock()
	defer con.mux.RUnlock()

	return *con.config
}

//UpdateConfiguration replaces timing configuration of running consumer
func (con *Consumer) UpdateConfiguration(config *Configuration) {
	con.mux.Lock()
	defer con.mux.Unlock()

	*con.config = *config
}

//handlePayload decodes job body into Task instance to invoke given TaskPayloadHandler
func (con *Consumer) handlePayload(id uint64, body []byte) error {
	if len(body) == 0 {
		return log.EmptyReserveTaskPayloadError(id)
	}

	task, err := con.handler.Codec().Decode(body)

	if err != nil {
		return log.InvalidReserveTaskPayloadError(id, err)
	}

	task.Id = id

	con.taskPayloadHandler.HandlePayload(task)

	return nil
}

func (con *Consumer) handleTaskEvent(taskProcessEvent *common.TaskProcessEvent) {
	var err error

	log.Logger().TaskProcessEvent(taskProcessEvent.GetEventType(), taskProcessEvent.Task.Name)

	switch taskProcessEvent.EventId {
	case common.Error:
		err = con.Bury(taskProcessEvent.Task.Id, con.Config().BuryPriority)
	case common.Success:
		err = con.Delete(taskProcessEvent.Task.Id)
	case common.Heartbeat:
		err = con.Touch(taskProcessEvent.Task.Id)
	case common.Result:
		log.Logger().TaskResult(taskProcessEvent.Task.Name, taskProcessEvent.Result)
	}

	if err != nil {
		log.Logger().Error(err)
	}
}

//drainTaskEvents settles every pending task event without blocking
func (con *Consumer) drainTaskEvents() {
	for {
		select {
		case taskProcessEvent := <-con.taskEventChannel:
			con.handleTaskEvent(taskProcessEvent)
		default:
			return
		}
	}
}

func (con *Consumer) handleConsume(quit <-chan bool) {
	con.OnStartConsume()
	defer con.OnEndConsume()

	for {
		config := con.Config()

		id, body, err := con.Reserve(config.WaitForConsumerReserve)

		if err != nil {
			if errors.Is(err, connection.ErrTimeout) {
				con.OnReserveTimeout()
			} else {
				log.Logger().Error(err)
			}
		} else if id != 0 {
			err = con.handlePayload(id, body)

			if err != nil {
				log.Logger().Error(err)

				//undecodable job never succeeds, park it
				if err = con.Bury(id, config.BuryPriority); err != nil {
					log.Logger().Error(err)
				}
			}
		}

		con.drainTaskEvents()

		//reserve next job right away while jobs keep coming
		if id != 0 && err == nil {
			select {
			case <-quit:
				con.drainTaskEvents()
				return
			default:
				continue
			}
		}

		select {
		case <-quit:
			con.drainTaskEvents()
			return
		case taskProcessEvent := <-con.taskEventChannel:
			con.handleTaskEvent(taskProcessEvent)
		case <-time.After(config.Heartbeat):
			con.OnHeartbeat()
		}
	}
}

//StartConsumer starts consumer thread
func (con *Consumer) StartConsumer() error {
	if util.IsNil(con.handler) {
		return log.MissingConsumerHandlerError()
	}

	if util.IsNil(con.taskPayloadHandler) {
		return log.MissingTaskPayloadHandlerError()
	}

	con.quit = make(chan bool)
	con.done = make(chan bool)

	go func(quit <-chan bool, done chan<- bool) {
		defer close(done)

		con.handleConsume(quit)
	}(con.quit, con.done)

	return nil
}

//StopConsumer stops consumer thread and waits for it to settle pending events.
//Broker handler is closed only after the thread has left Reserve
func (con *Consumer) StopConsumer() {
	log.Logger().ConsumerStopping()

	if con.done != nil {
		//send stop signal to consumer thread
		close(con.quit)

		//wait for consumer thread stop confirmation
		<-con.done

		con.quit, con.done = nil, nil
	}

	if err := con.Close(); err != nil {
		log.Logger().Error(err)
	}
}

//postTaskEvent blocks task thread until consumer accepts the event.
//Dropped event leaves the job reserved until its time to run expires
func (con *Consumer) postTaskEvent(event *common.TaskProcessEvent) {
	timeout := con.Config().WaitToAcceptEvent

	if timeout <= 0 {
		con.taskEventChannel <- event
		return
	}

	select {
	case con.taskEventChannel <- event:
	case <-time.After(timeout):
		log.Logger().TaskProcessEventTimeout(event.GetEventType(), event.Task.Name, timeout)
	}
}

//OnTaskResult queues task result for logging
func (con *Consumer) OnTaskResult(task *common.Task, result interface{}) {
	con.postTaskEvent(&common.TaskProcessEvent{EventId: common.Result, Task: task, Result: result})
}

//OnTaskSuccess queues job deletion
func (con *Consumer) OnTaskSuccess(task *common.Task) {
	con.postTaskEvent(&common.TaskProcessEvent{EventId: common.Success, Task: task})
}

//OnTaskHeartbeat queues job touch
func (con *Consumer) OnTaskHeartbeat(task *common.Task) {
	con.postTaskEvent(&common.TaskProcessEvent{EventId: common.Heartbeat, Task: task})
}

//OnTaskError queues job burial
func (con *Consumer) OnTaskError(task *common.Task, err error) {
	con.postTaskEvent(&common.TaskProcessEvent{EventId: common.Error, Task: task, Err: err})
}

//OnTaskQueued is a no-op, job stays reserved until the task ends
func (con *Consumer) OnTaskQueued(task *common.Task) {
}

//OnTaskAcceptTimeout releases job no task thread accepted in time
func (con *Consumer) OnTaskAcceptTimeout(task *common.Task) {
	config := con.Config()

	if err := con.Release(task.Id, config.ReleasePriority, config.ReleaseDelay); err != nil {
		log.Logger().Error(err)
	}
}

func (con *Consumer) Reserve(timeout time.Duration) (id uint64, body []byte, err error) {
	log.Logger().ConsumerReserve(timeout)

	return con.handler.Reserve(timeout)
}

func (con *Consumer) Release(id uint64, pri uint32, delay time.Duration) error {
	log.Logger().ConsumerRelease(id, pri, delay)

	return con.handler.Release(id, pri, delay)
}

func (con *Consumer) Delete(id uint64) error {
	log.Logger().ConsumerDelete(id)

	return con.handler.Delete(id)
}

func (con *Consumer) Bury(id uint64, pri uint32) error {
	log.Logger().ConsumerBury(id, pri)

	return con.handler.Bury(id, pri)
}

func (con *Consumer) Touch(id uint64) error {
	log.Logger().ConsumerTouch(id)

	return con.handler.Touch(id)
}

func (con *Consumer) Close() error {
	log.Logger().ConsumerClose()

	return con.handler.Close()
}

func (con *Consumer) OnStartConsume() {
	log.Logger().ConsumerStarted()

	if !util.IsNil(con.eventHandler) {
		con.eventHandler.OnStartConsume()
	}
}

func (con *Consumer) OnEndConsume() {
	log.Logger().ConsumerEnded()

	if !util.IsNil(con.eventHandler) {
		con.eventHandler.OnEndConsume()
	}
}

func (con *Consumer) OnReserveTimeout() {
	log.Logger().ConsumerReserveTimeout(con.Config().WaitForConsumerReserve)

	if !util.IsNil(con.eventHandler) {
		con.eventHandler.OnReserveTimeout()
	}
}

func (con *Consumer) OnHeartbeat() {
	log.Logger().ConsumerHeartbeat(con.Config().Heartbeat)

	if !util.IsNil(con.eventHandler) {
		con.eventHandler.OnHeartbeat()
	}
}
