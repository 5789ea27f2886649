//Package log provides primitives for structured log generation.
//It declares all available error and log messages for the module
package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const EnvLogLevel = "DISPATCHER_LOG_LEVEL"

//Event stores messages to log later, from our standard interface
type Event struct {
	message string
}

//Error stores messages to log later, from our standard interface
type Error struct {
	message string
}

//StandardLogger enforces specific log message formats
type StandardLogger struct {
	*logrus.Logger
}

type loggerSingleton *StandardLogger

var (
	once   sync.Once
	logger loggerSingleton
)

//errors
var (
	missingConsumerHandler    = Event{"ConsumerHandler not specified"}
	missingTaskPayloadHandler = Event{"TaskPayloadHandler not specified"}
	missingChannel            = Event{"Channel not specified. Configure at least one tube"}
	missingUrl                = Event{"Broker URL not specified"}
	unsupportedScheme         = Event{"Unsupported broker URL scheme: %s"}
	invalidConfiguration      = Event{"Invalid configuration: %s"}
	workerWaitTimeout         = Event{"Timed out waiting for task threads to close after %d seconds"}

	malformedPayload     = Event{"Malformed %s payload: %s"}
	invalidArgumentShape = Event{"Invalid %s payload: expected %s, got %s"}
	taskNotFound         = Event{"Task(%s) not registered"}
	taskExecution        = Event{"Task(%s) failed: %s"}
	taskSubmission       = Event{"Task(%s) rejected by broker: %s"}
	backendUnreachable   = Event{"Broker unreachable while sending Task(%s): %s"}

	emptyReserveTaskPayload   = Event{"Task(%d) payload empty"}
	invalidReserveTaskPayload = Event{"Task(%d) payload invalid: %s"}
)

//messages
var (
	taskRegistered      = Event{"Task registered: %s"}
	taskPre             = Event{"Task PreHandler(%s), thread(%d)"}
	taskPost            = Event{"Task PostHandler(%s), thread(%d)"}
	taskThreadStarted   = Event{"Task thread(%d) started"}
	taskThreadEnded     = Event{"Task thread(%d) ended"}
	taskQueued          = Event{"Task(%s) queued"}
	taskQueueTimeout    = Event{"Task(%s) queue timeout after %d seconds. Releasing ..."}
	taskThreadsStopping = Event{"Task threads (%d) stopping ..."}
	threadHeartbeat     = Event{"Task thread (%d) heartbeat after %d seconds"}
	taskResult          = Event{"Task(%s) result: %v"}
	taskSuccess         = Event{"Task(%s) succeeded"}
	taskHeartbeat       = Event{"Task(%s) heartbeat"}

	dispatchState   = Event{"Dispatch Task(%s) mode(%s): %s"}
	taskSubmitted   = Event{"Task(%s) submitted (id: %s, job: %d)"}
	taskRunInline   = Event{"Task(%s) finished inline in %s"}
	taskPayloadBody = Event{"Task(%s) payload args(%d) kwargs(%d)"}

	workerStarted  = Event{"Worker started"}
	workerStopping = Event{"Worker stopping"}
	workerEnded    = Event{"Worker ended"}

	consumerStarted        = Event{"Consumer started"}
	consumerStopping       = Event{"Consumer stopping"}
	consumerEnded          = Event{"Consumer ended"}
	consumerReserveTimeout = Event{"Reserve timeout after %d seconds"}
	consumerHeartbeat      = Event{"Consumer heartbeat after %d seconds"}

	taskProcessEvent        = Event{"Task event (%s) received: (%s)"}
	taskProcessEventTimeout = Event{"Task event (%s) timeout after (%d) seconds: (%s)"}

	consumerReserve = Event{"Reserve (timeout: %d seconds)"}
	consumerRelease = Event{"Release (Id: %d, Priority: (%d), Delay: (%d seconds))"}
	consumerBury    = Event{"Bury (Id: (%d), Priority: (%d))"}
	consumerTouch   = Event{"Touch (Id: (%d))"}
	consumerDelete  = Event{"Delete (Id: (%d))"}
	consumerClose   = Event{"Close consumer connection"}

	configWatchError     = Event{"Configuration watcher error: %s"}
	configWatchModified  = Event{"Configuration file modified: %s"}
	configWatchStart     = Event{"Configuration watch started"}
	configWatchStop      = Event{"Configuration watch stopped"}
	configWatchFile      = Event{"Configuration watch added file: %s"}
	configReloadRequired = Event{"Configuration change of %s requires restart"}

	containerConfigLoaded = Event{"Configuration loaded successfully: %s"}
	brokerUrl             = Event{"URL configured: %s"}
	connectionEstablished = Event{"Connection successfully established. Tubes %s"}
	dotEnvLoaded          = Event{"Environment loaded from %s"}
)

//Logger initializes the standard logger
func Logger() *StandardLogger {
	once.Do(func() { // <-- atomic, does not allow repeating
		var baseLogger = logrus.New()

		logger = &StandardLogger{baseLogger}

		// Log as JSON instead of the default ASCII formatter.
		logger.Formatter = &logrus.JSONFormatter{}

		// Keep stdout for status lines of the command line.
		logger.Out = os.Stderr

		logger.Level = logrus.InfoLevel

		if level, err := logrus.ParseLevel(os.Getenv(EnvLogLevel)); err == nil {
			logger.Level = level
		}
	})

	return logger
}

//SetLevel parses level name and applies it to the standard logger
func SetLevel(level string) error {
	l, err := logrus.ParseLevel(level)

	if err != nil {
		return err
	}

	Logger().Level = l

	return nil
}

//Error provides implementation of Error interface
func (e *Error) Error() string {
	return e.message
}

//Error message
func MissingConsumerHandlerError() error {
	return &Error{missingConsumerHandler.message}
}

//Error message
func MissingTaskPayloadHandlerError() error {
	return &Error{missingTaskPayloadHandler.message}
}

//Error message
func MissingChannel() error {
	return &Error{missingChannel.message}
}

//Error message
func MissingUrl() error {
	return &Error{missingUrl.message}
}

//Error message
func UnsupportedSchemeError(scheme string) error {
	return &Error{fmt.Sprintf(unsupportedScheme.message, scheme)}
}

//Error message
func InvalidConfigurationError(err error) error {
	return &Error{fmt.Sprintf(invalidConfiguration.message, err)}
}

//Error message
func WorkerWaitTimeoutError(secs time.Duration) error {
	return &Error{fmt.Sprintf(workerWaitTimeout.message, secs/time.Second)}
}

//Error message
func EmptyReserveTaskPayloadError(id uint64) error {
	return &Error{fmt.Sprintf(emptyReserveTaskPayload.message, id)}
}

//InvalidReserveTaskPayloadError is returned when reserved job body can not be decoded
func InvalidReserveTaskPayloadError(id uint64, err error) error {
	return &Error{fmt.Sprintf(invalidReserveTaskPayload.message, id, err)}
}

//MalformedPayloadMessage formats the message of a payload that is not valid JSON
func MalformedPayloadMessage(field string, err error) string {
	return fmt.Sprintf(malformedPayload.message, field, err)
}

//InvalidArgumentShapeMessage formats the message of a payload with the wrong JSON type
func InvalidArgumentShapeMessage(field string, want string, got string) string {
	return fmt.Sprintf(invalidArgumentShape.message, field, want, got)
}

//TaskNotFoundMessage formats the message of an unregistered task
func TaskNotFoundMessage(taskName string) string {
	return fmt.Sprintf(taskNotFound.message, taskName)
}

//TaskExecutionMessage formats the message of a failed inline task
func TaskExecutionMessage(taskName string, cause string) string {
	return fmt.Sprintf(taskExecution.message, taskName, cause)
}

//TaskSubmissionMessage formats the message of a task rejected by the broker
func TaskSubmissionMessage(taskName string, err error) string {
	return fmt.Sprintf(taskSubmission.message, taskName, err)
}

//BackendUnreachableMessage formats the message of a broker transport failure
func BackendUnreachableMessage(taskName string, err error) string {
	return fmt.Sprintf(backendUnreachable.message, taskName, err)
}

//Log message
func (l *StandardLogger) TaskRegistered(taskName string) {
	l.Debugf(taskRegistered.message, taskName)
}

//Log message
func (l *StandardLogger) TaskPre(taskName string, threadId int) {
	l.Infof(taskPre.message, taskName, threadId)
}

//Log message
func (l *StandardLogger) TaskPost(taskName string, threadId int) {
	l.Infof(taskPost.message, taskName, threadId)
}

//Log message
func (l *StandardLogger) TaskResult(taskName string, result interface{}) {
	l.Infof(taskResult.message, taskName, result)
}

//Log message
func (l *StandardLogger) TaskSuccess(taskName string) {
	l.Infof(taskSuccess.message, taskName)
}

//Log message
func (l *StandardLogger) TaskHeartbeat(taskName string) {
	l.Debugf(taskHeartbeat.message, taskName)
}

//Log message
func (l *StandardLogger) DispatchState(taskName string, mode string, state string) {
	l.WithFields(logrus.Fields{"task": taskName, "mode": mode}).
		Debugf(dispatchState.message, taskName, mode, state)
}

//Log message
func (l *StandardLogger) TaskSubmitted(taskName string, id string, jobId uint64) {
	l.WithField("task", taskName).Infof(taskSubmitted.message, taskName, id, jobId)
}

//Log message
func (l *StandardLogger) TaskRunInline(taskName string, elapsed time.Duration) {
	l.WithField("task", taskName).Infof(taskRunInline.message, taskName, elapsed)
}

//Log message
func (l *StandardLogger) TaskPayload(taskName string, args int, kwargs int) {
	l.Tracef(taskPayloadBody.message, taskName, args, kwargs)
}

//Log message
func (l *StandardLogger) TaskProcessEvent(eventType string, taskName string) {
	l.Debugf(taskProcessEvent.message, eventType, taskName)
}

//Log message
func (l *StandardLogger) TaskProcessEventTimeout(eventType string, taskName string, secs time.Duration) {
	l.Warnf(taskProcessEventTimeout.message, eventType, secs/time.Second, taskName)
}

//Log message
func (l *StandardLogger) TaskThreadStarted(id int) {
	l.Debugf(taskThreadStarted.message, id)
}

//Log message
func (l *StandardLogger) TaskThreadsStopping(count int) {
	l.Infof(taskThreadsStopping.message, count)
}

//Log message
func (l *StandardLogger) TaskThreadEnded(id int) {
	l.Debugf(taskThreadEnded.message, id)
}

//Log message
func (l *StandardLogger) TaskQueued(name string) {
	l.Debugf(taskQueued.message, name)
}

//Log message
func (l *StandardLogger) TaskQueueTimeout(name string, secs time.Duration) {
	l.Warnf(taskQueueTimeout.message, name, secs/time.Second)
}

//Log message
func (l *StandardLogger) ThreadHeartbeat(threadId int, secs time.Duration) {
	l.Tracef(threadHeartbeat.message, threadId, secs/time.Second)
}

//Log message
func (l *StandardLogger) WorkerStarted() {
	l.Infof(workerStarted.message)
}

//Log message
func (l *StandardLogger) WorkerStopping() {
	l.Infof(workerStopping.message)
}

//Log message
func (l *StandardLogger) WorkerEnded() {
	l.Infof(workerEnded.message)
}

//Log message
func (l *StandardLogger) ConsumerStarted() {
	l.Infof(consumerStarted.message)
}

//Log message
func (l *StandardLogger) ConsumerStopping() {
	l.Infof(consumerStopping.message)
}

//Log message
func (l *StandardLogger) ConsumerEnded() {
	l.Infof(consumerEnded.message)
}

//Log message
func (l *StandardLogger) ConsumerReserveTimeout(secs time.Duration) {
	l.Tracef(consumerReserveTimeout.message, secs/time.Second)
}

//Log message
func (l *StandardLogger) ConsumerHeartbeat(secs time.Duration) {
	l.Tracef(consumerHeartbeat.message, secs/time.Second)
}

//Log message
func (l *StandardLogger) ConsumerReserve(timeout time.Duration) {
	l.Tracef(consumerReserve.message, timeout/time.Second)
}

//Log message
func (l *StandardLogger) ConsumerRelease(id uint64, pri uint32, delay time.Duration) {
	l.Infof(consumerRelease.message, id, pri, delay/time.Second)
}

//Log message
func (l *StandardLogger) ConsumerBury(id uint64, pri uint32) {
	l.Infof(consumerBury.message, id, pri)
}

//Log message
func (l *StandardLogger) ConsumerTouch(id uint64) {
	l.Debugf(consumerTouch.message, id)
}

//Log message
func (l *StandardLogger) ConsumerDelete(id uint64) {
	l.Debugf(consumerDelete.message, id)
}

//Log message
func (l *StandardLogger) ConsumerClose() {
	l.Debugf(consumerClose.message)
}

//Log message
func (l *StandardLogger) ConfigWatchError(err error) {
	l.Errorf(configWatchError.message, err.Error())
}

//Log message
func (l *StandardLogger) ConfigWatchModified(path string) {
	l.Infof(configWatchModified.message, path)
}

//Log message
func (l *StandardLogger) ConfigWatchStart() {
	l.Debugf(configWatchStart.message)
}

//Log message
func (l *StandardLogger) ConfigWatchStop() {
	l.Debugf(configWatchStop.message)
}

//Log message
func (l *StandardLogger) ConfigWatchFile(path string) {
	l.Debugf(configWatchFile.message, path)
}

//Log message
func (l *StandardLogger) ConfigReloadRequired(section string) {
	l.Warnf(configReloadRequired.message, section)
}

//Log message
func (l *StandardLogger) ContainerConfigLoaded(path string) {
	l.Infof(containerConfigLoaded.message, path)
}

//Log message
func (l *StandardLogger) BrokerUrl(url string) {
	l.Debugf(brokerUrl.message, url)
}

//Log message
func (l *StandardLogger) ConnectionEstablished(tubes []string) {
	l.Debugf(connectionEstablished.message, tubes)
}

//Log message
func (l *StandardLogger) DotEnvLoaded(path string) {
	l.Debugf(dotEnvLoaded.message, path)
}
