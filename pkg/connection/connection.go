//go:generate mockgen -destination=./mocks/mock_connection.go -package=mocks . Handler,Dialer,ConnectionHandler
package connection

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/wire"
	"github.com/mnikita/task-dispatch/pkg/codec"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/pkg/errors"
)

var WireSet = wire.NewSet(NewConnection, NewConfiguration,
	wire.Bind(new(Handler), new(*Connection)))

//ErrTimeout is returned by Reserve when no job arrived in time
var ErrTimeout = errors.New("timeout")

//ProtocolError marks an error reported by the broker itself, as opposed to transport failures
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return e.Err.Error()
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

//ConnectionHandler is the broker client created by Dialer
type ConnectionHandler interface {
	Put(body []byte, pri uint32, delay, ttr time.Duration) (id uint64, err error)
	Reserve(timeout time.Duration) (id uint64, body []byte, err error)
	Release(id uint64, pri uint32, delay time.Duration) error
	Delete(id uint64) error
	Bury(id uint64, pri uint32) error
	Touch(id uint64) error
	ListTubes() ([]string, error)
	Close() error
}

type Dialer interface {
	Dial(serverUrl *url.URL, config *Configuration) (ConnectionHandler, error)
}

//Dialers maps URL scheme to Dialer
type Dialers map[string]Dialer

type Handler interface {
	Init() error
	Close() error

	Config() *Configuration
	Codec() codec.Codec

	Submit(ctx context.Context, task *common.Task) (*common.Handle, error)

	Reserve(timeout time.Duration) (id uint64, body []byte, err error)
	Release(id uint64, pri uint32, delay time.Duration) error
	Delete(id uint64) error
	Bury(id uint64, pri uint32) error
	Touch(id uint64) error
}

type Configuration struct {
	Url        string   `validate:"required,url"`
	Tubes      []string `validate:"min=1,dive,required"`
	Serializer string   `validate:"omitempty,oneof=json msgpack"`

	//Put priority, lower is more urgent
	Priority uint32
	//Put delay before job becomes ready
	Delay time.Duration
	//Time a worker may hold a reserved job before the broker releases it
	TimeToRun time.Duration `validate:"min=0"`

	DialTimeout time.Duration
}

type Connection struct {
	ConnectionHandler

	dialers Dialers

	mux sync.Mutex

	*Configuration
}

const DefaultTube = "default"

func parseUrl(urlText string) (*url.URL, error) {
	serverUrl, err := url.Parse(urlText)

	if err != nil {
		return nil, err
	}

	if serverUrl.Host == "" {
		return nil, log.MissingUrl()
	}

	return serverUrl, nil
}

func (c *Connection) establishConnection() error {
	serverUrl, err := parseUrl(c.Url)

	if err != nil {
		return err
	}

	log.Logger().BrokerUrl(serverUrl.Redacted())

	if len(c.Tubes) == 0 {
		return log.MissingChannel()
	}

	dialer, ok := c.dialers[serverUrl.Scheme]

	if !ok {
		return log.UnsupportedSchemeError(serverUrl.Scheme)
	}

	ch, err := dialer.Dial(serverUrl, c.Configuration)

	if err != nil {
		return err
	}

	t, err := ch.ListTubes()

	if err != nil {
		_ = ch.Close()

		return err
	}

	c.ConnectionHandler = ch

	log.Logger().ConnectionEstablished(t)

	return nil
}

func (c *Connection) ensureConnection() error {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.ConnectionHandler != nil {
		return nil
	}

	return c.establishConnection()
}

func NewConnection(config *Configuration, dialers Dialers) *Connection {
	return &Connection{Configuration: config, dialers: dialers}
}

func NewConfiguration() *Configuration {
	//make default configuration
	return &Configuration{
		Url:         "tcp://127.0.0.1:11300",
		Tubes:       []string{DefaultTube},
		Serializer:  codec.NameJSON,
		Priority:    1,
		TimeToRun:   time.Minute,
		DialTimeout: time.Second * 10,
	}
}

//Init connects to the broker. Connection is established lazily on first use otherwise
func (c *Connection) Init() (err error) {
	return c.ensureConnection()
}

func (c *Connection) Close() error {
	c.mux.Lock()
	defer c.mux.Unlock()

	if c.ConnectionHandler == nil {
		return nil
	}

	err := c.ConnectionHandler.Close()

	c.ConnectionHandler = nil

	return err
}

func (c *Connection) Config() *Configuration {
	return c.Configuration
}

//Codec returns codec of the configured serializer
func (c *Connection) Codec() codec.Codec {
	return codec.GetCodec(c.Serializer)
}

//Submit encodes task and puts it on the first configured tube
func (c *Connection) Submit(ctx context.Context, task *common.Task) (*common.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, &common.BackendUnreachableError{Task: task.Name, Err: err}
	}

	body, err := c.Codec().Encode(task)

	if err != nil {
		return nil, &common.TaskSubmissionError{Task: task.Name, Err: err}
	}

	if err = c.ensureConnection(); err != nil {
		return nil, &common.BackendUnreachableError{Task: task.Name, Err: err}
	}

	id, err := c.ConnectionHandler.Put(body, c.Priority, c.Delay, c.TimeToRun)

	if err != nil {
		return nil, classify(task.Name, err)
	}

	return &common.Handle{TaskId: task.TaskId, JobId: id}, nil
}

func classify(taskName string, err error) error {
	var protocolError *ProtocolError

	if errors.As(err, &protocolError) {
		return &common.TaskSubmissionError{Task: taskName, Err: protocolError.Err}
	}

	return &common.BackendUnreachableError{Task: taskName, Err: err}
}

func (c *Connection) Reserve(timeout time.Duration) (id uint64, body []byte, err error) {
	if err = c.ensureConnection(); err != nil {
		return 0, nil, err
	}

	return c.ConnectionHandler.Reserve(timeout)
}

func (c *Connection) Release(id uint64, pri uint32, delay time.Duration) error {
	if err := c.ensureConnection(); err != nil {
		return err
	}

	return c.ConnectionHandler.Release(id, pri, delay)
}

func (c *Connection) Delete(id uint64) error {
	if err := c.ensureConnection(); err != nil {
		return err
	}

	return c.ConnectionHandler.Delete(id)
}

func (c *Connection) Bury(id uint64, pri uint32) error {
	if err := c.ensureConnection(); err != nil {
		return err
	}

	return c.ConnectionHandler.Bury(id, pri)
}

func (c *Connection) Touch(id uint64) error {
	if err := c.ensureConnection(); err != nil {
		return err
	}

	return c.ConnectionHandler.Touch(id)
}
