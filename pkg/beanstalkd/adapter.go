package beanstalkd

import (
	"net/url"
	"time"

	gob "github.com/beanstalkd/go-beanstalk"
	"github.com/mnikita/task-dispatch/pkg/connection"
	"github.com/pkg/errors"
)

const (
	Scheme     = "tcp"
	NetworkTcp = "tcp"
)

//Conn is the subset of *gob.Conn used by Adapter
type Conn interface {
	Release(id uint64, pri uint32, delay time.Duration) error
	Delete(id uint64) error
	Bury(id uint64, pri uint32) error
	Touch(id uint64) error
	ListTubes() ([]string, error)
	Close() error
}

//Tube puts jobs on a single tube
type Tube interface {
	Put(body []byte, pri uint32, delay, ttr time.Duration) (id uint64, err error)
}

//TubeSet reserves jobs from any of its tubes
type TubeSet interface {
	Reserve(timeout time.Duration) (id uint64, body []byte, err error)
}

//Adapter maps connection.ConnectionHandler onto a beanstalkd connection
type Adapter struct {
	conn    Conn
	tube    Tube
	tubeSet TubeSet
}

type Dialer struct{}

func NewDialer() connection.Dialer {
	return &Dialer{}
}

func NewAdapter(conn Conn, tube Tube, tubeSet TubeSet) *Adapter {
	return &Adapter{conn: conn, tube: tube, tubeSet: tubeSet}
}

func (d *Dialer) Dial(serverUrl *url.URL, config *connection.Configuration) (connection.ConnectionHandler, error) {
	timeout := config.DialTimeout

	if timeout <= 0 {
		timeout = gob.DefaultDialTimeout
	}

	conn, err := gob.DialTimeout(NetworkTcp, serverUrl.Host, timeout)

	if err != nil {
		return nil, err
	}

	tubes := config.Tubes

	if len(tubes) == 0 {
		tubes = []string{connection.DefaultTube}
	}

	return NewAdapter(conn, &gob.Tube{Conn: conn, Name: tubes[0]}, gob.NewTubeSet(conn, tubes...)), nil
}

func (a *Adapter) Put(body []byte, pri uint32, delay, ttr time.Duration) (uint64, error) {
	id, err := a.tube.Put(body, pri, delay, ttr)

	return id, wrap(err)
}

func (a *Adapter) Reserve(timeout time.Duration) (uint64, []byte, error) {
	id, body, err := a.tubeSet.Reserve(timeout)

	return id, body, wrap(err)
}

func (a *Adapter) Release(id uint64, pri uint32, delay time.Duration) error {
	return wrap(a.conn.Release(id, pri, delay))
}

func (a *Adapter) Delete(id uint64) error {
	return wrap(a.conn.Delete(id))
}

func (a *Adapter) Bury(id uint64, pri uint32) error {
	return wrap(a.conn.Bury(id, pri))
}

func (a *Adapter) Touch(id uint64) error {
	return wrap(a.conn.Touch(id))
}

func (a *Adapter) ListTubes() ([]string, error) {
	tubes, err := a.conn.ListTubes()

	return tubes, wrap(err)
}

func (a *Adapter) Close() error {
	return a.conn.Close()
}

var protocolErrors = []error{
	gob.ErrBadFormat,
	gob.ErrBuried,
	gob.ErrDeadline,
	gob.ErrDraining,
	gob.ErrEmpty,
	gob.ErrInternal,
	gob.ErrJobTooBig,
	gob.ErrNoCRLF,
	gob.ErrNotFound,
	gob.ErrNotIgnored,
	gob.ErrOOM,
	gob.ErrUnknown,
}

//wrap translates beanstalkd replies into connection errors
func wrap(err error) error {
	if err == nil {
		return nil
	}

	var nameError gob.NameError

	if errors.As(err, &nameError) {
		return &connection.ProtocolError{Err: err}
	}

	var connError gob.ConnError

	if !errors.As(err, &connError) {
		return err
	}

	if connError.Err == gob.ErrTimeout {
		return connection.ErrTimeout
	}

	for _, protocolError := range protocolErrors {
		if connError.Err == protocolError {
			return &connection.ProtocolError{Err: err}
		}
	}

	return err
}
