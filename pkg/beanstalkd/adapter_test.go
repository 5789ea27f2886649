package beanstalkd

import (
	"errors"
	"net/url"
	"testing"
	"time"

	gob "github.com/beanstalkd/go-beanstalk"
	"github.com/mnikita/task-dispatch/pkg/connection"
	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	err error

	released, deleted, buried, touched uint64
	closed                             bool
}

func (f *fakeConn) Release(id uint64, pri uint32, delay time.Duration) error {
	f.released = id
	return f.err
}

func (f *fakeConn) Delete(id uint64) error {
	f.deleted = id
	return f.err
}

func (f *fakeConn) Bury(id uint64, pri uint32) error {
	f.buried = id
	return f.err
}

func (f *fakeConn) Touch(id uint64) error {
	f.touched = id
	return f.err
}

func (f *fakeConn) ListTubes() ([]string, error) {
	return []string{"default"}, f.err
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

type fakeTube struct {
	body []byte
	err  error
}

func (f *fakeTube) Put(body []byte, pri uint32, delay, ttr time.Duration) (uint64, error) {
	f.body = body
	return 7, f.err
}

func (f *fakeTube) Reserve(timeout time.Duration) (uint64, []byte, error) {
	return 7, f.body, f.err
}

func TestAdapterDelegates(t *testing.T) {
	conn := &fakeConn{}
	tube := &fakeTube{}

	a := NewAdapter(conn, tube, tube)

	id, err := a.Put([]byte("body"), 1, 0, time.Minute)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), id)

	id, body, err := a.Reserve(time.Second)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), id)
	assert.Equal(t, []byte("body"), body)

	assert.Nil(t, a.Release(1, 0, 0))
	assert.Nil(t, a.Delete(2))
	assert.Nil(t, a.Bury(3, 0))
	assert.Nil(t, a.Touch(4))
	assert.Nil(t, a.Close())

	assert.Equal(t, uint64(1), conn.released)
	assert.Equal(t, uint64(2), conn.deleted)
	assert.Equal(t, uint64(3), conn.buried)
	assert.Equal(t, uint64(4), conn.touched)
	assert.True(t, conn.closed)
}

func TestReserveTimeout(t *testing.T) {
	tube := &fakeTube{err: gob.ConnError{Op: "reserve-with-timeout", Err: gob.ErrTimeout}}

	_, _, err := NewAdapter(&fakeConn{}, tube, tube).Reserve(time.Second)

	assert.Equal(t, connection.ErrTimeout, err)
}

func TestWrap(t *testing.T) {
	var protocolError *connection.ProtocolError

	assert.Nil(t, wrap(nil))

	err := wrap(gob.ConnError{Op: "put", Err: gob.ErrJobTooBig})
	assert.True(t, errors.As(err, &protocolError))

	err = wrap(gob.ConnError{Op: "delete", Err: gob.ErrNotFound})
	assert.True(t, errors.As(err, &protocolError))

	err = wrap(gob.NameError{Name: "", Err: gob.ErrEmpty})
	assert.True(t, errors.As(err, &protocolError))

	//transport failures pass through untouched
	ioError := errors.New("broken pipe")

	assert.Equal(t, ioError, wrap(ioError))

	err = wrap(gob.ConnError{Op: "put", Err: ioError})
	assert.False(t, errors.As(err, &protocolError))
}

func TestDialUnreachable(t *testing.T) {
	config := connection.NewConfiguration()
	config.DialTimeout = time.Millisecond * 100

	u := &url.URL{Scheme: Scheme, Host: "127.0.0.1:1"}

	_, err := NewDialer().Dial(u, config)

	assert.NotNil(t, err)
}
