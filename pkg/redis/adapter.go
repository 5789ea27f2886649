//Package redis keeps tubes in Redis lists using the reliable queue pattern.
//
//A tube "default" is stored under these keys:
//	default            ready job ids
//	default:processing reserved job ids
//	default:buried     buried job ids
//	default:job:<id>   job body
//
//Job ids come from SeqKey shared by every tube, so a reservation is identified by id alone.
package redis

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/mnikita/task-dispatch/pkg/connection"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	Scheme    = "redis"
	SchemeTLS = "rediss"

	//Reserve waits in slices so every tube is polled
	pollSlice = time.Second

	SeqKey = "dispatch:seq"
)

var ErrNotReserved = errors.New("not reserved")

type Client interface {
	goredis.Cmdable
	Close() error
}

type Adapter struct {
	client Client
	tubes  []string

	mux      sync.Mutex
	reserved map[uint64]string
}

type Dialer struct{}

func NewDialer() connection.Dialer {
	return &Dialer{}
}

func NewAdapter(client Client, tubes []string) *Adapter {
	if len(tubes) == 0 {
		tubes = []string{connection.DefaultTube}
	}

	return &Adapter{client: client, tubes: tubes, reserved: map[uint64]string{}}
}

func (d *Dialer) Dial(serverUrl *url.URL, config *connection.Configuration) (connection.ConnectionHandler, error) {
	options, err := goredis.ParseURL(serverUrl.String())

	if err != nil {
		return nil, err
	}

	if config.DialTimeout > 0 {
		options.DialTimeout = config.DialTimeout
	}

	client := goredis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), options.DialTimeout)
	defer cancel()

	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, err
	}

	return NewAdapter(client, config.Tubes), nil
}

func processingKey(tube string) string {
	return tube + ":processing"
}

func buriedKey(tube string) string {
	return tube + ":buried"
}

func jobKey(tube string, id uint64) string {
	return fmt.Sprintf("%s:job:%d", tube, id)
}

func (a *Adapter) Put(body []byte, pri uint32, delay, ttr time.Duration) (uint64, error) {
	ctx := context.Background()
	tube := a.tubes[0]

	id, err := a.client.Incr(ctx, SeqKey).Uint64()

	if err != nil {
		return 0, wrap(err)
	}

	_, err = a.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, jobKey(tube, id), body, 0)
		pipe.RPush(ctx, tube, id)

		return nil
	})

	if err != nil {
		return 0, wrap(err)
	}

	return id, nil
}

func (a *Adapter) Reserve(timeout time.Duration) (uint64, []byte, error) {
	ctx := context.Background()
	deadline := time.Now().Add(timeout)

	for {
		for _, tube := range a.tubes {
			value, err := a.client.LMove(ctx, tube, processingKey(tube), "LEFT", "RIGHT").Result()

			if err == goredis.Nil {
				continue
			}

			if err != nil {
				return 0, nil, wrap(err)
			}

			return a.reserve(ctx, tube, value)
		}

		remaining := time.Until(deadline)

		if remaining <= 0 {
			return 0, nil, connection.ErrTimeout
		}

		if remaining > pollSlice {
			remaining = pollSlice
		}

		//block on the first tube, then poll the rest again
		tube := a.tubes[0]

		value, err := a.client.BLMove(ctx, tube, processingKey(tube), "LEFT", "RIGHT", remaining).Result()

		if err == goredis.Nil {
			continue
		}

		if err != nil {
			return 0, nil, wrap(err)
		}

		return a.reserve(ctx, tube, value)
	}
}

func (a *Adapter) reserve(ctx context.Context, tube string, value string) (uint64, []byte, error) {
	id, err := strconv.ParseUint(value, 10, 64)

	if err != nil {
		return 0, nil, &connection.ProtocolError{Err: err}
	}

	body, err := a.client.Get(ctx, jobKey(tube, id)).Bytes()

	if err == goredis.Nil {
		body, err = nil, nil
	}

	if err != nil {
		return 0, nil, wrap(err)
	}

	a.mux.Lock()
	a.reserved[id] = tube
	a.mux.Unlock()

	return id, body, nil
}

func (a *Adapter) take(id uint64) (string, error) {
	a.mux.Lock()
	defer a.mux.Unlock()

	tube, ok := a.reserved[id]

	if !ok {
		return "", &connection.ProtocolError{Err: ErrNotReserved}
	}

	delete(a.reserved, id)

	return tube, nil
}

//move takes reserved job out of processing list and pushes it to destination
func (a *Adapter) move(id uint64, destination func(tube string) string) error {
	ctx := context.Background()

	tube, err := a.take(id)

	if err != nil {
		return err
	}

	_, err = a.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LRem(ctx, processingKey(tube), 1, id)
		pipe.RPush(ctx, destination(tube), id)

		return nil
	})

	return wrap(err)
}

//Release ignores delay and priority, job goes back to the tail of its tube
func (a *Adapter) Release(id uint64, pri uint32, delay time.Duration) error {
	return a.move(id, func(tube string) string { return tube })
}

func (a *Adapter) Bury(id uint64, pri uint32) error {
	return a.move(id, buriedKey)
}

func (a *Adapter) Delete(id uint64) error {
	ctx := context.Background()

	tube, err := a.take(id)

	if err != nil {
		return err
	}

	_, err = a.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LRem(ctx, processingKey(tube), 1, id)
		pipe.Del(ctx, jobKey(tube, id))

		return nil
	})

	return wrap(err)
}

//Touch only checks the job is reserved, reservations do not expire
func (a *Adapter) Touch(id uint64) error {
	a.mux.Lock()
	defer a.mux.Unlock()

	if _, ok := a.reserved[id]; !ok {
		return &connection.ProtocolError{Err: ErrNotReserved}
	}

	return nil
}

func (a *Adapter) ListTubes() ([]string, error) {
	return a.tubes, nil
}

func (a *Adapter) Close() error {
	return a.client.Close()
}

//wrap marks errors replied by Redis server as protocol errors
func wrap(err error) error {
	if err == nil {
		return nil
	}

	if err == goredis.Nil {
		return connection.ErrTimeout
	}

	var redisError goredis.Error

	if errors.As(err, &redisError) {
		return &connection.ProtocolError{Err: err}
	}

	return err
}
