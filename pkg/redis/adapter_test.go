package redis

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mnikita/task-dispatch/pkg/connection"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const EnvRedisUrl = "DISPATCHER_TEST_REDIS_URL"

type replyError string

func (e replyError) Error() string { return string(e) }

func (replyError) RedisError() {}

func TestWrap(t *testing.T) {
	var protocolError *connection.ProtocolError

	assert.Nil(t, wrap(nil))
	assert.Equal(t, connection.ErrTimeout, wrap(goredis.Nil))

	err := wrap(replyError("WRONGTYPE Operation against a key holding the wrong kind of value"))
	assert.True(t, errors.As(err, &protocolError))

	ioError := errors.New("connection refused")
	assert.Equal(t, ioError, wrap(ioError))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "default:processing", processingKey("default"))
	assert.Equal(t, "default:buried", buriedKey("default"))
	assert.Equal(t, "default:job:12", jobKey("default", 12))
}

func TestNotReserved(t *testing.T) {
	a := NewAdapter(nil, nil)

	var protocolError *connection.ProtocolError

	assert.True(t, errors.As(a.Touch(3), &protocolError))
	assert.True(t, errors.As(a.Delete(3), &protocolError))
	assert.True(t, errors.As(a.Bury(3, 0), &protocolError))
	assert.True(t, errors.As(a.Release(3, 0, 0), &protocolError))

	tubes, err := a.ListTubes()
	assert.Nil(t, err)
	assert.Equal(t, []string{connection.DefaultTube}, tubes)
}

func dial(t *testing.T) *Adapter {
	rawUrl := os.Getenv(EnvRedisUrl)

	if testing.Short() || rawUrl == "" {
		t.Skip("redis server not configured")
	}

	u, err := url.Parse(rawUrl)
	assert.Nil(t, err)

	config := connection.NewConfiguration()
	config.Tubes = []string{"dispatch-test-" + time.Now().Format("150405.000000")}

	ch, err := NewDialer().Dial(u, config)
	assert.Nil(t, err)

	return ch.(*Adapter)
}

func TestRoundTrip(t *testing.T) {
	a := dial(t)
	defer a.Close()

	id, err := a.Put([]byte("body"), 1, 0, time.Minute)
	assert.Nil(t, err)

	reservedId, body, err := a.Reserve(time.Second)
	assert.Nil(t, err)
	assert.Equal(t, id, reservedId)
	assert.Equal(t, []byte("body"), body)

	assert.Nil(t, a.Touch(id))
	assert.Nil(t, a.Release(id, 0, 0))

	reservedId, _, err = a.Reserve(time.Second)
	assert.Nil(t, err)
	assert.Equal(t, id, reservedId)

	assert.Nil(t, a.Delete(id))

	_, _, err = a.Reserve(time.Millisecond * 100)
	assert.Equal(t, connection.ErrTimeout, err)
}

func newLocalAdapter(t *testing.T, server *miniredis.Miniredis, tubes ...string) *Adapter {
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewAdapter(client, tubes)
}

func TestLocalRoundTrip(t *testing.T) {
	server := miniredis.RunT(t)

	a := newLocalAdapter(t, server, "default")

	id, err := a.Put([]byte("body"), 1, 0, time.Minute)
	assert.Nil(t, err)

	reservedId, body, err := a.Reserve(time.Second)
	assert.Nil(t, err)
	assert.Equal(t, id, reservedId)
	assert.Equal(t, []byte("body"), body)

	assert.Nil(t, a.Touch(id))
	assert.Nil(t, a.Release(id, 0, 0))

	reservedId, _, err = a.Reserve(time.Second)
	assert.Nil(t, err)
	assert.Equal(t, id, reservedId)

	assert.Nil(t, a.Bury(id, 0))

	buried, err := a.client.LRange(context.Background(), buriedKey("default"), 0, -1).Result()
	assert.Nil(t, err)
	assert.Equal(t, []string{strconv.FormatUint(id, 10)}, buried)
}

func TestSameIdAcrossTubes(t *testing.T) {
	server := miniredis.RunT(t)

	alerts := newLocalAdapter(t, server, "alerts")
	mail := newLocalAdapter(t, server, "mail")

	alertId, err := alerts.Put([]byte("alert"), 1, 0, time.Minute)
	assert.Nil(t, err)

	mailId, err := mail.Put([]byte("mail"), 1, 0, time.Minute)
	assert.Nil(t, err)

	assert.NotEqual(t, alertId, mailId)

	a := newLocalAdapter(t, server, "alerts", "mail")

	first, _, err := a.Reserve(time.Second)
	assert.Nil(t, err)

	second, _, err := a.Reserve(time.Second)
	assert.Nil(t, err)

	assert.ElementsMatch(t, []uint64{alertId, mailId}, []uint64{first, second})

	assert.Nil(t, a.Delete(first))
	assert.Nil(t, a.Bury(second, 0))

	ctx := context.Background()

	for _, tube := range []string{"alerts", "mail"} {
		n, err := a.client.LLen(ctx, processingKey(tube)).Result()

		assert.Nil(t, err)
		assert.Equal(t, int64(0), n, tube)
	}
}
