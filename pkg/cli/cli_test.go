package cli_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mnikita/task-dispatch/pkg/cli"
	"github.com/mnikita/task-dispatch/pkg/cli/mocks"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/mnikita/task-dispatch/pkg/container"
	lmocks "github.com/mnikita/task-dispatch/pkg/container/mocks"
	"github.com/mnikita/task-dispatch/pkg/dispatcher"
	dmocks "github.com/mnikita/task-dispatch/pkg/dispatcher/mocks"
	"github.com/mnikita/task-dispatch/pkg/util"
	"github.com/stretchr/testify/assert"
)

type Mock struct {
	t *testing.T

	*cli.Configuration

	cc *container.Configuration

	handler *lmocks.MockHandler

	dispatcher *dmocks.MockHandler

	ctrl *gomock.Controller

	cli cli.Handler
}

func newMock(t *testing.T, config *cli.Configuration) (m *Mock) {
	for _, env := range []string{cli.EnvUrl, cli.EnvTubes, cli.EnvSerializer, cli.EnvLang} {
		t.Setenv(env, "")
	}

	m = &Mock{}
	m.t = t
	m.Configuration = config

	m.cc = container.DefaultConfiguration()

	m.ctrl = gomock.NewController(t)

	m.handler = lmocks.NewMockHandler(m.ctrl)
	m.dispatcher = dmocks.NewMockHandler(m.ctrl)

	m.handler.EXPECT().Config().Return(m.cc).AnyTimes()
	m.handler.EXPECT().Dispatcher().Return(m.dispatcher).AnyTimes()

	if config == nil {
		config = cli.NewConfiguration()
	}

	m.cli = cli.NewCli(config, m.handler)

	return
}

func setupTest(m *Mock) func() {
	if m == nil {
		panic("Mock not initialized")
	}

	if m.Configuration != nil {
		m.handler.EXPECT().Init(gomock.Eq(m.ConfigFile))
		m.handler.EXPECT().Close()

		if err := m.cli.Init(); err != nil {
			panic(err)
		}
	}

	return func() {
		defer m.ctrl.Finish()
		defer util.AssertPanic(m.t)

		if m.Configuration != nil {
			if err := m.cli.Close(); err != nil {
				panic(err)
			}
		}
	}
}

func TestInitOverrides(t *testing.T) {
	var config = &cli.Configuration{
		Tubes:      []string{"alerts"},
		Url:        "tcp://10.0.0.1:11300",
		Serializer: "msgpack",
	}

	m := newMock(t, config)
	defer setupTest(m)()

	assert.Equal(t, "tcp://10.0.0.1:11300", m.cc.Connection.Url)
	assert.Equal(t, []string{"alerts"}, m.cc.Connection.Tubes)
	assert.Equal(t, "msgpack", m.cc.Connection.Serializer)
}

func TestInitEnvOverrides(t *testing.T) {
	m := newMock(t, cli.NewConfiguration())

	t.Setenv(cli.EnvUrl, "redis://127.0.0.1:6379/0")
	t.Setenv(cli.EnvTubes, "high, low")

	defer setupTest(m)()

	assert.Equal(t, "redis://127.0.0.1:6379/0", m.cc.Connection.Url)
	assert.Equal(t, []string{"high", "low"}, m.cc.Connection.Tubes)
	assert.Equal(t, "json", m.cc.Connection.Serializer)
}

func TestInitFlagsOverEnv(t *testing.T) {
	m := newMock(t, &cli.Configuration{Url: "tcp://10.0.0.1:11300", Tubes: []string{"alerts"}})

	t.Setenv(cli.EnvUrl, "redis://127.0.0.1:6379/0")
	t.Setenv(cli.EnvTubes, "high, low")
	t.Setenv(cli.EnvSerializer, "msgpack")

	defer setupTest(m)()

	assert.Equal(t, "tcp://10.0.0.1:11300", m.cc.Connection.Url)
	assert.Equal(t, []string{"alerts"}, m.cc.Connection.Tubes)
	assert.Equal(t, "msgpack", m.cc.Connection.Serializer)
}

func TestInitInvalidSerializer(t *testing.T) {
	m := newMock(t, &cli.Configuration{Serializer: "yaml"})
	defer m.ctrl.Finish()

	m.handler.EXPECT().Init(gomock.Eq(""))

	assert.NotNil(t, m.cli.Init())
}

func TestInitContainerFailure(t *testing.T) {
	m := newMock(t, &cli.Configuration{ConfigFile: "missing.json"})
	defer m.ctrl.Finish()

	initErr := errors.New("open missing.json: no such file or directory")

	m.handler.EXPECT().Init(gomock.Eq("missing.json")).Return(initErr)

	assert.Equal(t, initErr, m.cli.Init())
}

func TestTriggerAsync(t *testing.T) {
	m := newMock(t, cli.NewConfiguration())
	defer setupTest(m)()

	m.dispatcher.EXPECT().Trigger(gomock.Any(), "add", "[1, 2]", "{}", dispatcher.Async).
		Return(&dispatcher.Outcome{
			Mode:   dispatcher.Async,
			Handle: &common.Handle{TaskId: "0b9c8a3e", JobId: 7},
		}, nil)

	var out bytes.Buffer

	assert.Nil(t, m.cli.Trigger(&out, "add", "[1, 2]", "{}", false))
	assert.Equal(t, "Task \"add\" sent to queue (id: 0b9c8a3e, job: 7)\n", out.String())
}

func TestTriggerSync(t *testing.T) {
	m := newMock(t, cli.NewConfiguration())
	defer setupTest(m)()

	m.dispatcher.EXPECT().Trigger(gomock.Any(), "add", "[1, 2]", "", dispatcher.Sync).
		Return(&dispatcher.Outcome{Mode: dispatcher.Sync, Result: common.NewInt(3)}, nil)

	var out bytes.Buffer

	assert.Nil(t, m.cli.Trigger(&out, "add", "[1, 2]", "", true))
	assert.Equal(t, "Task \"add\" finished synchronously, result: 3\n", out.String())
}

func TestTriggerLocalized(t *testing.T) {
	m := newMock(t, &cli.Configuration{Lang: "sr"})
	defer setupTest(m)()

	m.dispatcher.EXPECT().Trigger(gomock.Any(), "add", "", "", dispatcher.Async).
		Return(&dispatcher.Outcome{
			Mode:   dispatcher.Async,
			Handle: &common.Handle{TaskId: "0b9c8a3e", JobId: 7},
		}, nil)

	var out bytes.Buffer

	assert.Nil(t, m.cli.Trigger(&out, "add", "", "", false))
	assert.Equal(t, "Zadatak \"add\" poslat u red (id: 0b9c8a3e, posao: 7)\n", out.String())
}

func TestTriggerError(t *testing.T) {
	m := newMock(t, cli.NewConfiguration())
	defer setupTest(m)()

	notFound := &common.TaskNotFoundError{Task: "missing"}

	m.dispatcher.EXPECT().Trigger(gomock.Any(), "missing", "", "", dispatcher.Sync).Return(nil, notFound)

	var out bytes.Buffer

	err := m.cli.Trigger(&out, "missing", "", "", true)

	assert.True(t, common.IsTaskNotFound(err))
	assert.Empty(t, out.String())
}

func TestTasks(t *testing.T) {
	m := newMock(t, nil)
	defer setupTest(m)()

	m.dispatcher.EXPECT().Tasks().Return([]string{"echo", "add"})

	var out bytes.Buffer

	assert.Nil(t, m.cli.Tasks(&out))
	assert.Equal(t, "add\necho\n", out.String())
}

func TestNoTasks(t *testing.T) {
	m := newMock(t, nil)
	defer setupTest(m)()

	m.dispatcher.EXPECT().Tasks().Return(nil)

	var out bytes.Buffer

	assert.Nil(t, m.cli.Tasks(&out))
	assert.Equal(t, "No tasks registered\n", out.String())
}

func TestWriteDefaultConfiguration(t *testing.T) {
	m := newMock(t, nil)
	defer setupTest(m)()

	w := mocks.NewMockWriter(m.ctrl)
	w.EXPECT().Write(gomock.Any()).Return(10, nil)

	n, err := m.cli.WriteDefaultConfiguration(w)

	assert.True(t, n > 0)
	assert.Nil(t, err)
}

func TestWriteDefaultConfigurationToFile(t *testing.T) {
	m := newMock(t, nil)
	defer setupTest(m)()

	dir, err := ioutil.TempDir("", "dispatcher")
	assert.Nil(t, err)

	defer func() { _ = os.RemoveAll(dir) }()

	for _, name := range []string{"config.json", "config.toml"} {
		file := filepath.Join(dir, name)

		n, err := m.cli.WriteDefaultConfigurationToFile(file)

		assert.Nil(t, err, name)
		assert.True(t, n > 0, name)

		data, err := ioutil.ReadFile(file)
		assert.Nil(t, err, name)

		loaded := container.DefaultConfiguration()
		loaded.Connection.Tubes = nil

		assert.Nil(t, container.LoadConfiguration(file, data, loaded), name)
		assert.Equal(t, m.cc.Connection, loaded.Connection, name)
		assert.Equal(t, m.cc.Worker, loaded.Worker, name)
		assert.Equal(t, m.cc.Consumer, loaded.Consumer, name)
	}
}

func TestStart(t *testing.T) {
	m := newMock(t, cli.NewConfiguration())
	defer setupTest(m)()

	gomock.InOrder(
		m.handler.EXPECT().StartServices(),
		m.handler.EXPECT().StopServices(),
	)

	err := m.cli.Start(func(sigs chan os.Signal) {
		sigs <- syscall.SIGTERM
	})

	assert.Nil(t, err)
}

func TestStartFailure(t *testing.T) {
	m := newMock(t, cli.NewConfiguration())
	defer setupTest(m)()

	startErr := errors.New("dial tcp 127.0.0.1:11300: connect: connection refused")

	m.handler.EXPECT().StartServices().Return(startErr)

	assert.Equal(t, startErr, m.cli.Start(nil))
}
