//go:generate mockgen -destination=./mocks/mock_container.go -package=mocks . Handler
//Package container provides primitives for configuration and starting all primitives in the module
package container

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/google/wire"
	"github.com/mnikita/task-dispatch/pkg/beanstalkd"
	"github.com/mnikita/task-dispatch/pkg/connection"
	"github.com/mnikita/task-dispatch/pkg/consumer"
	"github.com/mnikita/task-dispatch/pkg/dispatcher"
	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/mnikita/task-dispatch/pkg/redis"
	"github.com/mnikita/task-dispatch/pkg/util"
	"github.com/mnikita/task-dispatch/pkg/worker"
	"github.com/pkg/errors"
)

var WireSet = wire.NewSet(NewContainer, NewConfiguration, ProvideDialers, ProvideConsumerHandler,
	wire.Bind(new(Handler), new(*Container)), worker.WireSet, consumer.WireSet,
	dispatcher.WireSet, connection.WireSet)

type Handler interface {
	Init(configFile string) error
	Close() error

	StartServices() error
	StopServices()

	Connection() connection.Handler
	Dispatcher() dispatcher.Handler
	Worker() worker.Handler
	Consumer() consumer.Service

	Config() *Configuration
}

type Configuration struct {
	Connection *connection.Configuration `validate:"required"`
	Worker     *worker.Configuration     `validate:"required"`
	Consumer   *consumer.Configuration   `validate:"required"`

	ConfigFile string `json:"-" toml:"-"`

	configWatcher *util.ConfigWatcher
}

type Container struct {
	*Configuration

	mux sync.Mutex

	connection connection.Handler
	dispatcher dispatcher.Handler
	worker     worker.Handler
	consumer   consumer.Service
}

//ProvideDialers registers broker clients by URL scheme
func ProvideDialers() connection.Dialers {
	return connection.Dialers{
		beanstalkd.Scheme: beanstalkd.NewDialer(),
		redis.Scheme:      redis.NewDialer(),
		redis.SchemeTLS:   redis.NewDialer(),
	}
}

//ProvideConsumerHandler reserves and settles jobs through broker connection
func ProvideConsumerHandler(conn *connection.Connection) consumer.Handler {
	return conn
}

func NewConfiguration(connectionConfig *connection.Configuration, workerConfig *worker.Configuration,
	consumerConfig *consumer.Configuration) *Configuration {
	return &Configuration{
		Connection: connectionConfig,
		Worker:     workerConfig,
		Consumer:   consumerConfig,
	}
}

//DefaultConfiguration returns configuration with default values of every section
func DefaultConfiguration() *Configuration {
	return NewConfiguration(connection.NewConfiguration(), worker.NewConfiguration(),
		consumer.NewConfiguration())
}

//LoadConfiguration decodes configData over config. TOML is used for .toml files, JSON otherwise
func LoadConfiguration(configFile string, configData []byte, config *Configuration) error {
	if strings.EqualFold(filepath.Ext(configFile), ".toml") {
		return toml.Unmarshal(configData, config)
	}

	return json.Unmarshal(configData, config)
}

//Validate checks configuration values
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return log.InvalidConfigurationError(err)
	}

	return nil
}

func (c *Configuration) load() error {
	if c.ConfigFile == "" {
		//nothing to load
		return nil
	}

	configData, err := ioutil.ReadFile(c.ConfigFile)

	if err != nil {
		return err
	}

	if err = LoadConfiguration(c.ConfigFile, configData, c); err != nil {
		return errors.Wrap(err, c.ConfigFile)
	}

	log.Logger().ContainerConfigLoaded(c.ConfigFile)

	return nil
}

func (c *Configuration) close() error {
	if c.configWatcher == nil {
		//nothing to close
		return nil
	}

	return c.configWatcher.StopWatch()
}

func NewContainer(config *Configuration, connectionHandler connection.Handler,
	dispatcherHandler dispatcher.Handler, workerHandler worker.Handler,
	consumerService consumer.Service) *Container {
	c := &Container{
		Configuration: config,
		connection:    connectionHandler,
		dispatcher:    dispatcherHandler,
		worker:        workerHandler,
		consumer:      consumerService,
	}

	//consumer settles jobs by outcome of worker task threads
	workerHandler.SetTaskEventHandler(consumerService)
	workerHandler.SetTaskQueueEventHandler(consumerService)
	consumerService.SetTaskPayloadHandler(workerHandler)

	return c
}

//Init loads and validates configuration. Broker connection is established on first use
func (c *Container) Init(configFile string) (err error) {
	c.ConfigFile = configFile

	if err = c.load(); err != nil {
		return err
	}

	if err = c.Validate(); err != nil {
		return err
	}

	if c.ConfigFile != "" {
		if err = c.initConfigWatcher(); err != nil {
			return err
		}
	}

	return c.Worker().Init()
}

func (c *Container) initConfigWatcher() (err error) {
	c.configWatcher, err = util.NewConfigWatcher(c)

	if err != nil {
		return err
	}

	return c.configWatcher.WatchConfigFile(c.ConfigFile)
}

//StartServices connects to the broker and starts worker and consumer
func (c *Container) StartServices() error {
	if err := c.Connection().Init(); err != nil {
		return err
	}

	c.Worker().StartWorker()

	if err := c.Consumer().StartConsumer(); err != nil {
		c.Worker().StopWorker()

		return err
	}

	return nil
}

//StopServices stops worker first, so finished tasks still get settled by consumer
func (c *Container) StopServices() {
	c.Worker().StopWorker()
	c.Consumer().StopConsumer()
}

func (c *Container) Close() (err error) {
	if err = c.Connection().Close(); err != nil {
		return err
	}

	if err = c.Worker().Close(); err != nil {
		return err
	}

	//Close Configuration
	return c.close()
}

func (c *Container) Connection() connection.Handler {
	return c.connection
}

func (c *Container) Dispatcher() dispatcher.Handler {
	return c.dispatcher
}

func (c *Container) Worker() worker.Handler {
	return c.worker
}

func (c *Container) Consumer() consumer.Service {
	return c.consumer
}

func (c *Container) Config() *Configuration {
	return c.Configuration
}

//OnConfigModified reloads configuration file and applies worker and consumer timings
func (c *Container) OnConfigModified() {
	c.mux.Lock()
	defer c.mux.Unlock()

	config := DefaultConfiguration()
	config.ConfigFile = c.ConfigFile

	if err := config.load(); err != nil {
		log.Logger().ConfigWatchError(err)
		return
	}

	if err := config.Validate(); err != nil {
		log.Logger().ConfigWatchError(err)
		return
	}

	if !reflect.DeepEqual(config.Connection, c.Configuration.Connection) {
		log.Logger().ConfigReloadRequired("connection")
	}

	c.Worker().UpdateConfiguration(config.Worker)
	c.Consumer().UpdateConfiguration(config.Consumer)
}
