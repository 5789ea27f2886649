//go:generate mockgen -destination=./mocks/mock_io.go -package=mocks io Writer
//Package cli implements command line operations on top of the service container
package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/mnikita/task-dispatch/pkg/container"
	"github.com/mnikita/task-dispatch/pkg/dispatcher"
	"github.com/mnikita/task-dispatch/pkg/log"
	"github.com/mnikita/task-dispatch/pkg/util"
)

const (
	EnvUrl        = "DISPATCHER_URL"
	EnvTubes      = "DISPATCHER_TUBES"
	EnvSerializer = "DISPATCHER_SERIALIZER"
	EnvLang       = "DISPATCHER_LANG"
)

//DotEnvFile is loaded on Init when present in working directory
const DotEnvFile = ".env"

type OsSignalCallback func(chan os.Signal)

type Handler interface {
	Init() error
	Close() error

	Container() container.Handler
	SetContainerHandler(handler container.Handler)

	Start(OsSignalCallback) error
	Trigger(writer io.Writer, taskName string, rawArgs string, rawKwargs string, sync bool) error
	Tasks(writer io.Writer) error
	WriteDefaultConfiguration(writer io.Writer) (int, error)
	WriteDefaultConfigurationToFile(file string) (int, error)
}

//Configuration holds command line flags. Non empty values override configuration file
type Configuration struct {
	Url        string
	Tubes      []string
	Serializer string
	ConfigFile string
	Lang       string
}

type Cli struct {
	*Configuration

	container container.Handler

	localizer *log.Localizer
}

func NewConfiguration() *Configuration {
	return &Configuration{}
}

func NewCli(config *Configuration, handler container.Handler) *Cli {
	cli := &Cli{Configuration: config}

	cli.container = handler

	return cli
}

func loadDotEnv(file string) error {
	if _, err := os.Stat(file); err != nil {
		//nothing to load
		return nil
	}

	if err := godotenv.Load(file); err != nil {
		return err
	}

	log.Logger().DotEnvLoaded(file)

	return nil
}

func (cli *Cli) Init() (err error) {
	if err = loadDotEnv(DotEnvFile); err != nil {
		return err
	}

	//flags take precedence, ENV fills the rest
	if cli.Url == "" {
		cli.Url = util.CheckEnvForValue(EnvUrl, cli.Url)
	}

	if len(cli.Tubes) == 0 {
		cli.Tubes = util.CheckEnvForArray(EnvTubes, cli.Tubes)
	}

	if cli.Serializer == "" {
		cli.Serializer = util.CheckEnvForValue(EnvSerializer, cli.Serializer)
	}

	if cli.Lang == "" {
		cli.Lang = util.CheckEnvForValue(EnvLang, cli.Lang)
	}

	cli.localizer = log.NewLocalizer(cli.Lang)

	if err = cli.container.Init(cli.ConfigFile); err != nil {
		return err
	}

	config := cli.container.Config()

	if cli.Url != "" {
		config.Connection.Url = cli.Url
	}

	if len(cli.Tubes) > 0 {
		config.Connection.Tubes = cli.Tubes
	}

	if cli.Serializer != "" {
		config.Connection.Serializer = cli.Serializer
	}

	return config.Validate()
}

func (cli *Cli) Close() error {
	return cli.container.Close()
}

func (cli *Cli) Container() container.Handler {
	return cli.container
}

func (cli *Cli) SetContainerHandler(handler container.Handler) {
	cli.container = handler
}

//Trigger dispatches task and prints status line of the outcome
func (cli *Cli) Trigger(writer io.Writer, taskName string, rawArgs string, rawKwargs string, sync bool) error {
	mode := dispatcher.Async

	if sync {
		mode = dispatcher.Sync
	}

	outcome, err := cli.container.Dispatcher().Trigger(context.Background(), taskName, rawArgs, rawKwargs, mode)

	if err != nil {
		return err
	}

	var status string

	if outcome.Mode == dispatcher.Sync {
		result, err := json.Marshal(outcome.Result)

		if err != nil {
			return err
		}

		status = cli.localize(log.StatusTaskFinished, map[string]interface{}{
			"Task":   taskName,
			"Result": string(result),
		})
	} else {
		status = cli.localize(log.StatusTaskSent, map[string]interface{}{
			"Task": taskName,
			"Id":   outcome.Handle.TaskId,
			"Job":  outcome.Handle.JobId,
		})
	}

	_, err = io.WriteString(writer, status+"\n")

	return err
}

//Tasks prints registered task names, one per line
func (cli *Cli) Tasks(writer io.Writer) (err error) {
	names := append([]string(nil), cli.container.Dispatcher().Tasks()...)

	if len(names) == 0 {
		_, err = io.WriteString(writer, cli.localize(log.StatusNoTasks, nil)+"\n")

		return err
	}

	sort.Strings(names)

	_, err = io.WriteString(writer, strings.Join(names, "\n")+"\n")

	return err
}

func (cli *Cli) localize(id string, data map[string]interface{}) string {
	if cli.localizer == nil {
		cli.localizer = log.NewLocalizer(cli.Lang)
	}

	return cli.localizer.Status(id, data)
}

//Start runs worker and consumer until SIGINT or SIGTERM is received
func (cli *Cli) Start(callback OsSignalCallback) (err error) {
	if err = cli.container.StartServices(); err != nil {
		return err
	}

	defer cli.container.StopServices()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if callback != nil {
		callback(sigs)
	}

	<-sigs

	return nil
}

func (cli *Cli) WriteDefaultConfiguration(writer io.Writer) (n int, err error) {
	var bytes []byte

	bytes, err = json.MarshalIndent(cli.container.Config(), "", " ")

	if err != nil {
		return 0, err
	}

	return writer.Write(bytes)
}

//WriteDefaultConfigurationToFile writes TOML for .toml files, JSON otherwise
func (cli *Cli) WriteDefaultConfigurationToFile(name string) (n int, err error) {
	file, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)

	if err != nil {
		return 0, err
	}

	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		counter := &countingWriter{writer: file}

		err = toml.NewEncoder(counter).Encode(cli.container.Config())

		return counter.n, err
	}

	return cli.WriteDefaultConfiguration(file)
}

type countingWriter struct {
	writer io.Writer
	n      int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.writer.Write(p)
	w.n += n

	return n, err
}
