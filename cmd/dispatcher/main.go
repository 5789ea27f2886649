package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	dispatch "github.com/mnikita/task-dispatch/pkg/cli"
	"github.com/mnikita/task-dispatch/pkg/log"
	_ "github.com/mnikita/task-dispatch/tasks"
	"github.com/urfave/cli/v2"
)

//triggerOptions reads trigger flags given before or after the task name
func triggerOptions(c *cli.Context) (rawArgs string, rawKwargs string, sync bool, err error) {
	set := flag.NewFlagSet(c.Command.Name, flag.ContinueOnError)
	set.SetOutput(io.Discard)

	set.StringVar(&rawArgs, "args", c.String("args"), "")
	set.StringVar(&rawKwargs, "kwargs", c.String("kwargs"), "")
	set.BoolVar(&sync, "sync", c.Bool("sync"), "")

	if err = set.Parse(c.Args().Tail()); err != nil {
		return "", "", false, cli.Exit(err.Error(), 2)
	}

	if set.NArg() > 0 {
		return "", "", false, cli.Exit(fmt.Sprintf("unexpected arguments: %s", strings.Join(set.Args(), " ")), 2)
	}

	return rawArgs, rawKwargs, sync, nil
}

func newApp(writer io.Writer) *cli.App {
	var configFile string
	var tubes cli.StringSlice
	var urlText string
	var serializer string
	var lang string
	var logLevel string

	newConfiguration := func() *dispatch.Configuration {
		return &dispatch.Configuration{
			Url:        urlText,
			Tubes:      tubes.Value(),
			Serializer: serializer,
			ConfigFile: configFile,
			Lang:       lang,
		}
	}

	//run initializes command line handler, runs action and closes it
	run := func(action func(h dispatch.Handler) error) (err error) {
		h := dispatch.InitializeCli(newConfiguration())

		if err = h.Init(); err != nil {
			return err
		}

		defer func() {
			if closeErr := h.Close(); err == nil {
				err = closeErr
			}
		}()

		return action(h)
	}

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load configuration from `FILE` (.json or .toml)",
				Destination: &configFile,
			},
			&cli.StringSliceFlag{
				Name:        "tubes",
				Aliases:     []string{"t"},
				Usage:       "Specify broker tubes. First tube receives submitted tasks",
				Destination: &tubes,
			},
			&cli.StringFlag{
				Name:        "url",
				Aliases:     []string{"u"},
				Usage:       "Specify broker `URL` (tcp:// for Beanstalkd, redis:// for Redis)",
				Destination: &urlText,
			},
			&cli.StringFlag{
				Name:        "serializer",
				Aliases:     []string{"s"},
				Usage:       "Specify task serializer (json, msgpack)",
				Destination: &serializer,
			},
			&cli.StringFlag{
				Name:        "lang",
				Usage:       "Language of status messages (en, sr)",
				Destination: &lang,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level (trace, debug, info, warn, error)",
				EnvVars:     []string{log.EnvLogLevel},
				Destination: &logLevel,
			},
		},
		Before: func(c *cli.Context) error {
			if logLevel == "" {
				return nil
			}

			return log.SetLevel(logLevel)
		},
		Commands: []*cli.Command{
			{
				Name:      "trigger",
				Usage:     "runs task synchronously or sends it to the broker",
				ArgsUsage: "<task> [--args JSON] [--kwargs JSON] [--sync]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "args",
						Usage: "Positional arguments as JSON list",
						Value: "[]",
					},
					&cli.StringFlag{
						Name:  "kwargs",
						Usage: "Named arguments as JSON object",
						Value: "{}",
					},
					&cli.BoolFlag{
						Name:  "sync",
						Usage: "Run task in this process instead of sending it to the broker",
					},
				},
				Action: func(c *cli.Context) error {
					taskName := c.Args().First()

					if taskName == "" {
						return cli.Exit("task name not specified", 2)
					}

					rawArgs, rawKwargs, sync, err := triggerOptions(c)

					if err != nil {
						return err
					}

					return run(func(h dispatch.Handler) error {
						return h.Trigger(c.App.Writer, taskName, rawArgs, rawKwargs, sync)
					})
				},
			},
			{
				Name:  "start",
				Usage: "starts worker service consuming tasks from the broker",
				Action: func(c *cli.Context) error {
					return run(func(h dispatch.Handler) error {
						return h.Start(nil)
					})
				},
			},
			{
				Name:  "tasks",
				Usage: "lists registered tasks",
				Action: func(c *cli.Context) error {
					return run(func(h dispatch.Handler) error {
						return h.Tasks(c.App.Writer)
					})
				},
			},
			{
				Name:  "default-config",
				Usage: "writes default configuration to config file, or standard output",
				Action: func(c *cli.Context) (err error) {
					h := dispatch.InitializeCli(newConfiguration())

					if configFile == "" {
						_, err = h.WriteDefaultConfiguration(c.App.Writer)
					} else {
						_, err = h.WriteDefaultConfigurationToFile(configFile)
					}

					return err
				},
			},
		},
		Name: "dispatcher",
		Description: "Dispatcher runs registered tasks inline or sends them to a Beanstalkd or Redis broker. " +
			"Start command runs worker service executing sent tasks.",
		Usage:    "task dispatcher",
		HelpName: "dispatcher",
		Writer:   writer,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		log.Logger().Fatal(err)
	}
}
