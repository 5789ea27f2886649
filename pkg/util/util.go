package util

import (
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mnikita/task-dispatch/pkg/log"
)

type ConfigWatcherEventHandler interface {
	OnConfigModified()
}

type ConfigWatcher struct {
	eventHandler ConfigWatcherEventHandler

	watcher *fsnotify.Watcher

	watchStarted bool
}

func NewConfigWatcher(eventHandler ConfigWatcherEventHandler) (c *ConfigWatcher, err error) {
	c = &ConfigWatcher{}

	c.eventHandler = eventHandler

	// creates a new file watcher
	c.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return c, nil
}

func GetSystemConcurrency() (concurrency int) {
	return runtime.GOMAXPROCS(0)
}

//IsNil reports whether i is nil or an interface holding a nil pointer
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}

//CheckEnvForValue returns env variable value when set, otherwise value
func CheckEnvForValue(env string, value string) string {
	if envValue, ok := os.LookupEnv(env); ok && envValue != "" {
		return envValue
	}

	return value
}

//CheckEnvForArray returns comma separated env variable value when set, otherwise value
func CheckEnvForArray(env string, value []string) []string {
	envValue, ok := os.LookupEnv(env)

	if !ok || envValue == "" {
		return value
	}

	var values []string

	for _, v := range strings.Split(envValue, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}

func WaitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan struct{})
	go func() {
		defer close(c)
		wg.Wait()
	}()
	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return log.WorkerWaitTimeoutError(timeout) // timed out
	}
}

func (c *ConfigWatcher) WatchConfigFile(configFile string) (err error) {
	if !c.watchStarted {
		c.watchStarted = true

		go func() {
			log.Logger().ConfigWatchStart()

			for {
				select {
				case event, ok := <-c.watcher.Events:
					if !ok {
						return
					}

					if event.Op&fsnotify.Write == fsnotify.Write {
						log.Logger().ConfigWatchModified(event.Name)

						c.eventHandler.OnConfigModified()
					}
				case err, ok := <-c.watcher.Errors:
					if !ok {
						return
					}

					log.Logger().ConfigWatchError(err)
				}
			}
		}()
	}

	if configFile != "" {
		err = c.watcher.Add(configFile)
		if err != nil {
			return err
		}

		log.Logger().ConfigWatchFile(configFile)
	}

	return nil
}

func (c *ConfigWatcher) StopWatch() (err error) {
	log.Logger().ConfigWatchStop()

	return c.watcher.Close()
}
