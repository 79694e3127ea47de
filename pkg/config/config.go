package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/log"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/queue"
)

const (
	defaultKind        = "queue"
	defaultCapacity    = 5
	defaultHistorySize = 100
	defaultLogLevel    = "warn"
	defaultLogFormat   = "text"
)

// Config is the configuration of a queuectl session.
type Config struct {
	// DefaultKind is the structure a session starts with, e.g. "queue",
	// "priority", "circular", "deque", "stacks", "list" or "dlist".
	DefaultKind string `toml:"default-kind" json:"default-kind"`
	// Capacity is used whenever a circular queue is created without an
	// explicit capacity.
	Capacity    int  `toml:"capacity" json:"capacity"`
	HistorySize int  `toml:"history-size" json:"history-size"`
	AutoRender  bool `toml:"auto-render" json:"auto-render"`

	LogLevel  string `toml:"log-level" json:"log-level"`
	LogFile   string `toml:"log-file" json:"log-file"`
	LogFormat string `toml:"log-format" json:"log-format"`

	ConfigFile string `toml:"-" json:"config-file"`
}

// NewConfig creates a config with default values.
func NewConfig() *Config {
	return &Config{
		DefaultKind: defaultKind,
		Capacity:    defaultCapacity,
		HistorySize: defaultHistorySize,
		AutoRender:  true,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
	}
}

// flagNames are the flags registered by RegisterFlags.
var flagNames = map[string]struct{}{
	"config":       {},
	"kind":         {},
	"capacity":     {},
	"history-size": {},
	"auto-render":  {},
	"log-level":    {},
	"log-file":     {},
	"log-format":   {},
}

// RegisterFlags binds the config items to fs.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "path to config file")
	fs.StringVarP(&c.DefaultKind, "kind", "k", c.DefaultKind, "initial structure: queue, priority, circular, deque, stacks, list, dlist")
	fs.IntVarP(&c.Capacity, "capacity", "c", c.Capacity, "capacity of circular queues")
	fs.IntVar(&c.HistorySize, "history-size", c.HistorySize, "number of commands kept in the session history")
	fs.BoolVar(&c.AutoRender, "auto-render", c.AutoRender, "render the structure after every change")
	fs.StringVarP(&c.LogLevel, "log-level", "L", c.LogLevel, "log level: debug, info, warn, error, fatal")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log file path")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, `the format of the log, "text" or "json"`)
}

// Load loads the config file named by ConfigFile, if any. Flags set
// explicitly in fs take precedence over the file.
func (c *Config) Load(fs *pflag.FlagSet) error {
	if c.ConfigFile != "" {
		overrides := make(map[string]string)
		if fs != nil {
			fs.Visit(func(f *pflag.Flag) {
				if _, ok := flagNames[f.Name]; ok {
					overrides[f.Name] = f.Value.String()
				}
			})
		}

		if err := c.configFromFile(c.ConfigFile); err != nil {
			return err
		}

		for name, value := range overrides {
			if err := fs.Set(name, value); err != nil {
				return errors.Wrap(errors.ErrConfigParseFlagSet, err)
			}
		}
	}
	return c.Adjust()
}

// Adjust validates the config.
func (c *Config) Adjust() error {
	c.DefaultKind = strings.TrimSpace(c.DefaultKind)
	if c.DefaultKind == "" {
		c.DefaultKind = defaultKind
	}
	if queue.ValidateCapacity(c.Capacity) != nil {
		return errors.ErrConfigInvalidValue.GenWithStackByArgs("capacity", c.Capacity)
	}
	if c.HistorySize < 0 {
		return errors.ErrConfigInvalidValue.GenWithStackByArgs("history-size", c.HistorySize)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.ErrConfigInvalidValue.GenWithStackByArgs("log-format", c.LogFormat)
	}
	return nil
}

// configFromFile loads config from file.
func (c *Config) configFromFile(path string) error {
	metaData, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigDecodeFile, err)
	}
	undecoded := metaData.Undecoded()
	if len(undecoded) > 0 {
		var undecodedItems []string
		for _, item := range undecoded {
			undecodedItems = append(undecodedItems, item.String())
		}
		return errors.ErrConfigUnknownItem.GenWithStackByArgs(strings.Join(undecodedItems, ","))
	}
	return nil
}

func (c *Config) String() string {
	cfg, err := json.Marshal(c)
	if err != nil {
		log.L().Error("marshal to json", zap.Reflect("config", c), zap.Error(err))
	}
	return string(cfg)
}

// Toml returns TOML format representation of config.
func (c *Config) Toml() (string, error) {
	var b bytes.Buffer

	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", errors.Wrap(errors.ErrConfigEncode, err)
	}
	return b.String(), nil
}

// SampleConfig is a config file with every item at its default.
var SampleConfig = fmt.Sprintf(`# queuectl sample config
default-kind = %q
capacity = %d
history-size = %d
auto-render = true
log-level = %q
log-file = ""
log-format = %q
`, defaultKind, defaultCapacity, defaultHistorySize, defaultLogLevel, defaultLogFormat)
