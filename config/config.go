// Package config holds the flat key/value settings shared by the clients and
// the server.
package config

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Conf is a collection of config key/value pairs
type Conf struct {
	c map[string]string
}

// New returns a conf collection from the passed argument.
func New(conf map[string]string) *Conf {
	return &Conf{
		c: conf,
	}
}

// NewFromJSON returns a conf collection, parsed from the passed JSON blob.
func NewFromJSON(data []byte) (*Conf, error) {
	var c map[string]string
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return &Conf{c: c}, nil
}

// Load reads a JSON config from r.
func Load(r io.Reader) (*Conf, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return NewFromJSON(data)
}

// LoadFile reads the JSON config file at path. An empty path yields an
// empty config.
func LoadFile(path string) (*Conf, error) {
	if path == "" {
		return New(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return Load(f)
}

// MarshalJSON returns the JSON encoding of the collection.
func (c *Conf) MarshalJSON() ([]byte, error) {
	if c == nil || c.c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.c)
}

// IsSet returns true if key is set.
func (c *Conf) IsSet(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.c[key]
	return ok
}

// GetString returns the value as a string.
func (c *Conf) GetString(key string) string {
	if c == nil {
		return ""
	}
	return c.c[key]
}

// GetDuration returns the value parsed as a duration ("280ms"), or def if
// the key is not set.
func (c *Conf) GetDuration(key string, def time.Duration) (time.Duration, error) {
	if !c.IsSet(key) {
		return def, nil
	}
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		return 0, errors.Wrapf(err, "config key %s", key)
	}
	if d < 0 {
		return 0, errors.Errorf("config key %s: negative duration", key)
	}
	return d, nil
}

// GetFloat returns the value parsed as a float, or def if the key is not
// set.
func (c *Conf) GetFloat(key string, def float64) (float64, error) {
	if !c.IsSet(key) {
		return def, nil
	}
	f, err := strconv.ParseFloat(c.GetString(key), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "config key %s", key)
	}
	return f, nil
}

// GetInt returns the value parsed as an integer, or def if the key is not
// set.
func (c *Conf) GetInt(key string, def int) (int, error) {
	if !c.IsSet(key) {
		return def, nil
	}
	i, err := strconv.Atoi(c.GetString(key))
	if err != nil {
		return 0, errors.Wrapf(err, "config key %s", key)
	}
	return i, nil
}

// GetBool returns the value parsed as a boolean, or def if the key is not
// set.
func (c *Conf) GetBool(key string, def bool) (bool, error) {
	if !c.IsSet(key) {
		return def, nil
	}
	b, err := strconv.ParseBool(c.GetString(key))
	if err != nil {
		return false, errors.Wrapf(err, "config key %s", key)
	}
	return b, nil
}
