package config

/*
 * Copyright 2020-2026 Aldelo, LP
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	util "github.com/yellowcab/common"
	"github.com/yellowcab/common/poll"
	"github.com/yellowcab/common/poll/pollparameterresponsetype"
)

// config keys
const (
	KeyResponseType    = "poll.response_type"
	KeyProtocol        = "poll.protocol"
	KeyDatabasePath    = "store.database_path"
	KeyCacheTTLSeconds = "store.cache_ttl_seconds"
)

// PollConf struct info,
// ConfigName or SpecificConfigFileFullPath = One of the field is required
// UseYAML = true uses YAML; false uses JSON
// UseAutomaticEnvVar = true will auto load environment variables, named as APPNAME_POLL_RESPONSE_TYPE etc
// AppName = used by config path and env var prefix, identifies the name of the app
// CustomConfigPath = additional folder searched for ConfigName
type PollConf struct {
	ConfigName                 string
	SpecificConfigFileFullPath string

	UseYAML            bool
	UseAutomaticEnvVar bool

	AppName          string
	CustomConfigPath string

	// cache viper config object
	viperClient *viper.Viper

	mu sync.RWMutex
}

func newClient() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyResponseType, pollparameterresponsetype.FULL.Key())
	v.SetDefault(KeyProtocol, poll.Binary.Key())
	v.SetDefault(KeyDatabasePath, "poll-preferences.db")
	v.SetDefault(KeyCacheTTLSeconds, 60)

	return v
}

// Init will initialize config and readInConfig,
// if config file does not exist, false is returned and defaults remain in effect
func (c *PollConf) Init() (bool, error) {
	if c == nil {
		return false, errors.New("PollConf Init Failed: PollConf receiver is nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// validate
	if util.LenTrim(c.ConfigName) <= 0 && util.LenTrim(c.SpecificConfigFileFullPath) <= 0 {
		return false, errors.New("Init Config Failed: Either Config Name or Config Full Path is Required")
	}

	if c.viperClient == nil {
		c.viperClient = newClient()
	}

	if util.LenTrim(c.SpecificConfigFileFullPath) <= 0 {
		c.viperClient.SetConfigName(c.ConfigName)

		if util.LenTrim(c.AppName) > 0 {
			c.viperClient.AddConfigPath("/etc/" + c.AppName + "/")
		}

		if util.LenTrim(c.CustomConfigPath) > 0 && c.CustomConfigPath != "." {
			c.viperClient.AddConfigPath(c.CustomConfigPath)
		}

		c.viperClient.AddConfigPath(".")
	} else {
		c.viperClient.SetConfigFile(c.SpecificConfigFileFullPath)
	}

	if c.UseAutomaticEnvVar {
		if util.LenTrim(c.AppName) > 0 {
			c.viperClient.SetEnvPrefix(strings.ToUpper(c.AppName))
		}
		c.viperClient.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		c.viperClient.AutomaticEnv()
	}

	if c.UseYAML {
		c.viperClient.SetConfigType("yaml")
	} else {
		c.viperClient.SetConfigType("json")
	}

	c.viperClient.SetTypeByDefaultValue(true)

	if err := c.viperClient.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// config file not found, defaults apply
			return false, nil
		}
		return false, errors.New("Init Config Failed: (ReadInConfig Action) " + err.Error())
	}

	return true, nil
}

// client returns the viper client, creating a defaults-only one when Init was not called
func (c *PollConf) client() *viper.Viper {
	c.mu.RLock()
	v := c.viperClient
	c.mu.RUnlock()

	if v != nil {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viperClient == nil {
		c.viperClient = newClient()
	}

	return c.viperClient
}

// ConfigFileUsed returns the current config file full path in use
func (c *PollConf) ConfigFileUsed() string {
	if c == nil {
		return ""
	}

	return c.client().ConfigFileUsed()
}

// Set overrides a config value in memory, allows method chaining
func (c *PollConf) Set(key string, value interface{}) *PollConf {
	if c == nil {
		return nil
	}

	if util.LenTrim(key) > 0 {
		c.client().Set(key, value)
	}

	return c
}

// ResponseType returns the default response type applied when a poll request does not carry one,
// the configured value may be a key, a caption or a numeric wire code
func (c *PollConf) ResponseType() (pollparameterresponsetype.PollParameterResponseType, error) {
	if c == nil {
		return pollparameterresponsetype.FULL, errors.New("ResponseType Failed: PollConf receiver is nil")
	}

	s := strings.TrimSpace(c.client().GetString(KeyResponseType))

	var v pollparameterresponsetype.PollParameterResponseType
	var err error

	if util.IsNumericIntOnly(s) {
		var n int64
		if n, err = strconv.ParseInt(s, 10, 32); err == nil {
			v, err = pollparameterresponsetype.FromCode(int32(n))
		}
	} else {
		v, err = pollparameterresponsetype.FromString(s)
	}

	if err != nil {
		return v, fmt.Errorf("ResponseType Failed: (%s) %w", KeyResponseType, err)
	}

	return v, nil
}

// Protocol returns the thrift protocol used for poll parameter payloads
func (c *PollConf) Protocol() (poll.Protocol, error) {
	if c == nil {
		return poll.UNKNOWN, errors.New("Protocol Failed: PollConf receiver is nil")
	}

	s := c.client().GetString(KeyProtocol)

	if p := poll.ParseProtocol(s); p.Valid() {
		return p, nil
	}

	return poll.UNKNOWN, fmt.Errorf("Protocol Failed: (%s) Unsupported Value %q", KeyProtocol, s)
}

// DatabasePath returns the preference store sqlite file path
func (c *PollConf) DatabasePath() string {
	if c == nil {
		return ""
	}

	return c.client().GetString(KeyDatabasePath)
}

// CacheTTL returns how long preference lookups stay cached, zero disables caching
func (c *PollConf) CacheTTL() time.Duration {
	if c == nil {
		return 0
	}

	if n := c.client().GetInt(KeyCacheTTLSeconds); n > 0 {
		return time.Duration(n) * time.Second
	}

	return 0
}
