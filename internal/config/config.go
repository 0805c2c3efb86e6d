// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// EnvConfigJSON names the environment variable holding a JSON override of the file.
const EnvConfigJSON = "QR_KITCHEN_CONFIG_JSON"

// Storage engines and backends.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"

	BackendDB = "db"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service cannot start without and fills
// defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	switch c.Store.Backend {
	case "":
		c.Store.Backend = BackendDB
	case BackendDB, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownStoreBackend, invalidErrMessage)
	}

	if c.Studio.PreviewSize < 0 || c.Studio.ExportSize < 0 {
		return errors.Wrap(ErrInvalidImageSize, invalidErrMessage)
	}

	switch c.Studio.Scanner.Facing {
	case "":
		c.Studio.Scanner.Facing = "environment"
	case "environment", "user":
	default:
		return errors.Wrap(ErrUnknownFacing, invalidErrMessage)
	}

	setDefaults(c)

	return nil
}

//nolint:mnd
func setDefaults(c *Config) {
	defaultInt := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}

	defaultString := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}

	defaultInt(&c.Webserver.ShutDownTime, 5)
	defaultInt(&c.Webserver.BodyLimit, 8*1024*1024)
	defaultString(&c.Webserver.Cookie.Name, "qr_kitchen_client")

	if c.Webserver.Cookie.MaxAge == 0 {
		c.Webserver.Cookie.MaxAge = 365 * 24 * time.Hour
	}

	defaultString(&c.DB.Path, "qr-kitchen.db")
	defaultString(&c.Store.Table, "qr_kitchen_store")

	defaultInt(&c.Studio.PreviewSize, 300)
	defaultInt(&c.Studio.ExportSize, 2000)
	defaultInt(&c.Studio.HistoryLimit, 20)
	defaultString(&c.Studio.HistoryKey, "qrHistory")
	defaultString(&c.Studio.SessionKey, "qrSession")

	if c.Studio.NotificationTTL == 0 {
		c.Studio.NotificationTTL = 3 * time.Second
	}

	if c.Studio.IdleTimeout == 0 {
		c.Studio.IdleTimeout = 30 * time.Minute
	}

	defaultInt(&c.Studio.Scanner.FPS, 20)
	defaultInt(&c.Studio.Scanner.RegionWidth, 250)
	defaultInt(&c.Studio.Scanner.RegionHeight, 250)
}
