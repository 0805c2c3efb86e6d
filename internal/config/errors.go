package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if db.gormEngine is not sqlite, mysql or postgres.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be sqlite, mysql or postgres")

	// ErrUnknownStoreBackend error if store.backend is not db, mysql or postgres.
	ErrUnknownStoreBackend = errors.New("toml config store.backend must be db, mysql or postgres")

	// ErrInvalidImageSize error if a studio image size is not positive.
	ErrInvalidImageSize = errors.New("toml config studio.previewSize and studio.exportSize must be positive")

	// ErrUnknownFacing error if studio.scanner.facing is not environment or user.
	ErrUnknownFacing = errors.New("toml config studio.scanner.facing must be environment or user")
)
