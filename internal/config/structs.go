package config

import (
	"time"

	"github.com/qrkitchen/qr-kitchen/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Store     Store
	Log       logger.Log
	Webserver Webserver
	Studio    Studio
}

// DB holds the database connection settings.
type DB struct {
	GormEngine string // sqlite, mysql or postgres
	Path       string // sqlite database file
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
}

// Store selects where history and session snapshots are kept.
type Store struct {
	Backend string // db (settings table), mysql or postgres
	Table   string // table of the mysql and postgres backends
}

// Cookie configures the client id cookie.
type Cookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	BodyLimit      int    // max request body in bytes, logos and camera frames included
	Cookie         Cookie
}

// Scanner tunes the decode sessions.
type Scanner struct {
	FPS          int
	RegionWidth  int
	RegionHeight int
	Facing       string // environment or user
	Torch        bool   // advertise a torch to clients
}

// Studio holds the rendering, history and notification settings.
type Studio struct {
	PreviewSize     int
	ExportSize      int
	HistoryLimit    int
	HistoryKey      string
	SessionKey      string
	NotificationTTL time.Duration
	IdleTimeout     time.Duration // drop unused sessions from memory, negative keeps them
	Scanner         Scanner
}
