package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root of a mounted route group.
	RouterRootPath = "/"

	// ClientLocal is the fiber.Locals key holding the client id.
	ClientLocal = "clientID"

	// ErrNilACRFatalLogMsg is used if app or cfg or registry var pointer is nil.
	ErrNilACRFatalLogMsg = "app, cfg or registry is nil"
)
