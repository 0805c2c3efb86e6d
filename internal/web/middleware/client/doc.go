// Package client provides the middleware that identifies the studio client.
//
// Every request outside the static assets, metrics and health endpoints is
// tagged with a client id taken from the client cookie. Requests without a
// cookie get a new id and the cookie is set on the response. The id is put
// into fiber.Locals under handler.ClientLocal where handlers pick it up.
package client
