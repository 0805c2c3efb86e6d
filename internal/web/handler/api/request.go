package api

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type kindRequest struct {
	Kind string `json:"kind" form:"kind" validate:"required"`
}

type toggleRequest struct {
	Enabled *bool `json:"enabled" form:"enabled"`
}

type logoRequest struct {
	DataURI string `json:"dataUri" form:"dataUri" validate:"required"`
}

type templateRequest struct {
	Category string `json:"category" form:"category"`
	Name     string `json:"name"     form:"name"     validate:"required"`
}

type viewRequest struct {
	View string `json:"view" form:"view" validate:"required"`
}

// parse decodes the body over v and validates the result.
func parse(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		if errors.Is(err, fiber.ErrUnprocessableEntity) {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "unsupported content type")
		}

		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := validate.Struct(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}

// upload returns the named multipart file, or the raw body for any other
// content type.
func upload(c *fiber.Ctx, field string) ([]byte, error) {
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		if len(c.Body()) == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "empty body")
		}

		return c.Body(), nil
	}

	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("missing %s file: %v", field, err))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return io.ReadAll(f)
}
