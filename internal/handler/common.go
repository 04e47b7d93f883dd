package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var errBadBody = errors.New("invalid request body")

// bindAndValidate binds the JSON body into v and runs its validate tags.
// An empty body leaves v at its zero value.
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errBadBody
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return errors.New(describe(verrs))
		}
		return err
	}
	return nil
}

// describe turns validator errors into "field: rule" pairs.
func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Namespace()+": "+rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// uuidParam reads a path parameter that must be a UUID.
func uuidParam(c echo.Context, name string) (string, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errors.New("invalid " + name)
	}
	return id.String(), nil
}

// tableNumberParam reads a positive table number path parameter.
func tableNumberParam(c echo.Context) (int, error) {
	n, err := strconv.Atoi(c.Param("table_number"))
	if err != nil || n < 1 {
		return 0, errors.New("invalid table_number")
	}
	return n, nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}
