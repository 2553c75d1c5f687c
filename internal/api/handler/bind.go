package handler

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// bindStrict decodes the request body into v, rejecting fields that are not
// part of the declared schema. Partial-update endpoints use it so unknown
// fields fail loudly at the boundary instead of being silently dropped.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return domain.Invalid("Unknown field in request: " + err.Error())
		}
		return domain.Invalid("invalid payload")
	}
	return nil
}
