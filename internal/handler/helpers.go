package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"storefront/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails,
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID parses the :id path parameter. A zero or non-numeric id is
// rejected with a 400 before the service layer ever sees it.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// parseQueryID parses a numeric query-string value the same way parseID
// handles path parameters.
func parseQueryID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its HTTP status. Typed errors keep
// their message; anything else becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	status := apierror.StatusOf(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		c.JSON(status, apierror.New("internal server error"))
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}
