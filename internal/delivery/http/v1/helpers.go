package v1

import (
	"errors"
	"strconv"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// pathID parses an int64 path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + name)
	}
	return id, nil
}

// bindJSON binds the request body, turning tag validation failures into the
// per-field 422 bag clients already parse. Malformed JSON stays a 400.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperror.Unprocessable("Validation error", validation.FieldErrors(err))
		}
		return apperror.BadRequest(err.Error())
	}
	return nil
}
