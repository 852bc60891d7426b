package storemanagerserver

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

// invalidJSONMessage answers bodies that cannot be decoded.
const invalidJSONMessage = "Invalid JSON body"

// respondServiceError translates service failures through the shared responder.
func respondServiceError(c *gin.Context, err error) {
	apierrors.RespondError(c, err)
}

// respondValidation sends a validator failure.
func respondValidation(c *gin.Context, err *apierrors.Error) {
	apierrors.Respond(c, err)
}

// parseIDParam binds an integer path parameter, answering 400 when it is not one.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		respondValidation(c, apierrors.BadRequest(fmt.Sprintf("Invalid format for parameter %s: %s", name, err)))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondValidation(c, apierrors.BadRequest(invalidJSONMessage))
		return false
	}
	return true
}
