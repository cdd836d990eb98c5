package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

func invalidBody(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Cuerpo de la solicitud inválido")
}

// bindJSON binds the request body into req. Unknown fields are rejected when
// binding.EnableDecoderDisallowUnknownFields is set, as the router does. A body
// carrying anything after the JSON document is rejected too.
func bindJSON(c *gin.Context, req interface{}) error {
	if c.Request.Body == nil {
		return invalidBody(nil)
	}
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return invalidBody(err)
	}
	if raw, ok := c.Get(gin.BodyBytesKey); ok {
		if body, _ := raw.([]byte); !json.Valid(body) {
			return invalidBody(nil)
		}
	}
	return nil
}

// pathID parses the :id segment as a positive integer.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Validation("Identificador inválido")
	}
	return id, nil
}
