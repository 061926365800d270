package handlers

import (
	"net/http"
	"strconv"

	"campus/consts"
	"campus/dto"
	"campus/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleServiceError is the single translation point from service errors to
// HTTP responses. The innermost sentinel picks the status; the next error
// outward carries the human-readable sentence. Unexpected errors are logged
// in full and answered with a sanitized 500.
func HandleServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	processor := utils.NewErrorProcessor(err)
	innermostErr := processor.GetErrorByLevel(-1)
	if innermostErr == nil {
		return false
	}

	msg := innermostErr.Error()
	if userFriendlyErr := processor.GetErrorByLevel(-2); userFriendlyErr != nil {
		msg = userFriendlyErr.Error()
	}

	switch innermostErr {
	case consts.ErrValidation, consts.ErrConflict:
		dto.ErrorResponse(c, http.StatusBadRequest, msg)
	case consts.ErrNotFound:
		dto.ErrorResponse(c, http.StatusNotFound, msg)
	case consts.ErrAuthenticationFailed:
		dto.ErrorResponse(c, http.StatusUnauthorized, msg)
	case consts.ErrPermissionDenied:
		dto.ErrorResponse(c, http.StatusForbidden, msg)
	default:
		logrus.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		}).Error("Service error")
		dto.ErrorResponse(c, http.StatusInternalServerError, consts.ErrInternal.Error())
	}

	return true
}

// parseIDParam reads a positive integer path parameter, answering 400 on
// anything else
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
