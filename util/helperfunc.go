package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of 400, 429 and 500 responses.
type ErrorResponse struct {
	Error string `json:"error" example:"FOREIGN KEY constraint failed"`
}

// MessageResponse is the body of 404 responses and plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message" example:"Doctor not found"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

// errorText prefers the caller supplied message and falls back to the underlying error.
func (p APIErrorParams) errorText() string {
	if p.Msg != "" {
		return p.Msg
	}
	if p.Err != nil {
		return p.Err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: msg})
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: params.errorText()})
}

// CallTooManyRequests is for return API response with status code 429
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: params.errorText()})
}

// CallServerError is for return API response server error. The underlying error is always logged.
func CallServerError(c *gin.Context, params APIErrorParams) {
	log.Error().
		Err(params.Err).
		Str("request_id", c.GetString(RequestIDKey)).
		Str("path", c.FullPath()).
		Msg(params.errorText())
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: params.errorText()})
}

// CallSuccessOK writes data as the JSON body with status code 200
func CallSuccessOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
