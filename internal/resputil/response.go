package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON response.
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode) {
	c.JSON(httpCode, Response[any]{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK)
}

func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, http.StatusInternalServerError, msg, nil, errorCode)
}

func BadRequestError(c *gin.Context, msg string) {
	wrapResponse(c, http.StatusBadRequest, msg, nil, InvalidRequest)
}
