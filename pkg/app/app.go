// Package app holds the HTTP surface helpers shared by all handlers:
// the unified response envelope and the WebSocket event hub UI shells
// subscribe to.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Res is the unified response envelope: Code/Status/Message/Data.
// Optional fields use omitempty.
type Res struct {
	Code    int         `json:"code"`
	Status  bool        `json:"status"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{Ctx: ctx}
}

// ToResponse answers a successful request.
func (r *Response) ToResponse(data interface{}) {
	r.Ctx.JSON(http.StatusOK, Res{
		Code:   0,
		Status: true,
		Data:   data,
	})
}

// ToError answers a failed request. The HTTP status stays 200 for shell
// simplicity; failures ride on the envelope.
func (r *Response) ToError(errCode int, message string, details ...string) {
	res := Res{
		Code:    errCode,
		Status:  false,
		Message: message,
	}
	if len(details) > 0 {
		res.Details = details
	}
	r.Ctx.JSON(http.StatusOK, res)
}

// GetRequestIP gets the request IP
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}
