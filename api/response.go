// Package api
package api

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/gigglywizard/scanner-backend/types"
)

var (
	OK             = EchoResponse{StatusCode: http.StatusOK, Code: 1000, Msg: "Success"}
	InternalServer = EchoResponse{StatusCode: http.StatusInternalServerError, Code: 1100, Msg: "Server busy..."}
	Invalid        = EchoResponse{StatusCode: http.StatusBadRequest, Code: 1101, Msg: "Bad request"}
	Superseded     = EchoResponse{StatusCode: http.StatusConflict, Code: 1102, Msg: "Scan superseded by a newer request"}
	ScanFailed     = EchoResponse{StatusCode: http.StatusBadGateway, Code: 1103, Msg: types.ScanFailedMessage}
)

type EchoResponse struct {
	StatusCode int         `json:"-"`
	Code       int         `json:"code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
}

// SetData works on a copy so the shared responses above stay untouched.
func (r EchoResponse) SetData(data interface{}) *EchoResponse {
	r.Data = data
	return &r
}

func (r EchoResponse) Build(c echo.Context) error {
	return c.JSON(r.StatusCode, r)
}
