package xhttp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropradar/DropRadar/errcode"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  "success",
		Data: data,
	})
}

// Error maps errcode errors onto their HTTP status; anything else is a 500.
func Error(c *gin.Context, err error) {
	e := errcode.ErrUnexpected
	var ce *errcode.Err
	if errors.As(err, &ce) {
		e = ce
	}
	c.JSON(e.Code, Response{Code: e.Code, Msg: e.Msg})
}
