package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "card-consumption-assistant/pkg/errors"
)

// ReturnCodeKey is the gin context key holding the RETURNCODE sent, read by the metrics middleware.
const ReturnCodeKey = "response.return_code"

// ReturnCodeSuccess labels successful responses, which carry a null RETURNCODE.
const ReturnCodeSuccess = "0000"

// OK sends a successful envelope.
func OK(c *gin.Context, header Header, tranrs any) {
	header.RETURNCODE = nil
	header.RETURNDESC = nil
	c.Set(ReturnCodeKey, ReturnCodeSuccess)
	c.JSON(http.StatusOK, Resp{MWHEADER: header, TRANRS: tranrs})
}

// Error sends a failed envelope. The HTTP status stays 200; the failure is
// reported through RETURNCODE and RETURNDESC. Errors that are not a
// ServiceError are reported as 9999.
func Error(c *gin.Context, header Header, err error, tranrs any) {
	se := pkgErrors.AsServiceError(err)
	code, desc := se.Code, se.Describe
	header.RETURNCODE = &code
	header.RETURNDESC = &desc
	c.Set(ReturnCodeKey, code)
	c.JSON(http.StatusOK, Resp{MWHEADER: header, TRANRS: tranrs})
}

// Status sends a plain JSON body for system routes.
func Status(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
