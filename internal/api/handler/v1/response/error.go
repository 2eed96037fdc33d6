package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Wire error messages, localized as deployed.
const (
	msgInvalidRequest   = "अमान्य अनुरोध"  // invalid request
	msgPINRequired      = "पिन आवश्यक है"  // PIN is required
	msgInvalidPIN       = "अमान्य पिन"     // invalid PIN
	msgUnauthorized     = "अनधिकृत"        // unauthorized
	msgPermissionDenied = "अनुमति नहीं है" // permission denied
	msgEventNotFound    = "इवेंट नहीं मिला" // event not found
	msgDatabaseError    = "डेटाबेस त्रुटि" // database error
	msgServerError      = "सर्वर त्रुटि"   // server error
)

type Err struct {
	StatusCode int    `json:"-"`
	ErrorMsg   string `json:"error"`
	Details    string `json:"details,omitempty"`

	cause error
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   msgInvalidRequest,
		Details:    err.Error(),
		cause:      err,
	}
}

func ErrPINRequired() *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   msgPINRequired,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   msgInvalidPIN,
		cause:      err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   msgUnauthorized,
		cause:      err,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorMsg:   msgPermissionDenied,
		cause:      err,
	}
}

func ErrEventNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   msgEventNotFound,
		cause:      err,
	}
}

func ErrDatabaseError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   msgDatabaseError,
		cause:      err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   msgServerError,
		Details:    err.Error(),
		cause:      err,
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
