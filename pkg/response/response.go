package response

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"alertr-srv/pkg/discord"
	"alertr-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(parseError(errors.NewUnauthorizedHTTPError(), c, nil))
}

func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(parseError(errors.NewNotFoundHTTPError(), c, nil))
}

func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(parseError(errors.NewTooManyRequestsHTTPError(), c, nil))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var (
		httpErr   *errors.HTTPError
		collector *errors.ValidationErrorCollector
		valErr    *errors.ValidationError
	)
	switch {
	case stderrors.As(err, &collector):
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   collector.Error(),
			Errors:    collector.Errors(),
		}
	case stderrors.As(err, &valErr):
		return http.StatusBadRequest, Resp{
			ErrorCode: valErr.Code,
			Message:   valErr.Error(),
		}
	case stderrors.As(err, &httpErr):
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	default:
		if d != nil && err != nil {
			report := buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace())
			sendDiscordMessageAsync(d, report)
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends corresponding HTTPError, else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			HttpError(c, httpErr)
			return
		}
	}
	Error(c, err, d)
}

// PanicError renders a recovered panic value as a 500 and reports it when d is set.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", rec)
	}
	if d != nil {
		report := buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace())
		sendDiscordMessageAsync(d, report)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
