package client

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// newRestClient builds the dispatcher shared by every call. Retries stay
// disabled: one method call is one request.
func newRestClient(hc *http.Client, headers map[string]string, logger zerolog.Logger) *resty.Client {
	rc := resty.NewWithClient(hc).
		SetRetryCount(0).
		SetLogger(restyLogger{logger: logger})
	if len(headers) > 0 {
		rc.SetHeaders(headers)
	}

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		requestsTotal.WithLabelValues(resp.Request.Method, strconv.Itoa(resp.StatusCode())).Inc()
		return nil
	})
	rc.OnError(func(req *resty.Request, _ error) {
		requestsTotal.WithLabelValues(req.Method, "error").Inc()
	})
	return rc
}

// restyLogger routes resty's internal messages to zerolog.
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}
