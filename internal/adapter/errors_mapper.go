package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.kind = ErrForbidden
	case http.StatusNotFound:
		statusErr.kind = ErrNotFound
	case http.StatusConflict:
		statusErr.kind = ErrConflict
	case http.StatusBadGateway:
		statusErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.kind = ErrInternalServerError
	default:
		if statusErr.Body == "" {
			statusErr.Body = http.StatusText(resp.StatusCode())
		}
	}

	return statusErr
}
