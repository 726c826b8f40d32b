package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx answers. Otherwise the {"error": ...}
// message of the body is wrapped in the sentinel of the status code.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorBodyMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

func errorBodyMessage(resp *resty.Response) string {
	if envelope, ok := resp.Error().(*models.ErrorEnvelope); ok && envelope.Error != "" {
		return envelope.Error
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
