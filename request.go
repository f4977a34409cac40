package dtoform

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContentType is the media type of the data produced by [Marshal].
const ContentType = "application/x-www-form-urlencoded"

// NewRequest returns an [http.Request] whose body is the form encoding of v,
// with the Content-Type header set accordingly.
func NewRequest(ctx context.Context, method, url string, v any, opts ...Option) (*http.Request, error) {
	body, err := EncodeToString(v, opts...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("form: building request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)
	return req, nil
}
