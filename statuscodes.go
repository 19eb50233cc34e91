package odp

import (
	"context"
	"strconv"
	"strings"
)

const statusCodesPath = "api/v1/patent/status-codes"

// StatusCode is an application status code and its description.
type StatusCode struct {
	Code        *int    `json:"applicationStatusCode,omitempty"`
	Description *string `json:"applicationStatusDescriptionText,omitempty"`
}

func (s StatusCode) String() string {
	code := "?"
	if s.Code != nil {
		code = strconv.Itoa(*s.Code)
	}
	return code + ": " + deref(s.Description)
}

// UnmarshalJSON accepts both the code/description and the
// applicationStatusCode/applicationStatusDescriptionText key pairs. A short
// key that is missing or null falls back to its long form.
func (s *StatusCode) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "StatusCode")
	if err != nil {
		return err
	}
	codeKey, descKey := "applicationStatusCode", "applicationStatusDescriptionText"
	if o.present("code") != nil {
		codeKey = "code"
	}
	if o.present("description") != nil {
		descKey = "description"
	}
	*s = StatusCode{Code: o.integer(codeKey), Description: o.str(descKey)}
	return nil
}

// StatusCodeSearchResponse is a page of status codes.
type StatusCodeSearchResponse = Page[StatusCode]

const statusCodeBagKey = "statusCodeBag"

// DecodeStatusCodeSearchResponse decodes a status code payload. The result cannot page forward.
func DecodeStatusCodeSearchResponse(data []byte) (*StatusCodeSearchResponse, error) {
	return decodePage[StatusCode](data, "StatusCodeSearchResponse", statusCodeBagKey)
}

// FindStatusCode returns the status code with the given numeric code.
func FindStatusCode(codes Bag[StatusCode], code int) (StatusCode, bool) {
	return codes.Find(func(s StatusCode) bool {
		return s.Code != nil && *s.Code == code
	})
}

// SearchStatusDescriptions returns the status codes whose description
// contains text, ignoring case.
func SearchStatusDescriptions(codes Bag[StatusCode], text string) Bag[StatusCode] {
	text = strings.ToLower(text)
	return Bag[StatusCode](codes.Filter(func(s StatusCode) bool {
		return s.Description != nil && strings.Contains(strings.ToLower(*s.Description), text)
	}))
}

// StatusCodeOptions are the query parameters of GetStatusCodes.
type StatusCodeOptions struct {
	Query  string
	Offset int
	Limit  int
	Extra  map[string]string
}

func (o StatusCodeOptions) params() (Params, error) {
	b := newParamBuilder()
	b.add("q", o.Query)
	b.add(paramOffset, o.Offset)
	b.add(paramLimit, o.Limit)
	b.merge(o.Extra)
	return b.build()
}

// GetStatusCodes lists application status codes.
func (c *Client) GetStatusCodes(ctx context.Context, opts StatusCodeOptions) (*StatusCodeSearchResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return c.fetchStatusCodes(ctx, params)
}

func (c *Client) fetchStatusCodes(ctx context.Context, params Params) (*StatusCodeSearchResponse, error) {
	endpoint, err := c.endpoint(statusCodesPath)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "GetStatusCodes", endpoint, params)
	if err != nil {
		return nil, err
	}
	page, err := DecodeStatusCodeSearchResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body).attach("GetStatusCodes", params, c.fetchStatusCodes), nil
}

// SearchStatusCodes searches status codes with a JSON request body.
func (c *Client) SearchStatusCodes(ctx context.Context, request any) (*StatusCodeSearchResponse, error) {
	endpoint, err := c.endpoint(statusCodesPath)
	if err != nil {
		return nil, err
	}
	body, err := c.post(ctx, "SearchStatusCodes", endpoint, request)
	if err != nil {
		return nil, err
	}
	page, err := DecodeStatusCodeSearchResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body), nil
}
