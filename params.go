package odp

import (
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
)

const (
	// DefaultLimit is the page size used when a request does not set one.
	DefaultLimit = 25

	paramOffset = "offset"
	paramLimit  = "limit"
)

// Params holds query parameters by wire name, already serialized.
type Params map[string]string

// Clone returns a copy that can be modified without affecting p.
func (p Params) Clone() Params {
	out := make(Params, len(p)+2)
	maps.Copy(out, p)
	return out
}

// Values converts p to url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for k, s := range p {
		v.Set(k, s)
	}
	return v
}

// Offset returns the offset parameter, or 0 when unset or negative.
func (p Params) Offset() int {
	return max(p.intOr(paramOffset, 0), 0)
}

// Limit returns the limit parameter, or DefaultLimit when unset or not positive.
func (p Params) Limit() int {
	if n := p.intOr(paramLimit, DefaultLimit); n > 0 {
		return n
	}
	return DefaultLimit
}

func (p Params) intOr(key string, def int) int {
	if n, err := strconv.Atoi(p[key]); err == nil {
		return n
	}
	return def
}

// withPage returns a copy of p with offset and limit set.
func (p Params) withPage(offset, limit int) Params {
	out := p.Clone()
	out[paramOffset] = strconv.Itoa(offset)
	out[paramLimit] = strconv.Itoa(limit)
	return out
}

// paramBuilder serializes typed option values into Params with the OpenAPI
// "simple" style: booleans as true/false, lists comma-joined, numbers as decimals.
type paramBuilder struct {
	params Params
	err    error
}

func newParamBuilder() *paramBuilder {
	return &paramBuilder{params: Params{}}
}

// add sets key unless v is the zero value of its type.
func (b *paramBuilder) add(key string, v any) {
	if b.err != nil {
		return
	}
	if err := checkPaging(key, v); err != nil {
		b.err = err
		return
	}
	switch x := v.(type) {
	case string:
		if x == "" {
			return
		}
	case int:
		if x == 0 {
			return
		}
	case *int:
		if x == nil {
			return
		}
	case *bool:
		if x == nil {
			return
		}
	case []string:
		if len(x) == 0 {
			return
		}
	case *Date:
		if x == nil {
			return
		}
	}
	s, err := runtime.StyleParamWithLocation("simple", false, key, runtime.ParamLocationUndefined, v)
	if err != nil {
		b.err = fmt.Errorf("parameter %s: %w", key, err)
		return
	}
	b.params[key] = s
}

// checkPaging rejects a negative offset and a limit below one. A plain int
// limit of 0 means unset and is skipped by add; a *int pointing at 0 is not.
func checkPaging(key string, v any) error {
	if key != paramOffset && key != paramLimit {
		return nil
	}
	var n int
	explicit := false
	switch x := v.(type) {
	case int:
		n = x
	case *int:
		if x == nil {
			return nil
		}
		n, explicit = *x, true
	default:
		return nil
	}
	switch {
	case key == paramOffset && n < 0:
		return &PaginationError{Reason: fmt.Sprintf("offset must not be negative, got %d", n)}
	case key == paramLimit && (n < 0 || n == 0 && explicit):
		return &PaginationError{Reason: fmt.Sprintf("limit must be positive, got %d", n)}
	}
	return nil
}

// merge copies extra over the built parameters.
func (b *paramBuilder) merge(extra map[string]string) {
	maps.Copy(b.params, extra)
}

func (b *paramBuilder) build() (Params, error) {
	return b.params, b.err
}

// pathEscape escapes one path segment.
func pathEscape(segment string) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, segment)
}

// queryBuilder assembles a Lucene style q parameter from field clauses.
type queryBuilder struct {
	parts []string
}

func (q *queryBuilder) term(field, value string) {
	if value != "" {
		q.parts = append(q.parts, field+":"+value)
	}
}

// dateRange adds field:[from TO to], field:>=from or field:<=to depending on which bounds are set.
func (q *queryBuilder) dateRange(field, from, to string) {
	switch {
	case from != "" && to != "":
		q.parts = append(q.parts, fmt.Sprintf("%s:[%s TO %s]", field, from, to))
	case from != "":
		q.parts = append(q.parts, field+":>="+from)
	case to != "":
		q.parts = append(q.parts, field+":<="+to)
	}
}

// rangeBetween is dateRange with the lower bound on fromField and the upper on toField.
// When both are set the closed range is expressed on fromField.
func (q *queryBuilder) rangeBetween(fromField, from, toField, to string) {
	if from != "" && to != "" {
		q.dateRange(fromField, from, to)
		return
	}
	q.dateRange(fromField, from, "")
	q.dateRange(toField, "", to)
}

// String joins the clauses with AND.
func (q *queryBuilder) String() string {
	return strings.Join(q.parts, " AND ")
}

// resolveQuery returns explicit when set, otherwise the assembled clauses.
func (q *queryBuilder) resolveQuery(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return q.String()
}
