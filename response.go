package odp

import (
	"context"
	"iter"

	"github.com/goccy/go-json"
)

// PageFunc fetches one page for the given parameters.
type PageFunc[T any] func(ctx context.Context, params Params) (*Page[T], error)

// PageInfo describes the request that produced a paginated page.
type PageInfo struct {
	Method string
	Params Params
	Offset int
	Limit  int
}

// Page is one decoded response envelope: the server-reported total, the
// records of the current page and, when produced by a client call that
// supports paging, what is needed to request the next page.
type Page[T any] struct {
	Count             int
	Items             Bag[T]
	RequestIdentifier string
	// Raw is the undecoded payload, kept only when Config.IncludeRawData is set.
	Raw json.RawMessage

	bagKey string
	info   *PageInfo
	fetch  PageFunc[T]
}

// Len returns the number of records on this page.
func (p *Page[T]) Len() int { return len(p.Items) }

// At returns the i-th record of this page.
func (p *Page[T]) At(i int) T { return p.Items[i] }

// All iterates over the records of this page.
func (p *Page[T]) All() iter.Seq[T] { return p.Items.All() }

// Info returns the paging context. ok is false for pages decoded from a raw payload.
func (p *Page[T]) Info() (info PageInfo, ok bool) {
	if p.info == nil {
		return PageInfo{}, false
	}
	info = *p.info
	info.Params = p.info.Params.Clone()
	return info, true
}

// HasNextPage reports whether another page is likely available: the page is
// paginated and returned at least Limit records. Count is not consulted since
// some endpoints report total matches rather than what remains.
func (p *Page[T]) HasNextPage() bool {
	if p.info == nil || p.fetch == nil {
		return false
	}
	return len(p.Items) >= p.info.Limit
}

// NextPage fetches the page following p with the same parameters and offset
// advanced by the limit. It returns a *PaginationError when p carries no
// paging context or no next page exists.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	if p.info == nil || p.fetch == nil {
		return nil, &PaginationError{Reason: "response was not produced by a paginated request"}
	}
	if !p.HasNextPage() {
		return nil, &PaginationError{Reason: "no more pages available"}
	}
	params := p.info.Params.withPage(p.info.Offset+p.info.Limit, p.info.Limit)
	return p.fetch(ctx, params)
}

// attach records the paging context on p.
func (p *Page[T]) attach(method string, params Params, fetch PageFunc[T]) *Page[T] {
	p.info = &PageInfo{
		Method: method,
		Params: params.Clone(),
		Offset: params.Offset(),
		Limit:  params.Limit(),
	}
	p.fetch = fetch
	return p
}

// MarshalJSON encodes the envelope in its wire shape. count is always present.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	m := map[string]any{"count": p.Count}
	if len(p.Items) > 0 {
		m[p.bagKey] = p.Items
	}
	if p.RequestIdentifier != "" {
		m["requestIdentifier"] = p.RequestIdentifier
	}
	return json.Marshal(m)
}

// decodePage decodes an envelope whose records live under bagKey.
func decodePage[T any, P recordPtr[T]](data []byte, typeName, bagKey string) (*Page[T], error) {
	o, err := parseTopLevel(data, typeName)
	if err != nil {
		return nil, err
	}
	return &Page[T]{
		Count:             o.intOr0("count"),
		Items:             list[T, P](o, bagKey),
		RequestIdentifier: o.text("requestIdentifier"),
		bagKey:            bagKey,
	}, nil
}

// ToMap returns the wire shape of v as generic JSON values.
func ToMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
