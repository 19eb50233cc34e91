package odp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakePages serves pages of the given sizes and records every request.
type fakePages struct {
	sizes []int
	calls []Params
	err   error
	errAt int
}

func (f *fakePages) fetch(_ context.Context, params Params) (*Page[int], error) {
	f.calls = append(f.calls, params.Clone())
	n := len(f.calls) - 1
	if f.err != nil && n == f.errAt {
		return nil, f.err
	}
	page := &Page[int]{}
	if n < len(f.sizes) {
		for i := range f.sizes[n] {
			page.Items = append(page.Items, params.Offset()+i)
		}
	}
	page.Count = 60
	return page.attach("fake", params, f.fetch), nil
}

func TestPaginate(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	t.Run("AllPages", func(t *testing.T) {
		f := &fakePages{sizes: []int{25, 25, 10}}
		var got []int
		for v, err := range Paginate(context.Background(), f.fetch, Params{"q": "x"}) {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Len(t, got, 60)
		assert.Equal(t, 59, got[59])
		require.Len(t, f.calls, 3)
		for i, p := range f.calls {
			assert.Equal(t, "x", p["q"])
			assert.Equal(t, strconv.Itoa(i*25), p["offset"])
			assert.Equal(t, "25", p["limit"])
		}
	})

	t.Run("ExactMultipleEndsOnEmptyPage", func(t *testing.T) {
		f := &fakePages{sizes: []int{25, 25}}
		count := 0
		for _, err := range Paginate(context.Background(), f.fetch, Params{}) {
			require.NoError(t, err)
			count++
		}
		assert.Equal(t, 50, count)
		assert.Len(t, f.calls, 3)
	})

	t.Run("StartOffsetAndLimit", func(t *testing.T) {
		f := &fakePages{sizes: []int{10, 3}}
		var got []int
		for v, err := range Paginate(context.Background(), f.fetch, Params{"offset": "100", "limit": "10"}) {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, 100, got[0])
		assert.Len(t, got, 13)
		assert.Equal(t, "110", f.calls[1]["offset"])
	})

	t.Run("EarlyStop", func(t *testing.T) {
		f := &fakePages{sizes: []int{25, 25, 10}}
		count := 0
		for _, err := range Paginate(context.Background(), f.fetch, Params{}) {
			require.NoError(t, err)
			count++
			if count == 30 {
				break
			}
		}
		assert.Equal(t, 30, count)
		assert.Len(t, f.calls, 2, "no page is requested past the consumer")
	})

	t.Run("ErrorYieldedOnce", func(t *testing.T) {
		boom := errors.New("boom")
		f := &fakePages{sizes: []int{25, 25, 25}, err: boom, errAt: 1}
		var items, errs int
		for _, err := range Paginate(context.Background(), f.fetch, Params{}) {
			if err != nil {
				assert.ErrorIs(t, err, boom)
				errs++
				continue
			}
			items++
		}
		assert.Equal(t, 25, items)
		assert.Equal(t, 1, errs)
		assert.Len(t, f.calls, 2)
	})

	t.Run("NothingRequestedUntilIterated", func(t *testing.T) {
		f := &fakePages{sizes: []int{1}}
		seq := Paginate(context.Background(), f.fetch, Params{})
		assert.Empty(t, f.calls)
		for range seq {
		}
		assert.Len(t, f.calls, 1)
	})
}

func TestNextPage(t *testing.T) {
	f := &fakePages{sizes: []int{25, 25, 10}}
	first, err := f.fetch(context.Background(), Params{"q": "x", "offset": "0", "limit": "25"})
	require.NoError(t, err)
	require.True(t, first.HasNextPage())

	second, err := first.NextPage(context.Background())
	require.NoError(t, err)
	info, ok := second.Info()
	require.True(t, ok)
	assert.Equal(t, 25, info.Offset)
	assert.Equal(t, 25, info.Limit)
	assert.Equal(t, "x", info.Params["q"])
	assert.Equal(t, "fake", info.Method)

	third, err := second.NextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, third.Len())
	assert.False(t, third.HasNextPage())

	_, err = third.NextPage(context.Background())
	var pe *PaginationError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestNextPageWithoutContext(t *testing.T) {
	page, err := DecodeBulkDataResponse([]byte(productSearchBody))
	require.NoError(t, err)

	assert.False(t, page.HasNextPage())
	_, ok := page.Info()
	assert.False(t, ok)

	_, err = page.NextPage(context.Background())
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestPageInfoIsACopy(t *testing.T) {
	f := &fakePages{sizes: []int{25}}
	page, err := f.fetch(context.Background(), Params{"q": "x"})
	require.NoError(t, err)

	info, _ := page.Info()
	info.Params["q"] = "changed"

	again, _ := page.Info()
	assert.Equal(t, "x", again.Params["q"])
}

func TestPaginateApplications(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		size := 2
		if offset >= 4 {
			size = 1
		}
		body := `{"count": 5, "patentFileWrapperDataBag": [`
		for i := range size {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"applicationNumberText": "%d"}`, offset+i)
		}
		writeJSON(w, http.StatusOK, body+`]}`)
	}))

	var numbers []string
	for w, err := range client.PaginateApplications(context.Background(), ApplicationSearchOptions{Query: "widget", Limit: 2}) {
		require.NoError(t, err)
		numbers = append(numbers, w.ApplicationNumber())
	}
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, numbers)
	assert.Equal(t, int32(3), requests.Load())
}

func TestPaginateFirstPageError(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())
	n := 0
	for _, err := range client.PaginateProducts(context.Background(), ProductSearchOptions{}) {
		n++
		assert.True(t, IsNotFound(err))
	}
	assert.Equal(t, 1, n)
}

func TestNonPositiveLimit(t *testing.T) {
	t.Run("OptionsRejected", func(t *testing.T) {
		_, err := ProductSearchOptions{Limit: -1}.params()
		var pe *PaginationError
		require.ErrorAs(t, err, &pe)
		assert.ErrorIs(t, err, ErrInvalidPagination)

		_, err = ApplicationSearchOptions{Offset: -5}.params()
		assert.ErrorIs(t, err, ErrInvalidPagination)

		zero := 0
		_, err = ProductOptions{Limit: &zero}.params()
		assert.ErrorIs(t, err, ErrInvalidPagination)

		params, err := ProductSearchOptions{}.params()
		require.NoError(t, err)
		assert.NotContains(t, params, "limit")
	})

	t.Run("PaginateNeverRequests", func(t *testing.T) {
		var requests atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			writeJSON(w, http.StatusOK, `{"count": 1, "bulkDataProductBag": [{"productIdentifier": "A"}]}`)
		}))
		n := 0
		for _, err := range client.PaginateProducts(context.Background(), ProductSearchOptions{Limit: -1}) {
			n++
			assert.ErrorIs(t, err, ErrInvalidPagination)
		}
		assert.Equal(t, 1, n)
		assert.Zero(t, requests.Load())
	})

	for _, limit := range []string{"0", "-1"} {
		t.Run("RawLimit"+limit, func(t *testing.T) {
			f := &fakePages{sizes: []int{3, 3, 3, 3}}
			count := 0
			for _, err := range Paginate(context.Background(), f.fetch, Params{"limit": limit, "offset": "-4"}) {
				require.NoError(t, err)
				count++
			}
			assert.Equal(t, 3, count)
			require.Len(t, f.calls, 1)
			assert.Equal(t, "25", f.calls[0]["limit"])
			assert.Equal(t, "0", f.calls[0]["offset"])

			page, err := (&fakePages{sizes: []int{3}}).fetch(context.Background(), Params{"limit": limit})
			require.NoError(t, err)
			assert.False(t, page.HasNextPage())
		})
	}
}
