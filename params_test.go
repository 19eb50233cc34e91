package odp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func(q *queryBuilder)
		want  string
	}{
		{"Empty", func(q *queryBuilder) {}, ""},
		{"Terms", func(q *queryBuilder) {
			q.term("a", "1")
			q.term("b", "")
			q.term("c", "3")
		}, "a:1 AND c:3"},
		{"ClosedRange", func(q *queryBuilder) { q.dateRange("d", "2020-01-01", "2020-12-31") }, "d:[2020-01-01 TO 2020-12-31]"},
		{"LowerBound", func(q *queryBuilder) { q.dateRange("d", "2020-01-01", "") }, "d:>=2020-01-01"},
		{"UpperBound", func(q *queryBuilder) { q.dateRange("d", "", "2020-12-31") }, "d:<=2020-12-31"},
		{"BetweenFields", func(q *queryBuilder) { q.rangeBetween("from", "", "to", "2021-01-01") }, "to:<=2021-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q queryBuilder
			tt.build(&q)
			assert.Equal(t, tt.want, q.String())
		})
	}

	var q queryBuilder
	q.term("a", "1")
	assert.Equal(t, "explicit", q.resolveQuery("explicit"))
	assert.Equal(t, "a:1", q.resolveQuery(""))
}

func TestProductSearchParams(t *testing.T) {
	params, err := ProductSearchOptions{
		Categories:   []string{"a", "b"},
		IncludeFiles: boolPtr(true),
		Limit:        10,
		ProductIDQ:   "PTGRXML",
		FromDateQ:    "2024-01-01",
		Extra:        map[string]string{"limit": "50", "custom": "x"},
	}.params()
	require.NoError(t, err)

	assert.Equal(t, Params{
		"categories":   "a,b",
		"includeFiles": "true",
		"limit":        "50",
		"custom":       "x",
		"q":            "productIdentifier:PTGRXML AND productFromDate:>=2024-01-01",
	}, params)
}

func TestApplicationSearchParams(t *testing.T) {
	params, err := ApplicationSearchOptions{
		InventorNameQ:   "Lovelace",
		FilingDateFromQ: "2019-01-01",
		FilingDateToQ:   "2019-12-31",
		Sort:            "applicationMetaData.filingDate desc",
		Offset:          50,
	}.params()
	require.NoError(t, err)

	assert.Equal(t, "applicationMetaData.inventorBag.inventorNameText:Lovelace AND applicationMetaData.filingDate:[2019-01-01 TO 2019-12-31]", params["q"])
	assert.Equal(t, "applicationMetaData.filingDate desc", params["sort"])
	assert.Equal(t, "50", params["offset"])
	assert.NotContains(t, params, "limit")

	params, err = ApplicationSearchOptions{Query: "raw", InventorNameQ: "ignored"}.params()
	require.NoError(t, err)
	assert.Equal(t, "raw", params["q"])
}

func TestParamsPaging(t *testing.T) {
	p := Params{"q": "x"}
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, DefaultLimit, p.Limit())

	next := p.withPage(25, 25)
	assert.Equal(t, "25", next["offset"])
	assert.NotContains(t, p, "offset", "withPage copies")

	assert.Equal(t, "x", next.Values().Get("q"))
}

func TestPathEscape(t *testing.T) {
	got, err := pathEscape("16/123")
	require.NoError(t, err)
	assert.Equal(t, "16%2F123", got)

	client, err := NewClient(&Config{APIKey: "k", BaseURL: "https://example.test"})
	require.NoError(t, err)
	endpoint, err := client.endpoint(applicationPath+"/documents", "PCT/US2020/012345")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/api/v1/patent/applications/PCT%2FUS2020%2F012345/documents", endpoint)

	_, err = client.endpoint(applicationPath, " ")
	assert.Error(t, err)
}
