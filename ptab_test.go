package odp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ptabProceedingsBody = `{
	"count": 1,
	"requestIdentifier": "ptab-1",
	"patentTrialProceedingDataBag": [{
		"trialNumber": "IPR2023-00001",
		"trialRecordIdentifier": "rec-1",
		"lastModifiedDateTime": "2023-12-15T10:30:00Z",
		"trialMetaData": {
			"petitionFilingDate": "2023-01-15",
			"trialStatusCategory": "Instituted",
			"trialTypeCode": "IPR",
			"trialLastModifiedDateTime": "2023-12-15T10:30:00Z"
		},
		"patentOwnerData": {"patentOwnerName": "Owner Inc", "patentNumber": "US1234567", "grantDate": "2020-06-02"},
		"regularPetitionerData": {"counselName": "Petitioner Counsel", "realPartyInInterestName": "Petitioner LLC"},
		"respondentData": null
	}]
}`

const ptabDocumentsBody = `{
	"count": 1,
	"patentTrialDocumentDataBag": [{
		"trialDocumentCategory": "Decision",
		"trialNumber": "IPR2023-00001",
		"trialTypeCode": "IPR",
		"documentData": {
			"documentName": "Decision.pdf",
			"documentNumber": 1001,
			"documentSizeQuantity": 123456,
			"documentFilingDate": "2023-12-15",
			"downloadURI": "https://example.test/doc1.pdf"
		},
		"decisionData": {
			"decisionTypeCategory": "Final Written Decision",
			"trialOutcomeCategory": "Denied",
			"decisionIssueDate": "2023-12-15",
			"statuteAndRuleBag": ["35 U.S.C. 103"],
			"issueTypeBag": ["Obviousness"]
		}
	}]
}`

const ptabInterferencesBody = `{
	"count": 1,
	"patentInterferenceDataBag": [{
		"interferenceNumber": "106123",
		"lastIngestionDateTime": "2024-01-02T03:04:05Z",
		"interferenceMetaData": {"interferenceStyleName": "Senior v. Junior", "interferenceLastModifiedDate": "2023-06-30"},
		"seniorPartyData": {"patentOwnerName": "Senior Party Inc.", "publicationNumber": "US20200001"},
		"juniorPartyData": {"inventorName": "J. Junior"},
		"additionalPartyDataBag": [
			{"additionalPartyName": "Third Party", "patentNumber": "US7654321"},
			"not a party"
		],
		"decisionDocumentData": {
			"interferenceOutcomeCategory": "Priority to Senior Party",
			"decisionTypeCategory": "Final Decision",
			"decisionIssueDate": "2023-06-30",
			"downloadURI": "https://example.test/decision.pdf"
		}
	}]
}`

func TestPTABSearches(t *testing.T) {
	var mu sync.Mutex
	requests := map[string]*http.Request{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests[r.URL.Path] = r
		mu.Unlock()
		switch r.URL.Path {
		case "/" + ptabProceedingsSearchPath:
			writeJSON(w, http.StatusOK, ptabProceedingsBody)
		case "/" + ptabDocumentsSearchPath, "/" + ptabDecisionsSearchPath:
			writeJSON(w, http.StatusOK, ptabDocumentsBody)
		case "/" + ptabAppealsSearchPath:
			writeJSON(w, http.StatusOK, `{"count": 1, "patentAppealDataBag": [{
				"appealNumber": "2023-001234",
				"appealMetaData": {"applicationTypeCategory": "Utility", "appealFilingDate": "2022-02-01"},
				"appelantData": {"realPartyInInterestName": "Appellant Corp"},
				"requestorData": {"thirdPartyName": "Requestor"},
				"documentData": {"documentTypeCategory": "Decision", "documentIdentifier": "ad-1"},
				"decisionData": {"appealOutcomeCategory": "Affirmed"}
			}]}`)
		case "/" + ptabInterferencesSearchPath:
			writeJSON(w, http.StatusOK, ptabInterferencesBody)
		default:
			writeJSON(w, http.StatusNotFound, `{"message": "no route"}`)
		}
	}))
	lastQuery := func(path string) url.Values {
		mu.Lock()
		defer mu.Unlock()
		return requests["/"+path].URL.Query()
	}
	ctx := context.Background()

	t.Run("Proceedings", func(t *testing.T) {
		resp, err := client.SearchPTABTrialProceedings(ctx, PTABProceedingSearchOptions{
			PTABQuery:               PTABQuery{Limit: 5, Sort: "trialNumber asc", Filters: "trialTypeCode IPR"},
			TrialNumberQ:            "IPR2023-00001",
			PatentOwnerNameQ:        "Owner Inc",
			PetitionFilingDateFromQ: "2023-01-01",
			PetitionFilingDateToQ:   "2023-12-31",
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Len())
		assert.Equal(t, "ptab-1", resp.RequestIdentifier)

		q := lastQuery(ptabProceedingsSearchPath)
		assert.Equal(t, "trialNumber:IPR2023-00001 AND patentOwnerName:Owner Inc AND petitionFilingDate:[2023-01-01 TO 2023-12-31]", q.Get("q"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "trialNumber asc", q.Get("sort"))
		assert.Equal(t, "trialTypeCode IPR", q.Get("filters"))

		trial := resp.At(0)
		assert.Equal(t, "IPR2023-00001", *trial.TrialNumber)
		assert.Equal(t, "2023-12-15T10:30:00Z", trial.LastModifiedDateTime.String())
		require.NotNil(t, trial.TrialMetaData)
		assert.Equal(t, NewDate(2023, time.January, 15), *trial.TrialMetaData.PetitionFilingDate)
		assert.Equal(t, "IPR", *trial.TrialMetaData.TrialTypeCode)
		assert.Equal(t, NewDate(2020, time.June, 2), *trial.PatentOwnerData.GrantDate)
		assert.Equal(t, "Petitioner LLC", *trial.RegularPetitionerData.RealPartyInInterestName)
		assert.Nil(t, trial.RespondentData)
		assert.Nil(t, trial.DerivationPetitionerData)
	})

	t.Run("Documents", func(t *testing.T) {
		resp, err := client.SearchPTABTrialDocuments(ctx, PTABDocumentSearchOptions{
			TrialNumberQ:      "IPR2023-00001",
			DocumentCategoryQ: "Exhibit",
			FilingDateFromQ:   "2023-01-01",
		})
		require.NoError(t, err)
		q := lastQuery(ptabDocumentsSearchPath)
		assert.Equal(t, "trialNumber:IPR2023-00001 AND documentCategory:Exhibit AND filingDate:>=2023-01-01", q.Get("q"))
		assert.False(t, q.Has("limit"))

		doc := resp.At(0).DocumentData
		require.NotNil(t, doc)
		assert.Equal(t, "1001", *doc.DocumentNumber)
		assert.Equal(t, 123456, *doc.DocumentSizeQuantity)
		assert.Equal(t, "https://example.test/doc1.pdf", *doc.FileDownloadURI)
	})

	t.Run("Decisions", func(t *testing.T) {
		resp, err := client.SearchPTABTrialDecisions(ctx, PTABDecisionSearchOptions{
			DecisionTypeCategoryQ: "Final Written Decision",
			DecisionDateToQ:       "2023-12-31",
		})
		require.NoError(t, err)
		q := lastQuery(ptabDecisionsSearchPath)
		assert.Equal(t, "decisionTypeCategory:Final Written Decision AND decisionDate:<=2023-12-31", q.Get("q"))

		var decision PTABTrialDecision = resp.At(0)
		require.NotNil(t, decision.DecisionData)
		assert.Equal(t, "Denied", *decision.DecisionData.TrialOutcomeCategory)
		assert.Equal(t, NewDate(2023, time.December, 15), *decision.DecisionData.DecisionIssueDate)
		assert.Equal(t, []string{"35 U.S.C. 103"}, decision.DecisionData.StatuteAndRuleBag)
		assert.Equal(t, []string{"Obviousness"}, decision.DecisionData.IssueTypeBag)
	})

	t.Run("Appeals", func(t *testing.T) {
		resp, err := client.SearchPTABAppealDecisions(ctx, PTABAppealSearchOptions{
			ApplicationTypeCategoryQ: "Utility",
			AppellantNameQ:           "Corporation",
		})
		require.NoError(t, err)
		q := lastQuery(ptabAppealsSearchPath)
		assert.Equal(t, "appealMetaData.applicationTypeCategory:Utility AND appellantData.realPartyInInterestName:Corporation", q.Get("q"))

		appeal := resp.At(0)
		require.NotNil(t, appeal.AppellantData)
		assert.Equal(t, "Appellant Corp", *appeal.AppellantData.RealPartyInInterestName)
		assert.Equal(t, "Requestor", *appeal.RequestorData.ThirdPartyName)
		assert.Equal(t, "Decision", *appeal.DocumentData.DocumentTypeDescriptionText)
		assert.Equal(t, "Affirmed", *appeal.DecisionData.AppealOutcomeCategory)
		assert.Equal(t, NewDate(2022, time.February, 1), *appeal.AppealMetaData.AppealFilingDate)
	})

	t.Run("Interferences", func(t *testing.T) {
		resp, err := client.SearchPTABInterferenceDecisions(ctx, PTABInterferenceSearchOptions{
			InterferenceNumberQ:          "106123",
			SeniorPartyNameQ:             "Senior Party Inc.",
			JuniorPartyNameQ:             "Junior Party LLC",
			InterferenceOutcomeCategoryQ: "Priority to Senior Party",
			DecisionTypeCategoryQ:        "Final Decision",
			DecisionDateFromQ:            "2023-01-01",
			DecisionDateToQ:              "2023-12-31",
		})
		require.NoError(t, err)
		q := lastQuery(ptabInterferencesSearchPath)
		assert.Equal(t, "interferenceNumber:106123 AND seniorPartyName:Senior Party Inc. AND juniorPartyName:Junior Party LLC"+
			" AND interferenceOutcomeCategory:Priority to Senior Party AND decisionTypeCategory:Final Decision"+
			" AND decisionDate:[2023-01-01 TO 2023-12-31]", q.Get("q"))

		decision := resp.At(0)
		assert.Equal(t, "106123", *decision.InterferenceNumber)
		assert.Equal(t, "Senior v. Junior", *decision.InterferenceMetaData.InterferenceStyleName)
		assert.Equal(t, "Senior Party Inc.", *decision.SeniorPartyData.PatentOwnerName)
		assert.Equal(t, "J. Junior", *decision.JuniorPartyData.InventorName)
		require.Len(t, decision.AdditionalPartyDataBag, 1)
		assert.Equal(t, "Third Party", *decision.AdditionalPartyDataBag[0].AdditionalPartyName)
		require.NotNil(t, decision.DocumentData)
		assert.Equal(t, "Priority to Senior Party", *decision.DocumentData.InterferenceOutcomeCategory)
		assert.Equal(t, "https://example.test/decision.pdf", *decision.DocumentData.FileDownloadURI)
	})

	t.Run("ExplicitQueryWins", func(t *testing.T) {
		_, err := client.SearchPTABInterferenceDecisions(ctx, PTABInterferenceSearchOptions{
			PTABQuery:           PTABQuery{Query: "interferenceNumber:106123", Extra: map[string]string{"facets": "decisionTypeCategory"}},
			InterferenceNumberQ: "ignored",
		})
		require.NoError(t, err)
		q := lastQuery(ptabInterferencesSearchPath)
		assert.Equal(t, "interferenceNumber:106123", q.Get("q"))
		assert.Equal(t, "decisionTypeCategory", q.Get("facets"))
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		_, err := client.SearchPTABTrialProceedings(ctx, PTABProceedingSearchOptions{PTABQuery: PTABQuery{Limit: -1}})
		assert.ErrorIs(t, err, ErrInvalidPagination)
	})
}

func TestPTABSearchBody(t *testing.T) {
	var got map[string]any
	var method string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &got)
		writeJSON(w, http.StatusOK, ptabInterferencesBody)
	}))

	request := map[string]any{"q": "interferenceNumber:106123", "pagination": map[string]any{"offset": 0, "limit": 1}}
	resp, err := client.SearchPTABInterferenceDecisionsBody(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "interferenceNumber:106123", got["q"])
	assert.Equal(t, 1, resp.Len())

	_, err = resp.NextPage(context.Background())
	var pe *PaginationError
	assert.True(t, errors.As(err, &pe))
}

func TestPTABBaseURL(t *testing.T) {
	var hits int
	ptab := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/"+ptabProceedingsSearchPath, r.URL.Path)
		writeJSON(w, http.StatusOK, `{"count": 0}`)
	}))
	t.Cleanup(ptab.Close)

	client, err := NewClient(&Config{
		BaseURL:     "http://127.0.0.1:1",
		PTABBaseURL: ptab.URL + "/",
		MaxRetries:  -1,
	})
	require.NoError(t, err)

	_, err = client.SearchPTABTrialProceedings(context.Background(), PTABProceedingSearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	_, err = NewClient(&Config{PTABBaseURL: "ptab"})
	assert.Error(t, err)
}

func TestPaginatePTAB(t *testing.T) {
	const total = 5
	var mu sync.Mutex
	var offsets []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mu.Lock()
		offsets = append(offsets, q.Get("offset"))
		mu.Unlock()
		offset, _ := strconv.Atoi(q.Get("offset"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		var bag []map[string]any
		for i := offset; i < min(offset+limit, total); i++ {
			bag = append(bag, map[string]any{"trialNumber": "IPR2024-0000" + strconv.Itoa(i)})
		}
		body, _ := json.Marshal(map[string]any{"count": total, "patentTrialProceedingDataBag": bag})
		writeJSON(w, http.StatusOK, string(body))
	}))

	var numbers []string
	for trial, err := range client.PaginatePTABTrialProceedings(context.Background(), PTABProceedingSearchOptions{
		PTABQuery:      PTABQuery{Limit: 2},
		TrialTypeCodeQ: "IPR",
	}) {
		require.NoError(t, err)
		numbers = append(numbers, *trial.TrialNumber)
	}
	assert.Equal(t, []string{"IPR2024-00000", "IPR2024-00001", "IPR2024-00002", "IPR2024-00003", "IPR2024-00004"}, numbers)
	assert.Equal(t, []string{"0", "2", "4"}, offsets)

	page, err := client.SearchPTABTrialProceedings(context.Background(), PTABProceedingSearchOptions{PTABQuery: PTABQuery{Limit: 2}})
	require.NoError(t, err)
	next, err := page.NextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "IPR2024-00002", *next.At(0).TrialNumber)

	var calls int
	for _, err := range client.PaginatePTABInterferenceDecisions(context.Background(), PTABInterferenceSearchOptions{
		PTABQuery: PTABQuery{Offset: -1},
	}) {
		calls++
		assert.ErrorIs(t, err, ErrInvalidPagination)
	}
	assert.Equal(t, 1, calls)
}

func TestPTABRoundTrip(t *testing.T) {
	for name, tc := range map[string]struct {
		body   string
		decode func([]byte) (any, error)
	}{
		"Proceedings": {ptabProceedingsBody, func(b []byte) (any, error) {
			r, err := DecodePTABTrialProceedingsResponse(b)
			if err != nil {
				return nil, err
			}
			return []PTABTrialProceeding(r.Items), nil
		}},
		"Documents": {ptabDocumentsBody, func(b []byte) (any, error) {
			r, err := DecodePTABTrialDocumentsResponse(b)
			if err != nil {
				return nil, err
			}
			return []PTABTrialDocument(r.Items), nil
		}},
		"Interferences": {ptabInterferencesBody, func(b []byte) (any, error) {
			r, err := DecodePTABInterferenceDecisionsResponse(b)
			if err != nil {
				return nil, err
			}
			return []PTABInterferenceDecision(r.Items), nil
		}},
	} {
		t.Run(name, func(t *testing.T) {
			first, err := tc.decode([]byte(tc.body))
			require.NoError(t, err)
			encoded, err := json.Marshal(first)
			require.NoError(t, err)

			wrapped, err := json.Marshal(map[string]any{"count": 1, bagKeyOf(name): json.RawMessage(encoded)})
			require.NoError(t, err)
			again, err := tc.decode(wrapped)
			require.NoError(t, err)
			if diff := cmp.Diff(first, again); diff != "" {
				t.Errorf("round trip mismatch:\n%s", diff)
			}
		})
	}
}

func bagKeyOf(name string) string {
	switch name {
	case "Proceedings":
		return ptabProceedingBagKey
	case "Documents":
		return ptabDocumentBagKey
	}
	return ptabInterferenceBagKey
}

func TestPTABAliasesPreferCanonicalKey(t *testing.T) {
	var doc PTABDocumentData
	require.NoError(t, json.Unmarshal([]byte(`{"fileDownloadURI": "https://a", "downloadURI": "https://b"}`), &doc))
	assert.Equal(t, "https://a", *doc.FileDownloadURI)

	var appeal PTABAppealDecision
	require.NoError(t, json.Unmarshal([]byte(`{"appellantData": {"counselName": "A"}, "appelantData": {"counselName": "B"}}`), &appeal))
	assert.Equal(t, "A", *appeal.AppellantData.CounselName)

	var empty PTABTrialDocument
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Equal(t, PTABTrialDocument{}, empty)
}
