package odp

import (
	"context"
	"errors"
	"iter"
)

const (
	applicationsSearchPath   = "api/v1/patent/applications/search"
	applicationsDownloadPath = "api/v1/patent/applications/search/download"
	applicationPath          = "api/v1/patent/applications/%s"
)

// ApplicationSearchOptions are the query parameters of SearchApplications and GetSearchResults.
type ApplicationSearchOptions struct {
	Query        string
	Sort         string
	Offset       int
	Limit        int
	Facets       string
	Fields       string
	Filters      string
	RangeFilters string

	// Convenience clauses combined into Query when it is empty.
	ApplicationNumberQ         string
	PatentNumberQ              string
	InventorNameQ              string
	ApplicantNameQ             string
	AssigneeNameQ              string
	ClassificationQ            string
	EarliestPublicationNumberQ string
	PCTPublicationNumberQ      string
	FilingDateFromQ            string
	FilingDateToQ              string
	GrantDateFromQ             string
	GrantDateToQ               string

	// Extra parameters are sent as given and win over the fields above.
	Extra map[string]string
}

func (o ApplicationSearchOptions) query() string {
	var q queryBuilder
	q.term("applicationNumberText", o.ApplicationNumberQ)
	q.term("applicationMetaData.patentNumber", o.PatentNumberQ)
	q.term("applicationMetaData.inventorBag.inventorNameText", o.InventorNameQ)
	q.term("applicationMetaData.firstApplicantName", o.ApplicantNameQ)
	q.term("assignmentBag.assigneeBag.assigneeNameText", o.AssigneeNameQ)
	q.term("applicationMetaData.cpcClassificationBag", o.ClassificationQ)
	q.term("applicationMetaData.earliestPublicationNumber", o.EarliestPublicationNumberQ)
	q.term("applicationMetaData.pctPublicationNumber", o.PCTPublicationNumberQ)
	q.dateRange("applicationMetaData.filingDate", o.FilingDateFromQ, o.FilingDateToQ)
	q.dateRange("applicationMetaData.grantDate", o.GrantDateFromQ, o.GrantDateToQ)
	return q.resolveQuery(o.Query)
}

func (o ApplicationSearchOptions) params() (Params, error) {
	b := newParamBuilder()
	b.add("q", o.query())
	b.add("sort", o.Sort)
	b.add(paramOffset, o.Offset)
	b.add(paramLimit, o.Limit)
	b.add("facets", o.Facets)
	b.add("fields", o.Fields)
	b.add("filters", o.Filters)
	b.add("rangeFilters", o.RangeFilters)
	b.merge(o.Extra)
	return b.build()
}

// SearchApplications searches patent applications.
func (c *Client) SearchApplications(ctx context.Context, opts ApplicationSearchOptions) (*PatentDataResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return c.searchApplications(ctx, params)
}

func (c *Client) searchApplications(ctx context.Context, params Params) (*PatentDataResponse, error) {
	endpoint, err := c.endpoint(applicationsSearchPath)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "SearchApplications", endpoint, params)
	if err != nil {
		return nil, err
	}
	page, err := DecodePatentDataResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body).attach("SearchApplications", params, c.searchApplications), nil
}

// SearchApplicationsBody searches patent applications with a JSON request
// body. The response cannot be paged with NextPage.
func (c *Client) SearchApplicationsBody(ctx context.Context, request any) (*PatentDataResponse, error) {
	endpoint, err := c.endpoint(applicationsSearchPath)
	if err != nil {
		return nil, err
	}
	body, err := c.post(ctx, "SearchApplicationsBody", endpoint, request)
	if err != nil {
		return nil, err
	}
	page, err := DecodePatentDataResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body), nil
}

// GetSearchResults fetches a search result set from the download endpoint, always as JSON.
func (c *Client) GetSearchResults(ctx context.Context, opts ApplicationSearchOptions) (*PatentDataResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	if _, ok := params["format"]; !ok {
		params["format"] = "json"
	}
	endpoint, err := c.endpoint(applicationsDownloadPath)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "GetSearchResults", endpoint, params)
	if err != nil {
		return nil, err
	}
	page, err := DecodePatentDataResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body), nil
}

// PaginateApplications iterates over every application matching opts.
func (c *Client) PaginateApplications(ctx context.Context, opts ApplicationSearchOptions) iter.Seq2[PatentFileWrapper, error] {
	params, err := opts.params()
	if err != nil {
		return failedSeq[PatentFileWrapper](err)
	}
	return Paginate(ctx, c.searchApplications, params)
}

// application fetches the file wrapper behind one of the per-application
// endpoints. An empty response is a *NotFoundError; a wrapper for another
// application is returned and logged as a data mismatch.
func (c *Client) application(ctx context.Context, op, section, number string) (*PatentFileWrapper, error) {
	endpoint, err := c.endpoint(applicationPath+section, number)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, op, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := DecodePatentDataResponse(body)
	if err != nil {
		return nil, err
	}
	if resp.Len() == 0 {
		return nil, &NotFoundError{Resource: "application", ID: number}
	}

	wrapper := resp.At(0)
	c.checkIdentifier("application", number, wrapper.ApplicationNumber())
	return &wrapper, nil
}

// GetApplication returns the complete file wrapper of an application.
func (c *Client) GetApplication(ctx context.Context, applicationNumber string) (*PatentFileWrapper, error) {
	return c.application(ctx, "GetApplication", "", applicationNumber)
}

// GetApplicationMetadata returns the bibliographic metadata of an application,
// or nil when the API sent none.
func (c *Client) GetApplicationMetadata(ctx context.Context, applicationNumber string) (*ApplicationMetaData, error) {
	w, err := c.application(ctx, "GetApplicationMetadata", "/meta-data", applicationNumber)
	if err != nil {
		return nil, err
	}
	return w.ApplicationMetaData, nil
}

// GetApplicationAdjustment returns the patent term adjustment data, or nil when the API sent none.
func (c *Client) GetApplicationAdjustment(ctx context.Context, applicationNumber string) (*PatentTermAdjustmentData, error) {
	w, err := c.application(ctx, "GetApplicationAdjustment", "/adjustment", applicationNumber)
	if err != nil {
		return nil, err
	}
	return w.PatentTermAdjustmentData, nil
}

// GetApplicationAssignments returns the recorded assignments.
func (c *Client) GetApplicationAssignments(ctx context.Context, applicationNumber string) ([]Assignment, error) {
	w, err := c.application(ctx, "GetApplicationAssignments", "/assignment", applicationNumber)
	if err != nil {
		return nil, err
	}
	return w.AssignmentBag, nil
}

// GetApplicationAttorney returns the attorney/agent data of record, or nil when the API sent none.
func (c *Client) GetApplicationAttorney(ctx context.Context, applicationNumber string) (*RecordAttorney, error) {
	w, err := c.application(ctx, "GetApplicationAttorney", "/attorney", applicationNumber)
	if err != nil {
		return nil, err
	}
	return w.RecordAttorney, nil
}

// GetApplicationContinuity returns the parent and child continuity.
func (c *Client) GetApplicationContinuity(ctx context.Context, applicationNumber string) (*ApplicationContinuityData, error) {
	w, err := c.application(ctx, "GetApplicationContinuity", "/continuity", applicationNumber)
	if err != nil {
		return nil, err
	}
	cont := w.Continuity()
	return &cont, nil
}

// GetApplicationForeignPriority returns the foreign priority claims.
func (c *Client) GetApplicationForeignPriority(ctx context.Context, applicationNumber string) ([]ForeignPriority, error) {
	w, err := c.application(ctx, "GetApplicationForeignPriority", "/foreign-priority", applicationNumber)
	if err != nil {
		return nil, err
	}
	return w.ForeignPriorityBag, nil
}

// GetApplicationTransactions returns the prosecution history events.
func (c *Client) GetApplicationTransactions(ctx context.Context, applicationNumber string) ([]EventData, error) {
	w, err := c.application(ctx, "GetApplicationTransactions", "/transactions", applicationNumber)
	if err != nil {
		return nil, err
	}
	return w.EventDataBag, nil
}

// GetApplicationAssociatedDocuments returns the publication and grant full-text locations.
func (c *Client) GetApplicationAssociatedDocuments(ctx context.Context, applicationNumber string) (*PrintedPublication, error) {
	w, err := c.application(ctx, "GetApplicationAssociatedDocuments", "/associated-documents", applicationNumber)
	if err != nil {
		return nil, err
	}
	pub := w.PrintedPublication()
	return &pub, nil
}

// GetApplicationDocuments lists the documents of an application's file
// wrapper. An application without documents gives an empty bag.
func (c *Client) GetApplicationDocuments(ctx context.Context, applicationNumber string) (*DocumentBag, error) {
	endpoint, err := c.endpoint(applicationPath+"/documents", applicationNumber)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "GetApplicationDocuments", endpoint, nil)
	if err != nil {
		return nil, err
	}
	return DecodeDocumentBag(body)
}

// IFWLookup identifies an application by any of its numbers. The fields are
// tried in declaration order and the first match wins.
type IFWLookup struct {
	ApplicationNumber    string
	PatentNumber         string
	PublicationNumber    string
	PCTApplicationNumber string
	PCTPublicationNumber string
}

// GetIFWMetadata returns the file wrapper matching lookup. Application
// numbers are fetched directly; the other numbers go through a one-record search.
func (c *Client) GetIFWMetadata(ctx context.Context, lookup IFWLookup) (*PatentFileWrapper, error) {
	if lookup == (IFWLookup{}) {
		return nil, errors.New("ifw lookup: no identifier given")
	}
	if lookup.ApplicationNumber != "" {
		return c.GetApplication(ctx, lookup.ApplicationNumber)
	}

	searches := []struct {
		id     string
		direct bool
		opts   ApplicationSearchOptions
	}{
		{id: lookup.PatentNumber, opts: ApplicationSearchOptions{PatentNumberQ: lookup.PatentNumber}},
		{id: lookup.PublicationNumber, opts: ApplicationSearchOptions{EarliestPublicationNumberQ: lookup.PublicationNumber}},
		{id: lookup.PCTApplicationNumber, direct: true},
		{id: lookup.PCTPublicationNumber, opts: ApplicationSearchOptions{PCTPublicationNumberQ: lookup.PCTPublicationNumber}},
	}
	var last string
	for _, s := range searches {
		if s.id == "" {
			continue
		}
		last = s.id
		if s.direct {
			return c.GetApplication(ctx, s.id)
		}
		s.opts.Limit = 1
		resp, err := c.SearchApplications(ctx, s.opts)
		if err != nil {
			return nil, err
		}
		if resp.Len() > 0 {
			w := resp.At(0)
			return &w, nil
		}
	}
	return nil, &NotFoundError{Resource: "application", ID: last}
}
