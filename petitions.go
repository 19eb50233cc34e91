package odp

import (
	"context"
	"iter"
)

const petitionDecisionsSearchPath = "api/v1/petition/decisions/search"

// PetitionDecision is a decision on a petition filed in an application.
type PetitionDecision struct {
	PetitionDecisionRecordIdentifier *string   `json:"petitionDecisionRecordIdentifier,omitempty"`
	ApplicationNumberText            *string   `json:"applicationNumberText,omitempty"`
	ActionTakenByCourtName           *string   `json:"actionTakenByCourtName,omitempty"`
	BusinessEntityStatusCategory     *string   `json:"businessEntityStatusCategory,omitempty"`
	CourtActionIndicator             *bool     `json:"courtActionIndicator,omitempty"`
	CustomerNumber                   *int      `json:"customerNumber,omitempty"`
	DecisionDate                     *Date     `json:"decisionDate,omitempty"`
	DecisionPetitionTypeCode         *int      `json:"decisionPetitionTypeCode,omitempty"`
	DecisionTypeCode                 *string   `json:"decisionTypeCode,omitempty"`
	DecisionTypeCodeDescriptionText  *string   `json:"decisionTypeCodeDescriptionText,omitempty"`
	FinalDecidingOfficeName          *string   `json:"finalDecidingOfficeName,omitempty"`
	FirstApplicantName               *string   `json:"firstApplicantName,omitempty"`
	FirstInventorToFileIndicator     *bool     `json:"firstInventorToFileIndicator,omitempty"`
	GroupArtUnitNumber               *string   `json:"groupArtUnitNumber,omitempty"`
	InventionTitle                   *string   `json:"inventionTitle,omitempty"`
	InventorBag                      []string  `json:"inventorBag,omitempty"`
	LastIngestionDateTime            *DateTime `json:"lastIngestionDateTime,omitempty"`
	PetitionIssueConsideredTextBag   []string  `json:"petitionIssueConsideredTextBag,omitempty"`
	PetitionMailDate                 *Date     `json:"petitionMailDate,omitempty"`
	RuleBag                          []string  `json:"ruleBag,omitempty"`
	TechnologyCenter                 *string   `json:"technologyCenter,omitempty"`
}

func (p *PetitionDecision) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PetitionDecision")
	if err != nil {
		return err
	}
	*p = PetitionDecision{
		PetitionDecisionRecordIdentifier: o.str("petitionDecisionRecordIdentifier"),
		ApplicationNumberText:            o.str("applicationNumberText"),
		ActionTakenByCourtName:           o.str("actionTakenByCourtName"),
		BusinessEntityStatusCategory:     o.str("businessEntityStatusCategory"),
		CourtActionIndicator:             o.boolean("courtActionIndicator"),
		CustomerNumber:                   o.integer("customerNumber"),
		DecisionDate:                     o.date("decisionDate"),
		DecisionPetitionTypeCode:         o.integer("decisionPetitionTypeCode"),
		DecisionTypeCode:                 o.str("decisionTypeCode"),
		DecisionTypeCodeDescriptionText:  o.str("decisionTypeCodeDescriptionText"),
		FinalDecidingOfficeName:          o.str("finalDecidingOfficeName"),
		FirstApplicantName:               o.str("firstApplicantName"),
		FirstInventorToFileIndicator:     o.boolean("firstInventorToFileIndicator"),
		GroupArtUnitNumber:               o.str("groupArtUnitNumber"),
		InventionTitle:                   o.str("inventionTitle"),
		InventorBag:                      o.strs("inventorBag"),
		LastIngestionDateTime:            o.datetime("lastIngestionDateTime"),
		PetitionIssueConsideredTextBag:   o.strs("petitionIssueConsideredTextBag"),
		PetitionMailDate:                 o.date("petitionMailDate"),
		RuleBag:                          o.strs("ruleBag"),
		TechnologyCenter:                 o.str("technologyCenter"),
	}
	return nil
}

// PetitionDecisionsResponse is a page of petition decisions.
type PetitionDecisionsResponse = Page[PetitionDecision]

const petitionDecisionBagKey = "petitionDecisionDataBag"

// DecodePetitionDecisionsResponse decodes a petition search payload. The result cannot page forward.
func DecodePetitionDecisionsResponse(data []byte) (*PetitionDecisionsResponse, error) {
	return decodePage[PetitionDecision](data, "PetitionDecisionsResponse", petitionDecisionBagKey)
}

// PetitionSearchOptions are the query parameters of SearchPetitionDecisions.
type PetitionSearchOptions struct {
	Query  string
	Sort   string
	Offset int
	Limit  int
	Facets *bool

	// Convenience clauses combined into Query when it is empty.
	ApplicationNumberQ string
	DecisionTypeQ      string
	TechnologyCenterQ  string
	DecisionDateFromQ  string
	DecisionDateToQ    string

	Extra map[string]string
}

func (o PetitionSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("applicationNumberText", o.ApplicationNumberQ)
	q.term("decisionTypeCodeDescriptionText", o.DecisionTypeQ)
	q.term("technologyCenter", o.TechnologyCenterQ)
	q.dateRange("decisionDate", o.DecisionDateFromQ, o.DecisionDateToQ)

	b := newParamBuilder()
	b.add("q", q.resolveQuery(o.Query))
	b.add("sort", o.Sort)
	b.add(paramOffset, o.Offset)
	b.add(paramLimit, o.Limit)
	b.add("facets", o.Facets)
	b.merge(o.Extra)
	return b.build()
}

// SearchPetitionDecisions searches final petition decisions.
func (c *Client) SearchPetitionDecisions(ctx context.Context, opts PetitionSearchOptions) (*PetitionDecisionsResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return c.searchPetitionDecisions(ctx, params)
}

func (c *Client) searchPetitionDecisions(ctx context.Context, params Params) (*PetitionDecisionsResponse, error) {
	endpoint, err := c.endpoint(petitionDecisionsSearchPath)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "SearchPetitionDecisions", endpoint, params)
	if err != nil {
		return nil, err
	}
	page, err := DecodePetitionDecisionsResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body).attach("SearchPetitionDecisions", params, c.searchPetitionDecisions), nil
}

// PaginatePetitionDecisions iterates over every decision matching opts.
// opts.Offset and opts.Limit set the starting point and page size.
func (c *Client) PaginatePetitionDecisions(ctx context.Context, opts PetitionSearchOptions) iter.Seq2[PetitionDecision, error] {
	params, err := opts.params()
	if err != nil {
		return failedSeq[PetitionDecision](err)
	}
	return Paginate(ctx, c.searchPetitionDecisions, params)
}

// failedSeq yields err once.
func failedSeq[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
