package odp

import (
	"context"
	"iter"
)

// PTAB search endpoints, resolved against Config.PTABBaseURL.
const (
	ptabProceedingsSearchPath   = "api/v1/ptab/trials/proceedings/search"
	ptabDocumentsSearchPath     = "api/v1/ptab/trials/documents/search"
	ptabDecisionsSearchPath     = "api/v1/ptab/trials/decisions/search"
	ptabAppealsSearchPath       = "api/v1/ptab/appeals/decisions/search"
	ptabInterferencesSearchPath = "api/v1/ptab/interferences/decisions/search"
)

const (
	ptabProceedingBagKey   = "patentTrialProceedingDataBag"
	ptabDocumentBagKey     = "patentTrialDocumentDataBag"
	ptabAppealBagKey       = "patentAppealDataBag"
	ptabInterferenceBagKey = "patentInterferenceDataBag"
)

// PTABParty is one party to a trial, appeal or interference. Each role fills
// a different subset of the fields.
type PTABParty struct {
	ApplicationNumberText   *string `json:"applicationNumberText,omitempty"`
	CounselName             *string `json:"counselName,omitempty"`
	GrantDate               *Date   `json:"grantDate,omitempty"`
	GroupArtUnitNumber      *string `json:"groupArtUnitNumber,omitempty"`
	InventorName            *string `json:"inventorName,omitempty"`
	PatentNumber            *string `json:"patentNumber,omitempty"`
	PatentOwnerName         *string `json:"patentOwnerName,omitempty"`
	PublicationDate         *Date   `json:"publicationDate,omitempty"`
	PublicationNumber       *string `json:"publicationNumber,omitempty"`
	RealPartyInInterestName *string `json:"realPartyInInterestName,omitempty"`
	TechnologyCenterNumber  *string `json:"technologyCenterNumber,omitempty"`

	// AdditionalPartyName is set on additional interference parties.
	AdditionalPartyName *string `json:"additionalPartyName,omitempty"`
}

func (p *PTABParty) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABParty")
	if err != nil {
		return err
	}
	*p = PTABParty{
		ApplicationNumberText:   o.str("applicationNumberText"),
		CounselName:             o.str("counselName"),
		GrantDate:               o.date("grantDate"),
		GroupArtUnitNumber:      o.str("groupArtUnitNumber"),
		InventorName:            o.str("inventorName"),
		PatentNumber:            o.str("patentNumber"),
		PatentOwnerName:         o.str("patentOwnerName"),
		PublicationDate:         o.date("publicationDate"),
		PublicationNumber:       o.str("publicationNumber"),
		RealPartyInInterestName: o.str("realPartyInInterestName"),
		TechnologyCenterNumber:  o.str("technologyCenterNumber"),
		AdditionalPartyName:     o.str("additionalPartyName"),
	}
	return nil
}

// PTABTrialMetaData is the status block of an IPR, PGR, CBM or derivation trial.
type PTABTrialMetaData struct {
	PetitionFilingDate        *Date     `json:"petitionFilingDate,omitempty"`
	AccordedFilingDate        *Date     `json:"accordedFilingDate,omitempty"`
	InstitutionDecisionDate   *Date     `json:"institutionDecisionDate,omitempty"`
	LatestDecisionDate        *Date     `json:"latestDecisionDate,omitempty"`
	TerminationDate           *Date     `json:"terminationDate,omitempty"`
	TrialLastModifiedDate     *Date     `json:"trialLastModifiedDate,omitempty"`
	TrialLastModifiedDateTime *DateTime `json:"trialLastModifiedDateTime,omitempty"`
	TrialStatusCategory       *string   `json:"trialStatusCategory,omitempty"`
	TrialTypeCode             *string   `json:"trialTypeCode,omitempty"`
	FileDownloadURI           *string   `json:"fileDownloadURI,omitempty"`
}

func (m *PTABTrialMetaData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABTrialMetaData")
	if err != nil {
		return err
	}
	*m = PTABTrialMetaData{
		PetitionFilingDate:        o.date("petitionFilingDate"),
		AccordedFilingDate:        o.date("accordedFilingDate"),
		InstitutionDecisionDate:   o.date("institutionDecisionDate"),
		LatestDecisionDate:        o.date("latestDecisionDate"),
		TerminationDate:           o.date("terminationDate"),
		TrialLastModifiedDate:     o.date("trialLastModifiedDate"),
		TrialLastModifiedDateTime: o.datetime("trialLastModifiedDateTime"),
		TrialStatusCategory:       o.str("trialStatusCategory"),
		TrialTypeCode:             o.str("trialTypeCode"),
		FileDownloadURI:           o.str("fileDownloadURI"),
	}
	return nil
}

// PTABTrialProceeding is one trial with its parties.
type PTABTrialProceeding struct {
	TrialNumber              *string            `json:"trialNumber,omitempty"`
	TrialRecordIdentifier    *string            `json:"trialRecordIdentifier,omitempty"`
	LastModifiedDateTime     *DateTime          `json:"lastModifiedDateTime,omitempty"`
	TrialMetaData            *PTABTrialMetaData `json:"trialMetaData,omitempty"`
	PatentOwnerData          *PTABParty         `json:"patentOwnerData,omitempty"`
	RegularPetitionerData    *PTABParty         `json:"regularPetitionerData,omitempty"`
	RespondentData           *PTABParty         `json:"respondentData,omitempty"`
	DerivationPetitionerData *PTABParty         `json:"derivationPetitionerData,omitempty"`
}

func (p *PTABTrialProceeding) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABTrialProceeding")
	if err != nil {
		return err
	}
	*p = PTABTrialProceeding{
		TrialNumber:              o.str("trialNumber"),
		TrialRecordIdentifier:    o.str("trialRecordIdentifier"),
		LastModifiedDateTime:     o.datetime("lastModifiedDateTime"),
		TrialMetaData:            one[PTABTrialMetaData](o, "trialMetaData"),
		PatentOwnerData:          one[PTABParty](o, "patentOwnerData"),
		RegularPetitionerData:    one[PTABParty](o, "regularPetitionerData"),
		RespondentData:           one[PTABParty](o, "respondentData"),
		DerivationPetitionerData: one[PTABParty](o, "derivationPetitionerData"),
	}
	return nil
}

// PTABDocumentData describes a document filed in a trial or appeal.
type PTABDocumentData struct {
	DocumentCategory            *string `json:"documentCategory,omitempty"`
	DocumentFilingDate          *Date   `json:"documentFilingDate,omitempty"`
	DocumentIdentifier          *string `json:"documentIdentifier,omitempty"`
	DocumentName                *string `json:"documentName,omitempty"`
	DocumentNumber              *string `json:"documentNumber,omitempty"`
	DocumentSizeQuantity        *int    `json:"documentSizeQuantity,omitempty"`
	DocumentOCRText             *string `json:"documentOCRText,omitempty"`
	DocumentTitleText           *string `json:"documentTitleText,omitempty"`
	DocumentTypeDescriptionText *string `json:"documentTypeDescriptionText,omitempty"`
	DocumentStatus              *string `json:"documentStatus,omitempty"`
	FilingPartyCategory         *string `json:"filingPartyCategory,omitempty"`
	MimeTypeIdentifier          *string `json:"mimeTypeIdentifier,omitempty"`
	FileDownloadURI             *string `json:"fileDownloadURI,omitempty"`
}

func (d *PTABDocumentData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABDocumentData")
	if err != nil {
		return err
	}
	*d = PTABDocumentData{
		DocumentCategory:            o.str("documentCategory"),
		DocumentFilingDate:          o.date("documentFilingDate"),
		DocumentIdentifier:          o.str("documentIdentifier"),
		DocumentName:                o.str("documentName"),
		DocumentNumber:              o.str("documentNumber"),
		DocumentSizeQuantity:        o.integer("documentSizeQuantity"),
		DocumentOCRText:             o.str("documentOCRText"),
		DocumentTitleText:           o.str("documentTitleText"),
		DocumentTypeDescriptionText: o.str(o.firstPresent("documentTypeDescriptionText", "documentTypeCategory")),
		DocumentStatus:              o.str("documentStatus"),
		FilingPartyCategory:         o.str("filingPartyCategory"),
		MimeTypeIdentifier:          o.str("mimeTypeIdentifier"),
		FileDownloadURI:             o.str(o.firstPresent("fileDownloadURI", "downloadURI")),
	}
	return nil
}

// PTABDecisionData is the outcome of a trial or appeal decision.
type PTABDecisionData struct {
	DecisionIssueDate     *Date    `json:"decisionIssueDate,omitempty"`
	DecisionTypeCategory  *string  `json:"decisionTypeCategory,omitempty"`
	TrialOutcomeCategory  *string  `json:"trialOutcomeCategory,omitempty"`
	AppealOutcomeCategory *string  `json:"appealOutcomeCategory,omitempty"`
	StatuteAndRuleBag     []string `json:"statuteAndRuleBag,omitempty"`
	IssueTypeBag          []string `json:"issueTypeBag,omitempty"`
}

func (d *PTABDecisionData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABDecisionData")
	if err != nil {
		return err
	}
	*d = PTABDecisionData{
		DecisionIssueDate:     o.date("decisionIssueDate"),
		DecisionTypeCategory:  o.str("decisionTypeCategory"),
		TrialOutcomeCategory:  o.str("trialOutcomeCategory"),
		AppealOutcomeCategory: o.str("appealOutcomeCategory"),
		StatuteAndRuleBag:     o.strs("statuteAndRuleBag"),
		IssueTypeBag:          o.strs("issueTypeBag"),
	}
	return nil
}

// PTABTrialDocument is a document filed in a trial, with the trial context.
type PTABTrialDocument struct {
	TrialDocumentCategory    *string            `json:"trialDocumentCategory,omitempty"`
	TrialNumber              *string            `json:"trialNumber,omitempty"`
	TrialTypeCode            *string            `json:"trialTypeCode,omitempty"`
	LastModifiedDateTime     *DateTime          `json:"lastModifiedDateTime,omitempty"`
	TrialMetaData            *PTABTrialMetaData `json:"trialMetaData,omitempty"`
	PatentOwnerData          *PTABParty         `json:"patentOwnerData,omitempty"`
	RegularPetitionerData    *PTABParty         `json:"regularPetitionerData,omitempty"`
	RespondentData           *PTABParty         `json:"respondentData,omitempty"`
	DerivationPetitionerData *PTABParty         `json:"derivationPetitionerData,omitempty"`
	DocumentData             *PTABDocumentData  `json:"documentData,omitempty"`
	DecisionData             *PTABDecisionData  `json:"decisionData,omitempty"`
}

// PTABTrialDecision is a trial document returned by the decisions search.
// Its DecisionData is normally set.
type PTABTrialDecision = PTABTrialDocument

func (d *PTABTrialDocument) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABTrialDocument")
	if err != nil {
		return err
	}
	*d = PTABTrialDocument{
		TrialDocumentCategory:    o.str("trialDocumentCategory"),
		TrialNumber:              o.str("trialNumber"),
		TrialTypeCode:            o.str("trialTypeCode"),
		LastModifiedDateTime:     o.datetime("lastModifiedDateTime"),
		TrialMetaData:            one[PTABTrialMetaData](o, "trialMetaData"),
		PatentOwnerData:          one[PTABParty](o, "patentOwnerData"),
		RegularPetitionerData:    one[PTABParty](o, "regularPetitionerData"),
		RespondentData:           one[PTABParty](o, "respondentData"),
		DerivationPetitionerData: one[PTABParty](o, "derivationPetitionerData"),
		DocumentData:             one[PTABDocumentData](o, "documentData"),
		DecisionData:             one[PTABDecisionData](o, "decisionData"),
	}
	return nil
}

// PTABAppealMetaData is the docket block of an ex parte appeal.
type PTABAppealMetaData struct {
	AppealFilingDate        *Date   `json:"appealFilingDate,omitempty"`
	AppealLastModifiedDate  *Date   `json:"appealLastModifiedDate,omitempty"`
	ApplicationTypeCategory *string `json:"applicationTypeCategory,omitempty"`
	DocketNoticeMailedDate  *Date   `json:"docketNoticeMailedDate,omitempty"`
	FileDownloadURI         *string `json:"fileDownloadURI,omitempty"`
}

func (m *PTABAppealMetaData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABAppealMetaData")
	if err != nil {
		return err
	}
	*m = PTABAppealMetaData{
		AppealFilingDate:        o.date("appealFilingDate"),
		AppealLastModifiedDate:  o.date("appealLastModifiedDate"),
		ApplicationTypeCategory: o.str("applicationTypeCategory"),
		DocketNoticeMailedDate:  o.date("docketNoticeMailedDate"),
		FileDownloadURI:         o.str("fileDownloadURI"),
	}
	return nil
}

// PTABRequestor is the third party that requested a reexamination appeal.
type PTABRequestor struct {
	ThirdPartyName *string `json:"thirdPartyName,omitempty"`
}

func (r *PTABRequestor) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABRequestor")
	if err != nil {
		return err
	}
	*r = PTABRequestor{ThirdPartyName: o.str("thirdPartyName")}
	return nil
}

// PTABAppealDecision is a decision on an ex parte appeal.
type PTABAppealDecision struct {
	AppealNumber           *string             `json:"appealNumber,omitempty"`
	AppealDocumentCategory *string             `json:"appealDocumentCategory,omitempty"`
	LastModifiedDateTime   *DateTime           `json:"lastModifiedDateTime,omitempty"`
	AppealMetaData         *PTABAppealMetaData `json:"appealMetaData,omitempty"`
	AppellantData          *PTABParty          `json:"appellantData,omitempty"`
	RequestorData          *PTABRequestor      `json:"requestorData,omitempty"`
	DocumentData           *PTABDocumentData   `json:"documentData,omitempty"`
	DecisionData           *PTABDecisionData   `json:"decisionData,omitempty"`
}

func (a *PTABAppealDecision) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABAppealDecision")
	if err != nil {
		return err
	}
	// Some payloads spell the appellant key "appelantData".
	*a = PTABAppealDecision{
		AppealNumber:           o.str("appealNumber"),
		AppealDocumentCategory: o.str("appealDocumentCategory"),
		LastModifiedDateTime:   o.datetime("lastModifiedDateTime"),
		AppealMetaData:         one[PTABAppealMetaData](o, "appealMetaData"),
		AppellantData:          one[PTABParty](o, o.firstPresent("appellantData", "appelantData")),
		RequestorData:          one[PTABRequestor](o, "requestorData"),
		DocumentData:           one[PTABDocumentData](o, "documentData"),
		DecisionData:           one[PTABDecisionData](o, "decisionData"),
	}
	return nil
}

// PTABInterferenceMetaData is the caption block of an interference.
type PTABInterferenceMetaData struct {
	InterferenceStyleName        *string `json:"interferenceStyleName,omitempty"`
	InterferenceLastModifiedDate *Date   `json:"interferenceLastModifiedDate,omitempty"`
	FileDownloadURI              *string `json:"fileDownloadURI,omitempty"`
}

func (m *PTABInterferenceMetaData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABInterferenceMetaData")
	if err != nil {
		return err
	}
	*m = PTABInterferenceMetaData{
		InterferenceStyleName:        o.str("interferenceStyleName"),
		InterferenceLastModifiedDate: o.date("interferenceLastModifiedDate"),
		FileDownloadURI:              o.str("fileDownloadURI"),
	}
	return nil
}

// PTABInterferenceDocument is the decision document of an interference.
type PTABInterferenceDocument struct {
	DocumentIdentifier          *string  `json:"documentIdentifier,omitempty"`
	DocumentName                *string  `json:"documentName,omitempty"`
	DocumentSizeQuantity        *int     `json:"documentSizeQuantity,omitempty"`
	DocumentOCRText             *string  `json:"documentOCRText,omitempty"`
	DocumentTitleText           *string  `json:"documentTitleText,omitempty"`
	InterferenceOutcomeCategory *string  `json:"interferenceOutcomeCategory,omitempty"`
	DecisionIssueDate           *Date    `json:"decisionIssueDate,omitempty"`
	DecisionTypeCategory        *string  `json:"decisionTypeCategory,omitempty"`
	StatuteAndRuleBag           []string `json:"statuteAndRuleBag,omitempty"`
	IssueTypeBag                []string `json:"issueTypeBag,omitempty"`
	FileDownloadURI             *string  `json:"fileDownloadURI,omitempty"`
}

func (d *PTABInterferenceDocument) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABInterferenceDocument")
	if err != nil {
		return err
	}
	*d = PTABInterferenceDocument{
		DocumentIdentifier:          o.str("documentIdentifier"),
		DocumentName:                o.str("documentName"),
		DocumentSizeQuantity:        o.integer("documentSizeQuantity"),
		DocumentOCRText:             o.str("documentOCRText"),
		DocumentTitleText:           o.str("documentTitleText"),
		InterferenceOutcomeCategory: o.str("interferenceOutcomeCategory"),
		DecisionIssueDate:           o.date("decisionIssueDate"),
		DecisionTypeCategory:        o.str("decisionTypeCategory"),
		StatuteAndRuleBag:           o.strs("statuteAndRuleBag"),
		IssueTypeBag:                o.strs("issueTypeBag"),
		FileDownloadURI:             o.str(o.firstPresent("fileDownloadURI", "downloadURI")),
	}
	return nil
}

// PTABInterferenceDecision is a decision in a patent interference.
type PTABInterferenceDecision struct {
	InterferenceNumber     *string                   `json:"interferenceNumber,omitempty"`
	LastModifiedDateTime   *DateTime                 `json:"lastModifiedDateTime,omitempty"`
	LastIngestionDateTime  *DateTime                 `json:"lastIngestionDateTime,omitempty"`
	InterferenceMetaData   *PTABInterferenceMetaData `json:"interferenceMetaData,omitempty"`
	SeniorPartyData        *PTABParty                `json:"seniorPartyData,omitempty"`
	JuniorPartyData        *PTABParty                `json:"juniorPartyData,omitempty"`
	AdditionalPartyDataBag []PTABParty               `json:"additionalPartyDataBag,omitempty"`
	DocumentData           *PTABInterferenceDocument `json:"documentData,omitempty"`
}

func (i *PTABInterferenceDecision) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PTABInterferenceDecision")
	if err != nil {
		return err
	}
	*i = PTABInterferenceDecision{
		InterferenceNumber:     o.str("interferenceNumber"),
		LastModifiedDateTime:   o.datetime("lastModifiedDateTime"),
		LastIngestionDateTime:  o.datetime("lastIngestionDateTime"),
		InterferenceMetaData:   one[PTABInterferenceMetaData](o, "interferenceMetaData"),
		SeniorPartyData:        one[PTABParty](o, "seniorPartyData"),
		JuniorPartyData:        one[PTABParty](o, "juniorPartyData"),
		AdditionalPartyDataBag: list[PTABParty](o, "additionalPartyDataBag"),
		DocumentData:           one[PTABInterferenceDocument](o, o.firstPresent("documentData", "decisionDocumentData")),
	}
	return nil
}

// Pages of PTAB search results.
type (
	PTABTrialProceedingsResponse      = Page[PTABTrialProceeding]
	PTABTrialDocumentsResponse        = Page[PTABTrialDocument]
	PTABAppealDecisionsResponse       = Page[PTABAppealDecision]
	PTABInterferenceDecisionsResponse = Page[PTABInterferenceDecision]
)

// DecodePTABTrialProceedingsResponse decodes a proceedings search payload. The result cannot page forward.
func DecodePTABTrialProceedingsResponse(data []byte) (*PTABTrialProceedingsResponse, error) {
	return decodePage[PTABTrialProceeding](data, "PTABTrialProceedingsResponse", ptabProceedingBagKey)
}

// DecodePTABTrialDocumentsResponse decodes a trial documents or trial decisions search payload.
func DecodePTABTrialDocumentsResponse(data []byte) (*PTABTrialDocumentsResponse, error) {
	return decodePage[PTABTrialDocument](data, "PTABTrialDocumentsResponse", ptabDocumentBagKey)
}

// DecodePTABAppealDecisionsResponse decodes an appeal decisions search payload.
func DecodePTABAppealDecisionsResponse(data []byte) (*PTABAppealDecisionsResponse, error) {
	return decodePage[PTABAppealDecision](data, "PTABAppealDecisionsResponse", ptabAppealBagKey)
}

// DecodePTABInterferenceDecisionsResponse decodes an interference decisions search payload.
func DecodePTABInterferenceDecisionsResponse(data []byte) (*PTABInterferenceDecisionsResponse, error) {
	return decodePage[PTABInterferenceDecision](data, "PTABInterferenceDecisionsResponse", ptabInterferenceBagKey)
}

// PTABQuery holds the parameters shared by every PTAB search.
type PTABQuery struct {
	Query        string
	Sort         string
	Offset       int
	Limit        int
	Facets       string
	Fields       string
	Filters      string
	RangeFilters string

	// Extra parameters are sent as given and win over the fields above.
	Extra map[string]string
}

// params combines q with the shared parameters. Query wins over q.
func (p PTABQuery) params(q *queryBuilder) (Params, error) {
	b := newParamBuilder()
	b.add("q", q.resolveQuery(p.Query))
	b.add("sort", p.Sort)
	b.add(paramOffset, p.Offset)
	b.add(paramLimit, p.Limit)
	b.add("facets", p.Facets)
	b.add("fields", p.Fields)
	b.add("filters", p.Filters)
	b.add("rangeFilters", p.RangeFilters)
	b.merge(p.Extra)
	return b.build()
}

// PTABProceedingSearchOptions are the query parameters of SearchPTABTrialProceedings.
type PTABProceedingSearchOptions struct {
	PTABQuery

	// Convenience clauses combined into Query when it is empty.
	TrialNumberQ            string
	PatentOwnerNameQ        string
	PetitionerPartyNameQ    string
	RespondentNameQ         string
	TrialTypeCodeQ          string
	TrialStatusCategoryQ    string
	PetitionFilingDateFromQ string
	PetitionFilingDateToQ   string
}

func (o PTABProceedingSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("trialNumber", o.TrialNumberQ)
	q.term("patentOwnerName", o.PatentOwnerNameQ)
	q.term("petitionerPartyName", o.PetitionerPartyNameQ)
	q.term("respondentName", o.RespondentNameQ)
	q.term("trialTypeCode", o.TrialTypeCodeQ)
	q.term("trialStatusCategory", o.TrialStatusCategoryQ)
	q.dateRange("petitionFilingDate", o.PetitionFilingDateFromQ, o.PetitionFilingDateToQ)
	return o.PTABQuery.params(&q)
}

// PTABDocumentSearchOptions are the query parameters of SearchPTABTrialDocuments.
type PTABDocumentSearchOptions struct {
	PTABQuery

	TrialNumberQ      string
	DocumentCategoryQ string
	DocumentTypeNameQ string
	FilingDateFromQ   string
	FilingDateToQ     string
}

func (o PTABDocumentSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("trialNumber", o.TrialNumberQ)
	q.term("documentCategory", o.DocumentCategoryQ)
	q.term("documentTypeName", o.DocumentTypeNameQ)
	q.dateRange("filingDate", o.FilingDateFromQ, o.FilingDateToQ)
	return o.PTABQuery.params(&q)
}

// PTABDecisionSearchOptions are the query parameters of SearchPTABTrialDecisions.
type PTABDecisionSearchOptions struct {
	PTABQuery

	TrialNumberQ          string
	DecisionTypeCategoryQ string
	DecisionDateFromQ     string
	DecisionDateToQ       string
}

func (o PTABDecisionSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("trialNumber", o.TrialNumberQ)
	q.term("decisionTypeCategory", o.DecisionTypeCategoryQ)
	q.dateRange("decisionDate", o.DecisionDateFromQ, o.DecisionDateToQ)
	return o.PTABQuery.params(&q)
}

// PTABAppealSearchOptions are the query parameters of SearchPTABAppealDecisions.
type PTABAppealSearchOptions struct {
	PTABQuery

	ApplicationTypeCategoryQ string
	DecisionTypeCategoryQ    string
	AppellantNameQ           string
	DecisionDateFromQ        string
	DecisionDateToQ          string
}

func (o PTABAppealSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("appealMetaData.applicationTypeCategory", o.ApplicationTypeCategoryQ)
	q.term("decisionData.decisionTypeCategory", o.DecisionTypeCategoryQ)
	q.term("appellantData.realPartyInInterestName", o.AppellantNameQ)
	q.dateRange("decisionData.decisionIssueDate", o.DecisionDateFromQ, o.DecisionDateToQ)
	return o.PTABQuery.params(&q)
}

// PTABInterferenceSearchOptions are the query parameters of SearchPTABInterferenceDecisions.
type PTABInterferenceSearchOptions struct {
	PTABQuery

	InterferenceNumberQ           string
	SeniorPartyApplicationNumberQ string
	JuniorPartyApplicationNumberQ string
	SeniorPartyNameQ              string
	JuniorPartyNameQ              string
	InterferenceOutcomeCategoryQ  string
	DecisionTypeCategoryQ         string
	DecisionDateFromQ             string
	DecisionDateToQ               string
}

func (o PTABInterferenceSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("interferenceNumber", o.InterferenceNumberQ)
	q.term("seniorPartyApplicationNumber", o.SeniorPartyApplicationNumberQ)
	q.term("juniorPartyApplicationNumber", o.JuniorPartyApplicationNumberQ)
	q.term("seniorPartyName", o.SeniorPartyNameQ)
	q.term("juniorPartyName", o.JuniorPartyNameQ)
	q.term("interferenceOutcomeCategory", o.InterferenceOutcomeCategoryQ)
	q.term("decisionTypeCategory", o.DecisionTypeCategoryQ)
	q.dateRange("decisionDate", o.DecisionDateFromQ, o.DecisionDateToQ)
	return o.PTABQuery.params(&q)
}

// ptabResource is one PTAB search endpoint and the envelope it returns.
type ptabResource struct {
	op       string
	path     string
	typeName string
	bagKey   string
}

var (
	ptabProceedings   = ptabResource{"SearchPTABTrialProceedings", ptabProceedingsSearchPath, "PTABTrialProceedingsResponse", ptabProceedingBagKey}
	ptabDocuments     = ptabResource{"SearchPTABTrialDocuments", ptabDocumentsSearchPath, "PTABTrialDocumentsResponse", ptabDocumentBagKey}
	ptabDecisions     = ptabResource{"SearchPTABTrialDecisions", ptabDecisionsSearchPath, "PTABTrialDocumentsResponse", ptabDocumentBagKey}
	ptabAppeals       = ptabResource{"SearchPTABAppealDecisions", ptabAppealsSearchPath, "PTABAppealDecisionsResponse", ptabAppealBagKey}
	ptabInterferences = ptabResource{"SearchPTABInterferenceDecisions", ptabInterferencesSearchPath, "PTABInterferenceDecisionsResponse", ptabInterferenceBagKey}
)

// ptabSearch returns the GET fetcher for r. Its pages carry the fetcher so NextPage works.
func ptabSearch[T any, P recordPtr[T]](c *Client, r ptabResource) PageFunc[T] {
	var fetch PageFunc[T]
	fetch = func(ctx context.Context, params Params) (*Page[T], error) {
		endpoint, err := c.ptabEndpoint(r.path)
		if err != nil {
			return nil, err
		}
		body, err := c.get(ctx, r.op, endpoint, params)
		if err != nil {
			return nil, err
		}
		page, err := decodePage[T, P](body, r.typeName, r.bagKey)
		if err != nil {
			return nil, err
		}
		return keepRaw(c, page, body).attach(r.op, params, fetch), nil
	}
	return fetch
}

// ptabSearchBody POSTs request to r. The result cannot page forward.
func ptabSearchBody[T any, P recordPtr[T]](ctx context.Context, c *Client, r ptabResource, request any) (*Page[T], error) {
	endpoint, err := c.ptabEndpoint(r.path)
	if err != nil {
		return nil, err
	}
	body, err := c.post(ctx, r.op+"Body", endpoint, request)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[T, P](body, r.typeName, r.bagKey)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body), nil
}

// ptabPaginate iterates over every record r returns for params.
func ptabPaginate[T any, P recordPtr[T]](ctx context.Context, c *Client, r ptabResource, params Params, err error) iter.Seq2[T, error] {
	if err != nil {
		return failedSeq[T](err)
	}
	return Paginate(ctx, ptabSearch[T, P](c, r), params)
}

// SearchPTABTrialProceedings searches IPR, PGR, CBM and derivation trials.
func (c *Client) SearchPTABTrialProceedings(ctx context.Context, opts PTABProceedingSearchOptions) (*PTABTrialProceedingsResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return ptabSearch[PTABTrialProceeding](c, ptabProceedings)(ctx, params)
}

// SearchPTABTrialProceedingsBody searches trials with a JSON request body.
func (c *Client) SearchPTABTrialProceedingsBody(ctx context.Context, request any) (*PTABTrialProceedingsResponse, error) {
	return ptabSearchBody[PTABTrialProceeding](ctx, c, ptabProceedings, request)
}

// PaginatePTABTrialProceedings iterates over every trial matching opts.
func (c *Client) PaginatePTABTrialProceedings(ctx context.Context, opts PTABProceedingSearchOptions) iter.Seq2[PTABTrialProceeding, error] {
	params, err := opts.params()
	return ptabPaginate[PTABTrialProceeding](ctx, c, ptabProceedings, params, err)
}

// SearchPTABTrialDocuments searches documents filed in trials.
func (c *Client) SearchPTABTrialDocuments(ctx context.Context, opts PTABDocumentSearchOptions) (*PTABTrialDocumentsResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return ptabSearch[PTABTrialDocument](c, ptabDocuments)(ctx, params)
}

// SearchPTABTrialDocumentsBody searches trial documents with a JSON request body.
func (c *Client) SearchPTABTrialDocumentsBody(ctx context.Context, request any) (*PTABTrialDocumentsResponse, error) {
	return ptabSearchBody[PTABTrialDocument](ctx, c, ptabDocuments, request)
}

// PaginatePTABTrialDocuments iterates over every trial document matching opts.
func (c *Client) PaginatePTABTrialDocuments(ctx context.Context, opts PTABDocumentSearchOptions) iter.Seq2[PTABTrialDocument, error] {
	params, err := opts.params()
	return ptabPaginate[PTABTrialDocument](ctx, c, ptabDocuments, params, err)
}

// SearchPTABTrialDecisions searches institution and final written decisions.
func (c *Client) SearchPTABTrialDecisions(ctx context.Context, opts PTABDecisionSearchOptions) (*PTABTrialDocumentsResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return ptabSearch[PTABTrialDecision](c, ptabDecisions)(ctx, params)
}

// SearchPTABTrialDecisionsBody searches trial decisions with a JSON request body.
func (c *Client) SearchPTABTrialDecisionsBody(ctx context.Context, request any) (*PTABTrialDocumentsResponse, error) {
	return ptabSearchBody[PTABTrialDecision](ctx, c, ptabDecisions, request)
}

// PaginatePTABTrialDecisions iterates over every trial decision matching opts.
func (c *Client) PaginatePTABTrialDecisions(ctx context.Context, opts PTABDecisionSearchOptions) iter.Seq2[PTABTrialDecision, error] {
	params, err := opts.params()
	return ptabPaginate[PTABTrialDecision](ctx, c, ptabDecisions, params, err)
}

// SearchPTABAppealDecisions searches ex parte appeal decisions.
func (c *Client) SearchPTABAppealDecisions(ctx context.Context, opts PTABAppealSearchOptions) (*PTABAppealDecisionsResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return ptabSearch[PTABAppealDecision](c, ptabAppeals)(ctx, params)
}

// SearchPTABAppealDecisionsBody searches appeal decisions with a JSON request body.
func (c *Client) SearchPTABAppealDecisionsBody(ctx context.Context, request any) (*PTABAppealDecisionsResponse, error) {
	return ptabSearchBody[PTABAppealDecision](ctx, c, ptabAppeals, request)
}

// PaginatePTABAppealDecisions iterates over every appeal decision matching opts.
func (c *Client) PaginatePTABAppealDecisions(ctx context.Context, opts PTABAppealSearchOptions) iter.Seq2[PTABAppealDecision, error] {
	params, err := opts.params()
	return ptabPaginate[PTABAppealDecision](ctx, c, ptabAppeals, params, err)
}

// SearchPTABInterferenceDecisions searches decisions in patent interferences.
func (c *Client) SearchPTABInterferenceDecisions(ctx context.Context, opts PTABInterferenceSearchOptions) (*PTABInterferenceDecisionsResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return ptabSearch[PTABInterferenceDecision](c, ptabInterferences)(ctx, params)
}

// SearchPTABInterferenceDecisionsBody searches interference decisions with a JSON request body.
func (c *Client) SearchPTABInterferenceDecisionsBody(ctx context.Context, request any) (*PTABInterferenceDecisionsResponse, error) {
	return ptabSearchBody[PTABInterferenceDecision](ctx, c, ptabInterferences, request)
}

// PaginatePTABInterferenceDecisions iterates over every interference decision matching opts.
func (c *Client) PaginatePTABInterferenceDecisions(ctx context.Context, opts PTABInterferenceSearchOptions) iter.Seq2[PTABInterferenceDecision, error] {
	params, err := opts.params()
	return ptabPaginate[PTABInterferenceDecision](ctx, c, ptabInterferences, params, err)
}
