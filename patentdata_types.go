package odp

import "github.com/goccy/go-json"

// Address is a postal address as used throughout the file wrapper.
type Address struct {
	NameLineOneText       *string `json:"nameLineOneText,omitempty"`
	NameLineTwoText       *string `json:"nameLineTwoText,omitempty"`
	AddressLineOneText    *string `json:"addressLineOneText,omitempty"`
	AddressLineTwoText    *string `json:"addressLineTwoText,omitempty"`
	AddressLineThreeText  *string `json:"addressLineThreeText,omitempty"`
	AddressLineFourText   *string `json:"addressLineFourText,omitempty"`
	GeographicRegionName  *string `json:"geographicRegionName,omitempty"`
	GeographicRegionCode  *string `json:"geographicRegionCode,omitempty"`
	PostalCode            *string `json:"postalCode,omitempty"`
	CityName              *string `json:"cityName,omitempty"`
	CountryCode           *string `json:"countryCode,omitempty"`
	CountryName           *string `json:"countryName,omitempty"`
	PostalAddressCategory *string `json:"postalAddressCategory,omitempty"`
	CorrespondentNameText *string `json:"correspondentNameText,omitempty"`
}

func (a *Address) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Address")
	if err != nil {
		return err
	}
	*a = Address{
		NameLineOneText:       o.str("nameLineOneText"),
		NameLineTwoText:       o.str("nameLineTwoText"),
		AddressLineOneText:    o.str("addressLineOneText"),
		AddressLineTwoText:    o.str("addressLineTwoText"),
		AddressLineThreeText:  o.str("addressLineThreeText"),
		AddressLineFourText:   o.str("addressLineFourText"),
		GeographicRegionName:  o.str("geographicRegionName"),
		GeographicRegionCode:  o.str("geographicRegionCode"),
		PostalCode:            o.str("postalCode"),
		CityName:              o.str("cityName"),
		CountryCode:           o.str("countryCode"),
		CountryName:           o.str("countryName"),
		PostalAddressCategory: o.str("postalAddressCategory"),
		CorrespondentNameText: o.str("correspondentNameText"),
	}
	return nil
}

// Telecommunication is a phone or fax number.
type Telecommunication struct {
	TelecommunicationNumber *string `json:"telecommunicationNumber,omitempty"`
	ExtensionNumber         *string `json:"extensionNumber,omitempty"`
	TelecomTypeCode         *string `json:"telecomTypeCode,omitempty"`
}

func (t *Telecommunication) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Telecommunication")
	if err != nil {
		return err
	}
	*t = Telecommunication{
		TelecommunicationNumber: o.str("telecommunicationNumber"),
		ExtensionNumber:         o.str("extensionNumber"),
		TelecomTypeCode:         o.str("telecomTypeCode"),
	}
	return nil
}

// Person holds the name fields shared by applicants, inventors and attorneys.
type Person struct {
	FirstName     *string `json:"firstName,omitempty"`
	MiddleName    *string `json:"middleName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	NamePrefix    *string `json:"namePrefix,omitempty"`
	NameSuffix    *string `json:"nameSuffix,omitempty"`
	PreferredName *string `json:"preferredName,omitempty"`
	CountryCode   *string `json:"countryCode,omitempty"`
}

func decodePerson(o wireObject) Person {
	return Person{
		FirstName:     o.str("firstName"),
		MiddleName:    o.str("middleName"),
		LastName:      o.str("lastName"),
		NamePrefix:    o.str("namePrefix"),
		NameSuffix:    o.str("nameSuffix"),
		PreferredName: o.str("preferredName"),
		CountryCode:   o.str("countryCode"),
	}
}

// Applicant is a patent applicant.
type Applicant struct {
	Person
	ApplicantNameText        *string   `json:"applicantNameText,omitempty"`
	CorrespondenceAddressBag []Address `json:"correspondenceAddressBag,omitempty"`
}

func (a *Applicant) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Applicant")
	if err != nil {
		return err
	}
	*a = Applicant{
		Person:                   decodePerson(o),
		ApplicantNameText:        o.str("applicantNameText"),
		CorrespondenceAddressBag: list[Address](o, "correspondenceAddressBag"),
	}
	return nil
}

// Inventor is a named inventor.
type Inventor struct {
	Person
	InventorNameText         *string   `json:"inventorNameText,omitempty"`
	CorrespondenceAddressBag []Address `json:"correspondenceAddressBag,omitempty"`
}

func (i *Inventor) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Inventor")
	if err != nil {
		return err
	}
	*i = Inventor{
		Person:                   decodePerson(o),
		InventorNameText:         o.str("inventorNameText"),
		CorrespondenceAddressBag: list[Address](o, "correspondenceAddressBag"),
	}
	return nil
}

// Attorney is a registered practitioner of record.
type Attorney struct {
	Person
	RegistrationNumber             *string             `json:"registrationNumber,omitempty"`
	ActiveIndicator                *string             `json:"activeIndicator,omitempty"`
	RegisteredPractitionerCategory *string             `json:"registeredPractitionerCategory,omitempty"`
	AttorneyAddressBag             []Address           `json:"attorneyAddressBag,omitempty"`
	TelecommunicationAddressBag    []Telecommunication `json:"telecommunicationAddressBag,omitempty"`
}

// Active resolves ActiveIndicator. Absent input gives "".
func (a Attorney) Active() ActiveIndicator {
	if a.ActiveIndicator == nil {
		return ""
	}
	return ParseActiveIndicator(*a.ActiveIndicator)
}

func (a *Attorney) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Attorney")
	if err != nil {
		return err
	}
	*a = Attorney{
		Person:                         decodePerson(o),
		RegistrationNumber:             o.str("registrationNumber"),
		ActiveIndicator:                o.str("activeIndicator"),
		RegisteredPractitionerCategory: o.str("registeredPractitionerCategory"),
		AttorneyAddressBag:             list[Address](o, "attorneyAddressBag"),
		TelecommunicationAddressBag:    list[Telecommunication](o, "telecommunicationAddressBag"),
	}
	if a.ActiveIndicator != nil {
		warnUnknownEnum(a.Active(), ActiveUnknown, "activeIndicator", *a.ActiveIndicator,
			"registrationNumber", deref(a.RegistrationNumber))
	}
	return nil
}

// EntityStatus is the fee entity status of an application.
type EntityStatus struct {
	SmallEntityStatusIndicator   *bool   `json:"smallEntityStatusIndicator,omitempty"`
	BusinessEntityStatusCategory *string `json:"businessEntityStatusCategory,omitempty"`
}

func (e *EntityStatus) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "EntityStatus")
	if err != nil {
		return err
	}
	*e = EntityStatus{
		SmallEntityStatusIndicator:   o.boolean("smallEntityStatusIndicator"),
		BusinessEntityStatusCategory: o.str("businessEntityStatusCategory"),
	}
	return nil
}

// CustomerNumberCorrespondence is the correspondence data behind a customer number.
type CustomerNumberCorrespondence struct {
	PatronIdentifier            *int                `json:"patronIdentifier,omitempty"`
	OrganizationStandardName    *string             `json:"organizationStandardName,omitempty"`
	PowerOfAttorneyAddressBag   []Address           `json:"powerOfAttorneyAddressBag,omitempty"`
	TelecommunicationAddressBag []Telecommunication `json:"telecommunicationAddressBag,omitempty"`
}

func (c *CustomerNumberCorrespondence) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "CustomerNumberCorrespondence")
	if err != nil {
		return err
	}
	*c = CustomerNumberCorrespondence{
		PatronIdentifier:            o.integer("patronIdentifier"),
		OrganizationStandardName:    o.str("organizationStandardName"),
		PowerOfAttorneyAddressBag:   list[Address](o, "powerOfAttorneyAddressBag"),
		TelecommunicationAddressBag: list[Telecommunication](o, "telecommunicationAddressBag"),
	}
	return nil
}

// RecordAttorney is the attorney/agent data of record.
type RecordAttorney struct {
	CustomerNumberCorrespondenceData []CustomerNumberCorrespondence `json:"customerNumberCorrespondenceData,omitempty"`
	PowerOfAttorneyBag               []Attorney                     `json:"powerOfAttorneyBag,omitempty"`
	AttorneyBag                      []Attorney                     `json:"attorneyBag,omitempty"`
}

func (r *RecordAttorney) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "RecordAttorney")
	if err != nil {
		return err
	}
	*r = RecordAttorney{
		CustomerNumberCorrespondenceData: list[CustomerNumberCorrespondence](o, "customerNumberCorrespondenceData"),
		PowerOfAttorneyBag:               list[Attorney](o, "powerOfAttorneyBag"),
		AttorneyBag:                      list[Attorney](o, "attorneyBag"),
	}
	return nil
}

// Assignor is a party conveying rights in an assignment.
type Assignor struct {
	AssignorName  *string `json:"assignorName,omitempty"`
	ExecutionDate *Date   `json:"executionDate,omitempty"`
}

func (a *Assignor) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Assignor")
	if err != nil {
		return err
	}
	*a = Assignor{
		AssignorName:  o.str("assignorName"),
		ExecutionDate: o.date("executionDate"),
	}
	return nil
}

// Assignee is a party receiving rights in an assignment.
type Assignee struct {
	AssigneeNameText *string  `json:"assigneeNameText,omitempty"`
	AssigneeAddress  *Address `json:"assigneeAddress,omitempty"`
}

func (a *Assignee) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Assignee")
	if err != nil {
		return err
	}
	*a = Assignee{
		AssigneeNameText: o.str("assigneeNameText"),
		AssigneeAddress:  one[Address](o, "assigneeAddress"),
	}
	return nil
}

// Assignment is a recorded assignment of an application.
type Assignment struct {
	ReelNumber                    *string    `json:"reelNumber,omitempty"`
	FrameNumber                   *string    `json:"frameNumber,omitempty"`
	ReelAndFrameNumber            *string    `json:"reelAndFrameNumber,omitempty"`
	AssignmentDocumentLocationURI *string    `json:"assignmentDocumentLocationURI,omitempty"`
	AssignmentReceivedDate        *Date      `json:"assignmentReceivedDate,omitempty"`
	AssignmentRecordedDate        *Date      `json:"assignmentRecordedDate,omitempty"`
	AssignmentMailedDate          *Date      `json:"assignmentMailedDate,omitempty"`
	ConveyanceText                *string    `json:"conveyanceText,omitempty"`
	AssignorBag                   []Assignor `json:"assignorBag,omitempty"`
	AssigneeBag                   []Assignee `json:"assigneeBag,omitempty"`
	CorrespondenceAddressBag      []Address  `json:"correspondenceAddressBag,omitempty"`
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Assignment")
	if err != nil {
		return err
	}
	*a = Assignment{
		ReelNumber:                    o.str("reelNumber"),
		FrameNumber:                   o.str("frameNumber"),
		ReelAndFrameNumber:            o.str("reelAndFrameNumber"),
		AssignmentDocumentLocationURI: o.str("assignmentDocumentLocationURI"),
		AssignmentReceivedDate:        o.date("assignmentReceivedDate"),
		AssignmentRecordedDate:        o.date("assignmentRecordedDate"),
		AssignmentMailedDate:          o.date("assignmentMailedDate"),
		ConveyanceText:                o.str("conveyanceText"),
		AssignorBag:                   list[Assignor](o, "assignorBag"),
		AssigneeBag:                   list[Assignee](o, "assigneeBag"),
		CorrespondenceAddressBag:      list[Address](o, "correspondenceAddressBag"),
	}
	return nil
}

// ForeignPriority is a foreign priority claim.
type ForeignPriority struct {
	IPOfficeName          *string `json:"ipOfficeName,omitempty"`
	FilingDate            *Date   `json:"filingDate,omitempty"`
	ApplicationNumberText *string `json:"applicationNumberText,omitempty"`
}

func (f *ForeignPriority) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "ForeignPriority")
	if err != nil {
		return err
	}
	*f = ForeignPriority{
		IPOfficeName:          o.str("ipOfficeName"),
		FilingDate:            o.date("filingDate"),
		ApplicationNumberText: o.str("applicationNumberText"),
	}
	return nil
}

// Continuity is the direction-neutral view of a parent or child continuity entry:
// the related application is the parent for ParentContinuity and the child for ChildContinuity.
type Continuity struct {
	FirstInventorToFileIndicator          *bool
	ApplicationNumberText                 *string
	FilingDate                            *Date
	StatusCode                            *int
	StatusDescriptionText                 *string
	PatentNumber                          *string
	ClaimParentageTypeCode                *string
	ClaimParentageTypeCodeDescriptionText *string
}

// ParentContinuity links an application to one of its parents.
type ParentContinuity struct {
	FirstInventorToFileIndicator           *bool   `json:"firstInventorToFileIndicator,omitempty"`
	ParentApplicationStatusCode            *int    `json:"parentApplicationStatusCode,omitempty"`
	ParentPatentNumber                     *string `json:"parentPatentNumber,omitempty"`
	ParentApplicationStatusDescriptionText *string `json:"parentApplicationStatusDescriptionText,omitempty"`
	ParentApplicationFilingDate            *Date   `json:"parentApplicationFilingDate,omitempty"`
	ParentApplicationNumberText            *string `json:"parentApplicationNumberText,omitempty"`
	ChildApplicationNumberText             *string `json:"childApplicationNumberText,omitempty"`
	ClaimParentageTypeCode                 *string `json:"claimParentageTypeCode,omitempty"`
	ClaimParentageTypeCodeDescriptionText  *string `json:"claimParentageTypeCodeDescriptionText,omitempty"`
}

// Continuity returns the parent-side view.
func (p ParentContinuity) Continuity() Continuity {
	return Continuity{
		FirstInventorToFileIndicator:          p.FirstInventorToFileIndicator,
		ApplicationNumberText:                 p.ParentApplicationNumberText,
		FilingDate:                            p.ParentApplicationFilingDate,
		StatusCode:                            p.ParentApplicationStatusCode,
		StatusDescriptionText:                 p.ParentApplicationStatusDescriptionText,
		PatentNumber:                          p.ParentPatentNumber,
		ClaimParentageTypeCode:                p.ClaimParentageTypeCode,
		ClaimParentageTypeCodeDescriptionText: p.ClaimParentageTypeCodeDescriptionText,
	}
}

func (p *ParentContinuity) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "ParentContinuity")
	if err != nil {
		return err
	}
	*p = ParentContinuity{
		FirstInventorToFileIndicator:           o.boolean("firstInventorToFileIndicator"),
		ParentApplicationStatusCode:            o.integer("parentApplicationStatusCode"),
		ParentPatentNumber:                     o.str("parentPatentNumber"),
		ParentApplicationStatusDescriptionText: o.str("parentApplicationStatusDescriptionText"),
		ParentApplicationFilingDate:            o.date("parentApplicationFilingDate"),
		ParentApplicationNumberText:            o.str("parentApplicationNumberText"),
		ChildApplicationNumberText:             o.str("childApplicationNumberText"),
		ClaimParentageTypeCode:                 o.str("claimParentageTypeCode"),
		ClaimParentageTypeCodeDescriptionText:  o.str("claimParentageTypeCodeDescriptionText"),
	}
	return nil
}

// ChildContinuity links an application to one of its children.
type ChildContinuity struct {
	FirstInventorToFileIndicator          *bool   `json:"firstInventorToFileIndicator,omitempty"`
	ChildApplicationStatusCode            *int    `json:"childApplicationStatusCode,omitempty"`
	ParentApplicationNumberText           *string `json:"parentApplicationNumberText,omitempty"`
	ChildApplicationNumberText            *string `json:"childApplicationNumberText,omitempty"`
	ChildApplicationStatusDescriptionText *string `json:"childApplicationStatusDescriptionText,omitempty"`
	ChildApplicationFilingDate            *Date   `json:"childApplicationFilingDate,omitempty"`
	ChildPatentNumber                     *string `json:"childPatentNumber,omitempty"`
	ClaimParentageTypeCode                *string `json:"claimParentageTypeCode,omitempty"`
	ClaimParentageTypeCodeDescriptionText *string `json:"claimParentageTypeCodeDescriptionText,omitempty"`
}

// Continuity returns the child-side view.
func (c ChildContinuity) Continuity() Continuity {
	return Continuity{
		FirstInventorToFileIndicator:          c.FirstInventorToFileIndicator,
		ApplicationNumberText:                 c.ChildApplicationNumberText,
		FilingDate:                            c.ChildApplicationFilingDate,
		StatusCode:                            c.ChildApplicationStatusCode,
		StatusDescriptionText:                 c.ChildApplicationStatusDescriptionText,
		PatentNumber:                          c.ChildPatentNumber,
		ClaimParentageTypeCode:                c.ClaimParentageTypeCode,
		ClaimParentageTypeCodeDescriptionText: c.ClaimParentageTypeCodeDescriptionText,
	}
}

func (c *ChildContinuity) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "ChildContinuity")
	if err != nil {
		return err
	}
	*c = ChildContinuity{
		FirstInventorToFileIndicator:          o.boolean("firstInventorToFileIndicator"),
		ChildApplicationStatusCode:            o.integer("childApplicationStatusCode"),
		ParentApplicationNumberText:           o.str("parentApplicationNumberText"),
		ChildApplicationNumberText:            o.str("childApplicationNumberText"),
		ChildApplicationStatusDescriptionText: o.str("childApplicationStatusDescriptionText"),
		ChildApplicationFilingDate:            o.date("childApplicationFilingDate"),
		ChildPatentNumber:                     o.str("childPatentNumber"),
		ClaimParentageTypeCode:                o.str("claimParentageTypeCode"),
		ClaimParentageTypeCodeDescriptionText: o.str("claimParentageTypeCodeDescriptionText"),
	}
	return nil
}

// PatentTermAdjustmentHistoryData is one event in the patent term adjustment history.
type PatentTermAdjustmentHistoryData struct {
	EventDate                      *Date    `json:"eventDate,omitempty"`
	ApplicantDayDelayQuantity      *float64 `json:"applicantDayDelayQuantity,omitempty"`
	EventDescriptionText           *string  `json:"eventDescriptionText,omitempty"`
	EventSequenceNumber            *float64 `json:"eventSequenceNumber,omitempty"`
	IPOfficeDayDelayQuantity       *float64 `json:"ipOfficeDayDelayQuantity,omitempty"`
	OriginatingEventSequenceNumber *float64 `json:"originatingEventSequenceNumber,omitempty"`
	PtaPTECode                     *string  `json:"ptaPTECode,omitempty"`
}

func (h *PatentTermAdjustmentHistoryData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PatentTermAdjustmentHistoryData")
	if err != nil {
		return err
	}
	*h = PatentTermAdjustmentHistoryData{
		EventDate:                      o.date("eventDate"),
		ApplicantDayDelayQuantity:      o.number("applicantDayDelayQuantity"),
		EventDescriptionText:           o.str("eventDescriptionText"),
		EventSequenceNumber:            o.number("eventSequenceNumber"),
		IPOfficeDayDelayQuantity:       o.number("ipOfficeDayDelayQuantity"),
		OriginatingEventSequenceNumber: o.number("originatingEventSequenceNumber"),
		PtaPTECode:                     o.str("ptaPTECode"),
	}
	return nil
}

// PatentTermAdjustmentData is the patent term adjustment summary.
type PatentTermAdjustmentData struct {
	ADelayQuantity                     *float64                          `json:"aDelayQuantity,omitempty"`
	AdjustmentTotalQuantity            *float64                          `json:"adjustmentTotalQuantity,omitempty"`
	ApplicantDayDelayQuantity          *float64                          `json:"applicantDayDelayQuantity,omitempty"`
	BDelayQuantity                     *float64                          `json:"bDelayQuantity,omitempty"`
	CDelayQuantity                     *float64                          `json:"cDelayQuantity,omitempty"`
	FilingDate                         *Date                             `json:"filingDate,omitempty"`
	GrantDate                          *Date                             `json:"grantDate,omitempty"`
	NonOverlappingDayQuantity          *float64                          `json:"nonOverlappingDayQuantity,omitempty"`
	OverlappingDayQuantity             *float64                          `json:"overlappingDayQuantity,omitempty"`
	IPOfficeDayDelayQuantity           *float64                          `json:"ipOfficeDayDelayQuantity,omitempty"`
	PatentTermAdjustmentHistoryDataBag []PatentTermAdjustmentHistoryData `json:"patentTermAdjustmentHistoryDataBag,omitempty"`
}

func (p *PatentTermAdjustmentData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PatentTermAdjustmentData")
	if err != nil {
		return err
	}
	*p = PatentTermAdjustmentData{
		ADelayQuantity:                     o.number("aDelayQuantity"),
		AdjustmentTotalQuantity:            o.number("adjustmentTotalQuantity"),
		ApplicantDayDelayQuantity:          o.number("applicantDayDelayQuantity"),
		BDelayQuantity:                     o.number("bDelayQuantity"),
		CDelayQuantity:                     o.number("cDelayQuantity"),
		FilingDate:                         o.date("filingDate"),
		GrantDate:                          o.date("grantDate"),
		NonOverlappingDayQuantity:          o.number("nonOverlappingDayQuantity"),
		OverlappingDayQuantity:             o.number("overlappingDayQuantity"),
		IPOfficeDayDelayQuantity:           o.number("ipOfficeDayDelayQuantity"),
		PatentTermAdjustmentHistoryDataBag: list[PatentTermAdjustmentHistoryData](o, "patentTermAdjustmentHistoryDataBag"),
	}
	return nil
}

// EventData is one transaction in the prosecution history.
type EventData struct {
	EventCode            *string `json:"eventCode,omitempty"`
	EventDescriptionText *string `json:"eventDescriptionText,omitempty"`
	EventDate            *Date   `json:"eventDate,omitempty"`
}

func (e *EventData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "EventData")
	if err != nil {
		return err
	}
	*e = EventData{
		EventCode:            o.str("eventCode"),
		EventDescriptionText: o.str("eventDescriptionText"),
		EventDate:            o.date("eventDate"),
	}
	return nil
}

// PrintedMetaData locates the full-text XML of a publication or grant.
type PrintedMetaData struct {
	ZipFileName        *string   `json:"zipFileName,omitempty"`
	ProductIdentifier  *string   `json:"productIdentifier,omitempty"`
	FileLocationURI    *string   `json:"fileLocationURI,omitempty"`
	FileCreateDateTime *DateTime `json:"fileCreateDateTime,omitempty"`
	XMLFileName        *string   `json:"xmlFileName,omitempty"`
}

func (p *PrintedMetaData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PrintedMetaData")
	if err != nil {
		return err
	}
	*p = PrintedMetaData{
		ZipFileName:        o.str("zipFileName"),
		ProductIdentifier:  o.str("productIdentifier"),
		FileLocationURI:    o.str("fileLocationURI"),
		FileCreateDateTime: o.datetime("fileCreateDateTime"),
		XMLFileName:        o.str("xmlFileName"),
	}
	return nil
}

// ApplicationMetaData is the bibliographic core of a file wrapper.
type ApplicationMetaData struct {
	NationalStageIndicator                   *bool         `json:"nationalStageIndicator,omitempty"`
	EntityStatusData                         *EntityStatus `json:"entityStatusData,omitempty"`
	PublicationDateBag                       []Date        `json:"publicationDateBag,omitempty"`
	PublicationSequenceNumberBag             []string      `json:"publicationSequenceNumberBag,omitempty"`
	PublicationCategoryBag                   []string      `json:"publicationCategoryBag,omitempty"`
	DocketNumber                             *string       `json:"docketNumber,omitempty"`
	FirstInventorToFileIndicator             *bool         `json:"-"` // Y/N on the wire
	FirstApplicantName                       *string       `json:"firstApplicantName,omitempty"`
	FirstInventorName                        *string       `json:"firstInventorName,omitempty"`
	ApplicationConfirmationNumber            *string       `json:"applicationConfirmationNumber,omitempty"`
	ApplicationStatusDate                    *Date         `json:"applicationStatusDate,omitempty"`
	ApplicationStatusDescriptionText         *string       `json:"applicationStatusDescriptionText,omitempty"`
	FilingDate                               *Date         `json:"filingDate,omitempty"`
	EffectiveFilingDate                      *Date         `json:"effectiveFilingDate,omitempty"`
	GrantDate                                *Date         `json:"grantDate,omitempty"`
	GroupArtUnitNumber                       *string       `json:"groupArtUnitNumber,omitempty"`
	ApplicationTypeCode                      *string       `json:"applicationTypeCode,omitempty"`
	ApplicationTypeLabelName                 *string       `json:"applicationTypeLabelName,omitempty"`
	ApplicationTypeCategory                  *string       `json:"applicationTypeCategory,omitempty"`
	InventionTitle                           *string       `json:"inventionTitle,omitempty"`
	PatentNumber                             *string       `json:"patentNumber,omitempty"`
	ApplicationStatusCode                    *int          `json:"applicationStatusCode,omitempty"`
	EarliestPublicationNumber                *string       `json:"earliestPublicationNumber,omitempty"`
	EarliestPublicationDate                  *Date         `json:"earliestPublicationDate,omitempty"`
	PCTPublicationNumber                     *string       `json:"pctPublicationNumber,omitempty"`
	PCTPublicationDate                       *Date         `json:"pctPublicationDate,omitempty"`
	InternationalRegistrationPublicationDate *Date         `json:"internationalRegistrationPublicationDate,omitempty"`
	InternationalRegistrationNumber          *string       `json:"internationalRegistrationNumber,omitempty"`
	ExaminerNameText                         *string       `json:"examinerNameText,omitempty"`
	Class                                    *string       `json:"class,omitempty"`
	Subclass                                 *string       `json:"subclass,omitempty"`
	USPCSymbolText                           *string       `json:"uspcSymbolText,omitempty"`
	CustomerNumber                           *int          `json:"customerNumber,omitempty"`
	CPCClassificationBag                     []string      `json:"cpcClassificationBag,omitempty"`
	ApplicantBag                             []Applicant   `json:"applicantBag,omitempty"`
	InventorBag                              []Inventor    `json:"inventorBag,omitempty"`
}

// IsAIA reports whether the application is examined under the first-inventor-to-file rules.
func (m ApplicationMetaData) IsAIA() *bool {
	return m.FirstInventorToFileIndicator
}

// IsPreAIA is the negation of IsAIA; nil stays nil.
func (m ApplicationMetaData) IsPreAIA() *bool {
	if m.FirstInventorToFileIndicator == nil {
		return nil
	}
	return boolPtr(!*m.FirstInventorToFileIndicator)
}

func (m ApplicationMetaData) MarshalJSON() ([]byte, error) {
	type plain ApplicationMetaData
	return json.Marshal(struct {
		plain
		FirstInventorToFileIndicator string `json:"firstInventorToFileIndicator,omitempty"`
	}{plain(m), EncodeYN(m.FirstInventorToFileIndicator)})
}

func (m *ApplicationMetaData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "ApplicationMetaData")
	if err != nil {
		return err
	}
	*m = ApplicationMetaData{
		NationalStageIndicator:                   o.boolean("nationalStageIndicator"),
		EntityStatusData:                         one[EntityStatus](o, "entityStatusData"),
		PublicationDateBag:                       o.dates("publicationDateBag"),
		PublicationSequenceNumberBag:             o.strs("publicationSequenceNumberBag"),
		PublicationCategoryBag:                   o.strs("publicationCategoryBag"),
		DocketNumber:                             o.str("docketNumber"),
		FirstInventorToFileIndicator:             o.yn("firstInventorToFileIndicator"),
		FirstApplicantName:                       o.str("firstApplicantName"),
		FirstInventorName:                        o.str("firstInventorName"),
		ApplicationConfirmationNumber:            o.str("applicationConfirmationNumber"),
		ApplicationStatusDate:                    o.date("applicationStatusDate"),
		ApplicationStatusDescriptionText:         o.str("applicationStatusDescriptionText"),
		FilingDate:                               o.date("filingDate"),
		EffectiveFilingDate:                      o.date("effectiveFilingDate"),
		GrantDate:                                o.date("grantDate"),
		GroupArtUnitNumber:                       o.str("groupArtUnitNumber"),
		ApplicationTypeCode:                      o.str("applicationTypeCode"),
		ApplicationTypeLabelName:                 o.str("applicationTypeLabelName"),
		ApplicationTypeCategory:                  o.str("applicationTypeCategory"),
		InventionTitle:                           o.str("inventionTitle"),
		PatentNumber:                             o.str("patentNumber"),
		ApplicationStatusCode:                    o.integer("applicationStatusCode"),
		EarliestPublicationNumber:                o.str("earliestPublicationNumber"),
		EarliestPublicationDate:                  o.date("earliestPublicationDate"),
		PCTPublicationNumber:                     o.str("pctPublicationNumber"),
		PCTPublicationDate:                       o.date("pctPublicationDate"),
		InternationalRegistrationPublicationDate: o.date("internationalRegistrationPublicationDate"),
		InternationalRegistrationNumber:          o.str("internationalRegistrationNumber"),
		ExaminerNameText:                         o.str("examinerNameText"),
		Class:                                    o.str("class"),
		Subclass:                                 o.str("subclass"),
		USPCSymbolText:                           o.str("uspcSymbolText"),
		CustomerNumber:                           o.integer("customerNumber"),
		CPCClassificationBag:                     o.strs("cpcClassificationBag"),
		ApplicantBag:                             list[Applicant](o, "applicantBag"),
		InventorBag:                              list[Inventor](o, "inventorBag"),
	}
	return nil
}

// PatentFileWrapper is everything the API knows about one application.
type PatentFileWrapper struct {
	ApplicationNumberText    *string                   `json:"applicationNumberText,omitempty"`
	ApplicationMetaData      *ApplicationMetaData      `json:"applicationMetaData,omitempty"`
	CorrespondenceAddressBag []Address                 `json:"correspondenceAddressBag,omitempty"`
	AssignmentBag            []Assignment              `json:"assignmentBag,omitempty"`
	RecordAttorney           *RecordAttorney           `json:"recordAttorney,omitempty"`
	ForeignPriorityBag       []ForeignPriority         `json:"foreignPriorityBag,omitempty"`
	ParentContinuityBag      []ParentContinuity        `json:"parentContinuityBag,omitempty"`
	ChildContinuityBag       []ChildContinuity         `json:"childContinuityBag,omitempty"`
	PatentTermAdjustmentData *PatentTermAdjustmentData `json:"patentTermAdjustmentData,omitempty"`
	EventDataBag             []EventData               `json:"eventDataBag,omitempty"`
	PgpubDocumentMetaData    *PrintedMetaData          `json:"pgpubDocumentMetaData,omitempty"`
	GrantDocumentMetaData    *PrintedMetaData          `json:"grantDocumentMetaData,omitempty"`
	LastIngestionDateTime    *DateTime                 `json:"lastIngestionDateTime,omitempty"`
}

// ApplicationNumber returns ApplicationNumberText or "".
func (w PatentFileWrapper) ApplicationNumber() string {
	return deref(w.ApplicationNumberText)
}

// Continuity returns the continuity part of the wrapper.
func (w PatentFileWrapper) Continuity() ApplicationContinuityData {
	return ApplicationContinuityData{
		ParentContinuityBag: w.ParentContinuityBag,
		ChildContinuityBag:  w.ChildContinuityBag,
	}
}

// PrintedPublication returns the publication and grant file locations of the wrapper.
func (w PatentFileWrapper) PrintedPublication() PrintedPublication {
	return PrintedPublication{
		PgpubDocumentMetaData: w.PgpubDocumentMetaData,
		GrantDocumentMetaData: w.GrantDocumentMetaData,
	}
}

func (w *PatentFileWrapper) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "PatentFileWrapper")
	if err != nil {
		return err
	}
	*w = PatentFileWrapper{
		ApplicationNumberText:    o.str("applicationNumberText"),
		ApplicationMetaData:      one[ApplicationMetaData](o, "applicationMetaData"),
		CorrespondenceAddressBag: list[Address](o, "correspondenceAddressBag"),
		AssignmentBag:            list[Assignment](o, "assignmentBag"),
		RecordAttorney:           one[RecordAttorney](o, "recordAttorney"),
		ForeignPriorityBag:       list[ForeignPriority](o, "foreignPriorityBag"),
		ParentContinuityBag:      list[ParentContinuity](o, "parentContinuityBag"),
		ChildContinuityBag:       list[ChildContinuity](o, "childContinuityBag"),
		PatentTermAdjustmentData: one[PatentTermAdjustmentData](o, "patentTermAdjustmentData"),
		EventDataBag:             list[EventData](o, "eventDataBag"),
		PgpubDocumentMetaData:    one[PrintedMetaData](o, "pgpubDocumentMetaData"),
		GrantDocumentMetaData:    one[PrintedMetaData](o, "grantDocumentMetaData"),
		LastIngestionDateTime:    o.datetime("lastIngestionDateTime"),
	}
	return nil
}

// ApplicationContinuityData is the parent and child continuity of an application.
type ApplicationContinuityData struct {
	ParentContinuityBag []ParentContinuity `json:"parentContinuityBag,omitempty"`
	ChildContinuityBag  []ChildContinuity  `json:"childContinuityBag,omitempty"`
}

// PrintedPublication holds the publication and grant full-text locations.
type PrintedPublication struct {
	PgpubDocumentMetaData *PrintedMetaData `json:"pgpubDocumentMetaData,omitempty"`
	GrantDocumentMetaData *PrintedMetaData `json:"grantDocumentMetaData,omitempty"`
}

// PatentDataResponse is a page of file wrappers.
type PatentDataResponse = Page[PatentFileWrapper]

const patentFileWrapperBagKey = "patentFileWrapperDataBag"

// DecodePatentDataResponse decodes an application search payload. The result cannot page forward.
func DecodePatentDataResponse(data []byte) (*PatentDataResponse, error) {
	return decodePage[PatentFileWrapper](data, "PatentDataResponse", patentFileWrapperBagKey)
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
