package odp

import "github.com/goccy/go-json"

// DocumentFormat is one downloadable rendition of a file wrapper document.
type DocumentFormat struct {
	MimeTypeIdentifier *string `json:"mimeTypeIdentifier,omitempty"`
	DownloadURL        *string `json:"downloadUrl,omitempty"`
	PageTotalQuantity  *int    `json:"pageTotalQuantity,omitempty"`
}

func (f *DocumentFormat) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "DocumentFormat")
	if err != nil {
		return err
	}
	*f = DocumentFormat{
		MimeTypeIdentifier: o.str("mimeTypeIdentifier"),
		DownloadURL:        o.str("downloadUrl"),
		PageTotalQuantity:  o.integer("pageTotalQuantity"),
	}
	return nil
}

// Document is one entry of an application's image file wrapper.
type Document struct {
	ApplicationNumberText       *string          `json:"applicationNumberText,omitempty"`
	OfficialDate                *DateTime        `json:"officialDate,omitempty"`
	DocumentIdentifier          *string          `json:"documentIdentifier,omitempty"`
	DocumentCode                *string          `json:"documentCode,omitempty"`
	DocumentCodeDescriptionText *string          `json:"documentCodeDescriptionText,omitempty"`
	DocumentDirectionCategory   *string          `json:"documentDirectionCategory,omitempty"`
	DownloadOptionBag           []DocumentFormat `json:"downloadOptionBag,omitempty"`
}

// Direction resolves DocumentDirectionCategory.
func (d Document) Direction() DirectionCategory {
	return ParseDirectionCategory(deref(d.DocumentDirectionCategory))
}

// Format returns the download option with the given MIME type, compared case-insensitively.
func (d Document) Format(mimeType string) (DocumentFormat, bool) {
	return Bag[DocumentFormat](d.DownloadOptionBag).Find(func(f DocumentFormat) bool {
		return normalizeEnum(deref(f.MimeTypeIdentifier)) == normalizeEnum(mimeType)
	})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "Document")
	if err != nil {
		return err
	}
	*d = Document{
		ApplicationNumberText:       o.str("applicationNumberText"),
		OfficialDate:                o.datetime("officialDate"),
		DocumentIdentifier:          o.str("documentIdentifier"),
		DocumentCode:                o.str("documentCode"),
		DocumentCodeDescriptionText: o.str("documentCodeDescriptionText"),
		DocumentDirectionCategory:   o.str("documentDirectionCategory"),
		DownloadOptionBag:           list[DocumentFormat](o, "downloadOptionBag"),
	}
	if d.DocumentDirectionCategory != nil {
		warnUnknownEnum(d.Direction(), DirectionUnknown, "documentDirectionCategory",
			*d.DocumentDirectionCategory, "document", deref(d.DocumentIdentifier))
	}
	return nil
}

// DocumentBag is the document list of an application.
type DocumentBag struct {
	Documents Bag[Document]
}

func (b DocumentBag) MarshalJSON() ([]byte, error) {
	docs := b.Documents
	if docs == nil {
		docs = Bag[Document]{}
	}
	return json.Marshal(map[string]any{"documentBag": docs})
}

func (b *DocumentBag) UnmarshalJSON(data []byte) error {
	o, err := parseTopLevel(data, "DocumentBag")
	if err != nil {
		return err
	}
	*b = DocumentBag{Documents: list[Document](o, "documentBag")}
	return nil
}

// DecodeDocumentBag decodes a documents payload.
func DecodeDocumentBag(data []byte) (*DocumentBag, error) {
	var b DocumentBag
	if err := b.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &b, nil
}
