package odp

// FileData is one downloadable file of a bulk data product.
// Text and size fields read as ""/0 when absent and are always encoded.
type FileData struct {
	FileName                 string    `json:"fileName"`
	FileSize                 int       `json:"fileSize"`
	FileDataFromDate         *Date     `json:"fileDataFromDate,omitempty"`
	FileDataToDate           *Date     `json:"fileDataToDate,omitempty"`
	FileTypeText             string    `json:"fileTypeText"`
	FileReleaseDate          *Date     `json:"fileReleaseDate,omitempty"`
	FileDownloadURI          *string   `json:"fileDownloadURI,omitempty"`
	FileDate                 *Date     `json:"fileDate,omitempty"`
	FileLastModifiedDateTime *DateTime `json:"fileLastModifiedDateTime,omitempty"`

	// ProductIdentifier is the owning product, filled in by the product decoder.
	ProductIdentifier string `json:"-"`
}

// FileType resolves FileTypeText.
func (f FileData) FileType() FileTypeCategory {
	return ParseFileTypeCategory(f.FileTypeText)
}

func (f *FileData) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "FileData")
	if err != nil {
		return err
	}
	*f = FileData{
		FileName:                 o.text("fileName"),
		FileSize:                 o.intOr0("fileSize"),
		FileDataFromDate:         o.date("fileDataFromDate"),
		FileDataToDate:           o.date("fileDataToDate"),
		FileTypeText:             o.text("fileTypeText"),
		FileReleaseDate:          o.date("fileReleaseDate"),
		FileDownloadURI:          o.str("fileDownloadURI"),
		FileDate:                 o.date("fileDate"),
		FileLastModifiedDateTime: o.datetime("fileLastModifiedDateTime"),
	}
	warnUnknownEnum(f.FileType(), FileTypeUnknown, "fileTypeText", f.FileTypeText, "file", f.FileName)
	return nil
}

// ProductFileBag lists the files of a product.
type ProductFileBag struct {
	Count       int           `json:"count"`
	FileDataBag Bag[FileData] `json:"fileDataBag,omitempty"`
}

func (b *ProductFileBag) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "ProductFileBag")
	if err != nil {
		return err
	}
	*b = ProductFileBag{
		Count:       o.intOr0("count"),
		FileDataBag: list[FileData](o, "fileDataBag"),
	}
	return nil
}

// BulkDataProduct is a bulk data product as listed by the datasets API.
type BulkDataProduct struct {
	ProductIdentifier               string          `json:"productIdentifier"`
	ProductDescriptionText          string          `json:"productDescriptionText"`
	ProductTitleText                string          `json:"productTitleText"`
	ProductFrequencyText            string          `json:"productFrequencyText"`
	DaysOfWeekText                  *string         `json:"daysOfWeekText,omitempty"`
	ProductLabelArrayText           []string        `json:"productLabelArrayText,omitempty"`
	ProductDatasetArrayText         []string        `json:"productDatasetArrayText,omitempty"`
	ProductDatasetCategoryArrayText []string        `json:"productDatasetCategoryArrayText,omitempty"`
	ProductFromDate                 *Date           `json:"productFromDate,omitempty"`
	ProductToDate                   *Date           `json:"productToDate,omitempty"`
	ProductTotalFileSize            int             `json:"productTotalFileSize"`
	ProductFileTotalQuantity        int             `json:"productFileTotalQuantity"`
	LastModifiedDateTime            *DateTime       `json:"lastModifiedDateTime,omitempty"`
	MimeTypeIdentifierArrayText     []string        `json:"mimeTypeIdentifierArrayText,omitempty"`
	ProductFileBag                  *ProductFileBag `json:"productFileBag,omitempty"`
}

// Frequency resolves ProductFrequencyText.
func (p BulkDataProduct) Frequency() ProductFrequency {
	return ParseProductFrequency(p.ProductFrequencyText)
}

// Files returns the product's files, or nil when the response did not include them.
func (p BulkDataProduct) Files() Bag[FileData] {
	if p.ProductFileBag == nil {
		return nil
	}
	return p.ProductFileBag.FileDataBag
}

func (p *BulkDataProduct) UnmarshalJSON(data []byte) error {
	o, err := parseObject(data, "BulkDataProduct")
	if err != nil {
		return err
	}
	*p = BulkDataProduct{
		ProductIdentifier:               o.text("productIdentifier"),
		ProductDescriptionText:          o.text("productDescriptionText"),
		ProductTitleText:                o.text("productTitleText"),
		ProductFrequencyText:            o.text("productFrequencyText"),
		DaysOfWeekText:                  o.str("daysOfWeekText"),
		ProductLabelArrayText:           o.strs("productLabelArrayText"),
		ProductDatasetArrayText:         o.strs("productDatasetArrayText"),
		ProductDatasetCategoryArrayText: o.strs("productDatasetCategoryArrayText"),
		ProductFromDate:                 o.date("productFromDate"),
		ProductToDate:                   o.date("productToDate"),
		ProductTotalFileSize:            o.intOr0("productTotalFileSize"),
		ProductFileTotalQuantity:        o.intOr0("productFileTotalQuantity"),
		LastModifiedDateTime:            o.datetime("lastModifiedDateTime"),
		MimeTypeIdentifierArrayText:     o.strs("mimeTypeIdentifierArrayText"),
		ProductFileBag:                  one[ProductFileBag](o, "productFileBag"),
	}
	warnUnknownEnum(p.Frequency(), FrequencyUnknown, "productFrequencyText", p.ProductFrequencyText,
		"product", p.ProductIdentifier)
	if p.ProductFileBag != nil {
		for i := range p.ProductFileBag.FileDataBag {
			p.ProductFileBag.FileDataBag[i].ProductIdentifier = p.ProductIdentifier
		}
	}
	return nil
}

// BulkDataResponse is a page of bulk data products.
type BulkDataResponse = Page[BulkDataProduct]

const bulkDataProductBagKey = "bulkDataProductBag"

// DecodeBulkDataResponse decodes a product search payload. The result cannot page forward.
func DecodeBulkDataResponse(data []byte) (*BulkDataResponse, error) {
	return decodePage[BulkDataProduct](data, "BulkDataResponse", bulkDataProductBagKey)
}
