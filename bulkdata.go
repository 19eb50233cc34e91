package odp

import (
	"context"
	"iter"
	"slices"
	"time"
)

const (
	productsSearchPath = "api/v1/datasets/products/search"
	productPath        = "api/v1/datasets/products/%s"
)

// ProductSearchOptions are the query parameters of SearchProducts.
type ProductSearchOptions struct {
	Query              string
	ProductTitle       string
	ProductDescription string
	ProductShortName   string
	FromDate           string
	ToDate             string
	Categories         []string
	Labels             []string
	Datasets           []string
	FileTypes          []string
	Offset             int
	Limit              int
	IncludeFiles       *bool
	Latest             *bool
	Facets             *bool

	// Convenience clauses combined into Query when it is empty.
	ProductIDQ          string
	ProductTitleQ       string
	ProductDescriptionQ string
	DatasetQ            string
	CategoryQ           string
	LabelQ              string
	FileTypeQ           string
	FromDateQ           string
	ToDateQ             string

	// Extra parameters are sent as given and win over the fields above.
	Extra map[string]string
}

func (o ProductSearchOptions) params() (Params, error) {
	var q queryBuilder
	q.term("productIdentifier", o.ProductIDQ)
	q.term("productTitleText", o.ProductTitleQ)
	q.term("productDescriptionText", o.ProductDescriptionQ)
	q.term("productDatasetArrayText", o.DatasetQ)
	q.term("productDatasetCategoryArrayText", o.CategoryQ)
	q.term("productLabelArrayText", o.LabelQ)
	q.term("mimeTypeIdentifierArrayText", o.FileTypeQ)
	q.rangeBetween("productFromDate", o.FromDateQ, "productToDate", o.ToDateQ)

	b := newParamBuilder()
	b.add("q", q.resolveQuery(o.Query))
	b.add("productTitle", o.ProductTitle)
	b.add("productDescription", o.ProductDescription)
	b.add("productShortName", o.ProductShortName)
	b.add("fromDate", o.FromDate)
	b.add("toDate", o.ToDate)
	b.add("categories", o.Categories)
	b.add("labels", o.Labels)
	b.add("datasets", o.Datasets)
	b.add("fileTypes", o.FileTypes)
	b.add(paramOffset, o.Offset)
	b.add(paramLimit, o.Limit)
	b.add("includeFiles", o.IncludeFiles)
	b.add("latest", o.Latest)
	b.add("facets", o.Facets)
	b.merge(o.Extra)
	return b.build()
}

// ProductOptions are the query parameters of GetProductByID. Offset and
// Limit page through the product's files.
type ProductOptions struct {
	FileDataFromDate *Date
	FileDataToDate   *Date
	Offset           *int
	Limit            *int
	IncludeFiles     *bool
	Latest           *bool
}

func (o ProductOptions) params() (Params, error) {
	b := newParamBuilder()
	b.add("fileDataFromDate", o.FileDataFromDate)
	b.add("fileDataToDate", o.FileDataToDate)
	b.add(paramOffset, o.Offset)
	b.add(paramLimit, o.Limit)
	b.add("includeFiles", o.IncludeFiles)
	b.add("latest", o.Latest)
	return b.build()
}

// SearchProducts searches bulk data products.
func (c *Client) SearchProducts(ctx context.Context, opts ProductSearchOptions) (*BulkDataResponse, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	return c.searchProducts(ctx, params)
}

func (c *Client) searchProducts(ctx context.Context, params Params) (*BulkDataResponse, error) {
	endpoint, err := c.endpoint(productsSearchPath)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "SearchProducts", endpoint, params)
	if err != nil {
		return nil, err
	}
	page, err := DecodeBulkDataResponse(body)
	if err != nil {
		return nil, err
	}
	return keepRaw(c, page, body).attach("SearchProducts", params, c.searchProducts), nil
}

// PaginateProducts iterates over every product matching opts.
func (c *Client) PaginateProducts(ctx context.Context, opts ProductSearchOptions) iter.Seq2[BulkDataProduct, error] {
	params, err := opts.params()
	if err != nil {
		return failedSeq[BulkDataProduct](err)
	}
	return Paginate(ctx, c.searchProducts, params)
}

// GetProductByID returns one product. An empty response is a *NotFoundError.
// A product with a different identifier is returned as is and logged as a
// data mismatch.
func (c *Client) GetProductByID(ctx context.Context, productID string, opts ProductOptions) (*BulkDataProduct, error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}
	endpoint, err := c.endpoint(productPath, productID)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, "GetProductByID", endpoint, params)
	if err != nil {
		return nil, err
	}
	resp, err := DecodeBulkDataResponse(body)
	if err != nil {
		return nil, err
	}
	if resp.Len() == 0 {
		return nil, &NotFoundError{Resource: "product", ID: productID}
	}

	product := resp.At(0)
	c.checkIdentifier("product", productID, product.ProductIdentifier)
	return &product, nil
}

// GetLatestFile returns the most recently released file of a product.
func (c *Client) GetLatestFile(ctx context.Context, productID string) (*FileData, error) {
	product, err := c.GetProductByID(ctx, productID, ProductOptions{
		IncludeFiles: boolPtr(true),
		Latest:       boolPtr(true),
	})
	if err != nil {
		return nil, err
	}

	files := product.Files()
	if files.Len() == 0 {
		return nil, &NotFoundError{
			Resource: "file",
			ID:       "product " + productID + " has no files",
		}
	}

	latest := slices.MaxFunc(files, func(a, b FileData) int {
		return releaseTime(a).Compare(releaseTime(b))
	})
	return &latest, nil
}

func releaseTime(f FileData) time.Time {
	switch {
	case f.FileReleaseDate != nil:
		return f.FileReleaseDate.Time
	case f.FileLastModifiedDateTime != nil:
		return f.FileLastModifiedDateTime.Time
	case f.FileDataToDate != nil:
		return f.FileDataToDate.Time
	}
	return time.Time{}
}
