package domain

// Metadata describes the page of results a list query produced.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata derives the page numbers from the total row count. The last
// page rounds up so a partial page still counts as one.
func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	m := Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
	m.LastPage = (totalRecords + pageSize - 1) / pageSize

	return &m
}
