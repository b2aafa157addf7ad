package expodex

// NA is the absent-marker: the literal value recorded for any field that
// could not be extracted from a detail page.
const NA = "N/A"

// Exhibitor represents the structured result of processing one detail page.
// SourceURL is the link the record was derived from and acts as the primary
// key of the persisted record set. Records are immutable once created and
// only ever appended, never updated or deleted.
type Exhibitor struct {
	Name      string
	Website   string
	Booth     string
	Contact   string
	SourceURL string
}

// Validate returns an error if the exhibitor record cannot be persisted.
func (e *Exhibitor) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "exhibitor source URL required")
	}
	return nil
}

// Degraded returns an all-absent record for a detail page that could not be
// fetched. The source URL is kept so link accounting stays consistent and
// the link counts as processed.
func Degraded(sourceURL string) Exhibitor {
	return Exhibitor{
		Name:      NA,
		Website:   NA,
		Booth:     NA,
		Contact:   NA,
		SourceURL: sourceURL,
	}
}

// Extractor produces a structured record from a detail page's rendered HTML.
// Extract is total: it never fails, substituting NA for any field it cannot
// populate. Unparsable HTML yields an all-NA record with SourceURL set.
type Extractor interface {
	Extract(html, sourceURL string) Exhibitor
}
