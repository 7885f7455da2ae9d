package types

// Job is a generated job listing. Listings are ephemeral: they live only for
// the current dashboard query and are not persisted across navigations.
type Job struct {
	Designation string `json:"designation" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
}

// ApplicationContentType selects the kind of application content to generate.
type ApplicationContentType string

// Application content variants.
const (
	ContentSummary     ApplicationContentType = "summary"
	ContentCoverLetter ApplicationContentType = "coverLetter"
)

// Valid reports whether the content type is recognized.
func (t ApplicationContentType) Valid() bool {
	return t == ContentSummary || t == ContentCoverLetter
}
