package models

// PageClassification represents the label assigned to one document page.
type PageClassification struct {
	// Page is the page number (1-based).
	Page int `json:"page" yaml:"page"`
	// Label is the classification label.
	Label string `json:"classification" yaml:"classification"`
}
