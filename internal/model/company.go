package model

// Company is a static CRM record. Companies are seeded at startup and are
// read-only: the coordinator looks them up but never mutates them.
type Company struct {
	// ID is the unique identifier referenced by Task.RelatedRecordID.
	ID string `json:"id" db:"id"`

	// Name is the company's display name.
	Name string `json:"name" db:"name"`

	// Icon is the URL of the company logo.
	Icon string `json:"icon" db:"icon"`

	// URL is the company's domain.
	URL string `json:"url" db:"url"`

	// CreatedBy is the user who created the record.
	CreatedBy User `json:"created_by" db:"-"`

	// Address is the street address on file.
	Address string `json:"address" db:"address"`

	// AccountOwner is the user who owns the account.
	AccountOwner User `json:"account_owner" db:"-"`

	// IsICP marks the company as an ideal customer profile match.
	IsICP bool `json:"is_icp" db:"is_icp"`

	// ARR is the annual recurring revenue display value.
	ARR string `json:"arr" db:"arr"`

	// Linkedin is the company's LinkedIn handle.
	Linkedin string `json:"linkedin" db:"linkedin"`
}
