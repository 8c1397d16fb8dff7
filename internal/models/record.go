package models

import "time"

// FormRecord is a referral form submission, addressed by its tracking token.
type FormRecord struct {
	TokenNo    string    `json:"tokenNo"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Contact    string    `json:"contact"`
	Batch      string    `json:"batch"`
	Location   string    `json:"location"`
	Skillset   string    `json:"skillset"`
	Company    string    `json:"company"`
	Experience string    `json:"experience"`
	CTC        string    `json:"ctc"`
	Message    string    `json:"message"`
	Attachment *string   `json:"attachment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FormPatch holds a partial update of the applicant's details. Nil fields are
// left unchanged. The attachment is not patchable: a record only ever points at
// a file it stored itself.
type FormPatch struct {
	Name       *string
	Email      *string
	Contact    *string
	Batch      *string
	Location   *string
	Skillset   *string
	Company    *string
	Experience *string
	CTC        *string
	Message    *string
}
