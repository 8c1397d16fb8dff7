package models

type Company struct {
	CompanyID        string   `json:"company_id"`
	Name             string   `json:"name"`
	JobRole          string   `json:"job_role"`
	JobDescription   string   `json:"job_description"`
	SkillsetRequired []string `json:"skillset_required"`
	ExpectedCTC      string   `json:"expected_ctc"`
}
