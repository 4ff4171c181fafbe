package models

// CVText is one CV as submitted to the scoring function.
type CVText struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type ScoringRequest struct {
	JobDescription string   `json:"jobDescription"`
	CVTexts        []CVText `json:"cvTexts"`
}

type ScoringResponse struct {
	Results            []ScreeningResult   `json:"results"`
	ContractViolations []ContractViolation `json:"contractViolations,omitempty"`
	Error              string              `json:"error,omitempty"`
}

// ContractViolation flags an upstream result that breaks the scoring contract.
// The result itself is left untouched.
type ContractViolation struct {
	CVID   string `json:"cvId"`
	Reason string `json:"reason"`
}

type FileOutcome struct {
	FileName string `json:"file_name"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	CV       *CV    `json:"cv,omitempty"`
}

type UploadReport struct {
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
	Files    []FileOutcome `json:"files"`
}

type SelectionRequest struct {
	CVIDs []string `json:"cv_ids"`
}

type ScreenRequest struct {
	JobDescription string   `json:"job_description"`
	CVIDs          []string `json:"cv_ids"`
	JobRoleID      string   `json:"job_role_id,omitempty"`
}

type ScreeningSummary struct {
	Total        int `json:"total"`
	Selected     int `json:"selected"`
	Rejected     int `json:"rejected"`
	AverageScore int `json:"average_score"`
}

type GroupedResults struct {
	All      []ScreeningResult `json:"all"`
	Selected []ScreeningResult `json:"selected"`
	Rejected []ScreeningResult `json:"rejected"`
}

type ScreeningRun struct {
	RunID              string              `json:"run_id"`
	Results            []ScreeningResult   `json:"results"`
	Grouped            GroupedResults      `json:"grouped"`
	Summary            ScreeningSummary    `json:"summary"`
	ContractViolations []ContractViolation `json:"contract_violations,omitempty"`
}

type JobRoleRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Status       string   `json:"status"`
}

type DashboardStats struct {
	TotalCVs           int64 `json:"total_cvs"`
	TotalScreenings    int64 `json:"total_screenings"`
	SelectedScreenings int64 `json:"selected_screenings"`
	RejectedScreenings int64 `json:"rejected_screenings"`
	OpenJobRoles       int64 `json:"open_job_roles"`
	TotalJobRoles      int64 `json:"total_job_roles"`
}

// UploadFile is a file received from the caller, before validation.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
	// ReadErr is set when the part could not be read from the request.
	ReadErr error
}
