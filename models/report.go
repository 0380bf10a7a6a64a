package models

// ReportData is the read-only projection handed to the renderer. It is only
// produced when the objective weights balance to 100.
type ReportData struct {
	Header     ReportHeader      `json:"header"`
	Objectives []ReportObjective `json:"objectives"`
}

// ReportHeader carries the profile fields as they appear on the printed page,
// including the derived directorate display string.
type ReportHeader struct {
	Name        string `json:"name"`
	JobTitle    string `json:"jobTitle"`
	Institution string `json:"institution"`
	ManagerName string `json:"managerName"`
	Directorate string `json:"directorate"`
	PeriodLabel string `json:"periodLabel"`
	Year        string `json:"year"`
	SchoolLogo  string `json:"schoolLogo,omitempty"`
}

// ReportObjective is one numbered objective row.
type ReportObjective struct {
	Index               int            `json:"index"`
	Text                string         `json:"text"`
	ClassificationLabel string         `json:"classificationLabel"`
	Weight              int            `json:"weight"`
	Results             []ReportResult `json:"results"`
}

// ReportResult is one result row under an objective.
type ReportResult struct {
	Name              string           `json:"name"`
	Weight            int              `json:"weight"`
	TargetLow         string           `json:"targetLow"`
	TargetExpected    string           `json:"targetExpected"`
	TargetHigh        string           `json:"targetHigh"`
	ActualPerformance string           `json:"actualPerformance"`
	Evidence          []ReportEvidence `json:"evidence"`
}

// ReportEvidence carries what the renderer needs for one attachment. URL is
// set for LINK and VIDEO evidence only, normalized to carry a scheme.
type ReportEvidence struct {
	Type    EvidenceType `json:"type"`
	Content string       `json:"content"`
	URL     string       `json:"url,omitempty"`
	Notes   string       `json:"notes,omitempty"`
}

// ReportView pairs the composed report data with the performance narrative.
type ReportView struct {
	Report    ReportData `json:"report"`
	Narrative string     `json:"narrative"`
}
