package models

// The command payloads below use pointer fields so a PATCH-style update can
// distinguish "leave unchanged" from "set to the zero value". A weight of 0
// is a meaningful value, so zero-checking would not do.

// ProfileFieldUpdate replaces a single profile field by name.
type ProfileFieldUpdate struct {
	Field string `json:"field" validate:"required,oneof=name jobTitle institution managerName governorate period year schoolLogo"`
	Value string `json:"value"`
}

// ObjectiveUpdate merges the provided fields into an existing objective.
type ObjectiveUpdate struct {
	Text           *string                  `json:"text,omitempty"`
	Classification *ObjectiveClassification `json:"classification,omitempty" validate:"omitempty,oneof=ANNUAL_PLAN TASKS DEVELOPMENT"`
	Weight         *int                     `json:"weight,omitempty"`
}

// ResultUpdate merges the provided fields into an existing result.
type ResultUpdate struct {
	Name              *string        `json:"name,omitempty"`
	Weight            *int           `json:"weight,omitempty"`
	IndicatorType     *IndicatorType `json:"indicatorType,omitempty" validate:"omitempty,oneof=NUMBER PERCENTAGE DATE"`
	TargetLow         *string        `json:"targetLow,omitempty"`
	TargetExpected    *string        `json:"targetExpected,omitempty"`
	TargetHigh        *string        `json:"targetHigh,omitempty"`
	ActualPerformance *string        `json:"actualPerformance,omitempty"`
}

// EvidenceInput is the JSON body for non-binary evidence. IMAGE and PDF
// evidence arrives through the multipart upload endpoint instead.
type EvidenceInput struct {
	Type    EvidenceType `json:"type" validate:"required,oneof=LINK VIDEO TEXT"`
	Content string       `json:"content" validate:"required"`
	Notes   string       `json:"notes,omitempty"`
}
