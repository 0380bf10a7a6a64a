package models

// ObjectiveClassification is one of the three Ijada objective categories.
type ObjectiveClassification string

const (
	ClassificationAnnualPlan  ObjectiveClassification = "ANNUAL_PLAN"
	ClassificationTasks       ObjectiveClassification = "TASKS"
	ClassificationDevelopment ObjectiveClassification = "DEVELOPMENT"
)

// ClassificationLabels maps a classification to its Arabic display label.
var ClassificationLabels = map[ObjectiveClassification]string{
	ClassificationAnnualPlan:  "الخطة السنوية",
	ClassificationTasks:       "هدف يساهم في تحقيق المهام والاختصاصات الوظيفية",
	ClassificationDevelopment: "تطوير وتحسين العمل",
}

// IndicatorType controls how a result's figures are formatted for input;
// it never changes how targets or actuals are stored.
type IndicatorType string

const (
	IndicatorNumber     IndicatorType = "NUMBER"
	IndicatorPercentage IndicatorType = "PERCENTAGE"
	IndicatorDate       IndicatorType = "DATE"
)

// EvidenceType tags the kind of payload an evidence item carries.
type EvidenceType string

const (
	EvidenceImage EvidenceType = "IMAGE"
	EvidenceLink  EvidenceType = "LINK"
	EvidenceVideo EvidenceType = "VIDEO"
	EvidencePDF   EvidenceType = "PDF"
	EvidenceText  EvidenceType = "TEXT"
)

// Evidence is a single supporting attachment on a result. Content is opaque
// to the core: a data-URL for IMAGE/PDF, a URL for LINK/VIDEO, and a
// transcript for TEXT. Evidence is appended or removed, never edited.
type Evidence struct {
	ID      string       `json:"id" bson:"id"`
	Type    EvidenceType `json:"type" bson:"type" validate:"required,oneof=IMAGE LINK VIDEO PDF TEXT"`
	Content string       `json:"content" bson:"content"`
	Notes   string       `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Result is one measurable outcome under an objective. The three targets and
// the actual performance are deliberately untyped text: depending on the
// indicator they may be dates, percentages, or free-form numbers.
type Result struct {
	ID                string        `json:"id" bson:"id"`
	Name              string        `json:"name" bson:"name"`
	Weight            int           `json:"weight" bson:"weight"`
	IndicatorType     IndicatorType `json:"indicatorType" bson:"indicator_type"`
	TargetLow         string        `json:"targetLow" bson:"target_low"`
	TargetExpected    string        `json:"targetExpected" bson:"target_expected"`
	TargetHigh        string        `json:"targetHigh" bson:"target_high"`
	ActualPerformance string        `json:"actualPerformance" bson:"actual_performance"`
	Evidence          []Evidence    `json:"evidence" bson:"evidence"`
}

// Objective is one appraisal objective with its ordered results. Insertion
// order is meaningful: it drives the 1-based numbering on the report.
type Objective struct {
	ID             string                  `json:"id" bson:"id"`
	Text           string                  `json:"text" bson:"text"`
	Classification ObjectiveClassification `json:"classification" bson:"classification"`
	Weight         int                     `json:"weight" bson:"weight"`
	Results        []Result                `json:"results" bson:"results"`
}

// AppState is the whole tree the state store owns: one profile plus the
// ordered objectives. No entity is shared between parents.
type AppState struct {
	Profile    EmployeeProfile `json:"profile" bson:"profile"`
	Objectives []Objective     `json:"objectives" bson:"objectives"`
}

// NewAppState returns the empty tree used before anything is recorded.
func NewAppState() *AppState {
	return &AppState{
		Profile: EmployeeProfile{
			Period: PeriodFirst,
			Year:   "2025",
		},
		Objectives: []Objective{},
	}
}

// Clone returns a deep copy of the state so callers can project or inspect
// it without holding the store's lock.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		Profile:    s.Profile,
		Objectives: make([]Objective, len(s.Objectives)),
	}
	for i, obj := range s.Objectives {
		copied := obj
		copied.Results = make([]Result, len(obj.Results))
		for j, res := range obj.Results {
			copiedRes := res
			copiedRes.Evidence = append([]Evidence(nil), res.Evidence...)
			copied.Results[j] = copiedRes
		}
		out.Objectives[i] = copied
	}
	return out
}
