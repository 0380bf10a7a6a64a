package models

// ReportingPeriod is one of the two half-year appraisal periods.
type ReportingPeriod string

const (
	PeriodFirst  ReportingPeriod = "FIRST"
	PeriodSecond ReportingPeriod = "SECOND"
)

// Governorates lists the eleven Omani governorates a profile may belong to.
var Governorates = []string{
	"مسقط",
	"ظفار",
	"مسندم",
	"البريمي",
	"الداخلية",
	"شمال الباطنة",
	"جنوب الباطنة",
	"شمال الشرقية",
	"جنوب الشرقية",
	"الظاهرة",
	"الوسطى",
}

// EmployeeProfile holds the header data printed on every report.
// SchoolLogo, when present, is a data-URL encoded image.
type EmployeeProfile struct {
	Name        string          `json:"name" bson:"name"`
	JobTitle    string          `json:"jobTitle" bson:"job_title"`
	Institution string          `json:"institution" bson:"institution"`
	ManagerName string          `json:"managerName" bson:"manager_name"`
	Governorate string          `json:"governorate" bson:"governorate"`
	Period      ReportingPeriod `json:"period" bson:"period" validate:"omitempty,oneof=FIRST SECOND"`
	Year        string          `json:"year" bson:"year"`
	SchoolLogo  string          `json:"schoolLogo,omitempty" bson:"school_logo,omitempty"`
}

// DirectorateName derives the display name of the regional education
// directorate from a governorate. It has no storage of its own.
func DirectorateName(governorate string) string {
	if governorate == "" {
		return ""
	}
	return "المديرية العامة للتربية والتعليم بمحافظة " + governorate
}

// Label returns the Arabic display label for a reporting period.
func (p ReportingPeriod) Label() string {
	if p == PeriodSecond {
		return "الثانية"
	}
	return "الأولى"
}
