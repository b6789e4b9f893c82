package models

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Коды нарушений
const (
	IssueInsufficientRest     = "insufficient_rest"
	IssueMaxHours             = "max_hours"
	IssueWeeklyRest           = "weekly_rest"
	IssueSaturdayCompensation = "saturday_compensation"
	IssueSundayCompensation   = "sunday_compensation"
	IssueFourthSunday         = "fourth_sunday"
	IssueUnmarkedDay          = "unmarked_day"
)

// Issue - результат верификации. Чистое выходное значение, после создания
// не изменяется.
type Issue struct {
	Type       Severity `json:"type"`
	Issue      string   `json:"issue,omitempty"`
	EmployeeID string   `json:"employeeId,omitempty"`
	DateKeys   []string `json:"dateKeys,omitempty"`
	Message    string   `json:"message"`
	Blocking   bool     `json:"blocking,omitempty"`
}

// HasBlocking сообщает, есть ли в списке блокирующие экспорт нарушения
func HasBlocking(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Blocking {
			return true
		}
	}
	return false
}
