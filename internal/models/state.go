package models

// StateDocument - формат файла сохранения/загрузки состояния:
// график, сотрудники, шаблоны смен и правила в одном JSON-документе.
type StateDocument struct {
	Schedule        Schedule         `json:"schedule"`
	Employees       []Employee       `json:"employees"`
	ShiftTemplates  []ShiftTemplate  `json:"shiftTemplates,omitempty"`
	SchedulingRules *SchedulingRules `json:"schedulingRules,omitempty"`
}
