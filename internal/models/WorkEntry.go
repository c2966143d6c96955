// internal/models/workentry.go
package models

// WorkEntry is a sanctioned work item. One work can span several stations,
// so the association goes through the workentry_stations join table keyed by
// the station code.
type WorkEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SN                 int    `json:"sn"`
	PID                string `json:"pid"`
	PH                 int    `json:"ph"`
	YearOfSanction     string `json:"year_of_sanction"`
	DateOfSanction     string `json:"date_of_sanction"`
	Status             string `json:"status"`
	IsUmbrella         bool   `json:"is_umbrella"`
	ParentUmbrellaWork string `json:"parent_umbrella_work"`
	NameOfWork         string `json:"name_of_work"`
	ExecutingAgency    string `json:"executing_agency"`

	CostEngg  float64 `json:"cost_engg"`
	CostElecG float64 `json:"cost_elec_g"`
	CostSnt   float64 `json:"cost_snt"`
	CostTrd   float64 `json:"cost_trd"`
	CostOther float64 `json:"cost_other"`

	TotalExpenditure  float64 `json:"total_expenditure"`
	FinancialProgress float64 `json:"financial_progress"`
	PhysicalProgress  float64 `json:"physical_progress"`

	RemarksEngineering   string `json:"remarks_engineering"`
	RemarksElectricalG   string `json:"remarks_electrical_g"`
	RemarksElectricalTrd string `json:"remarks_electrical_trd"`
	RemarksSnt           string `json:"remarks_snt"`

	Stations []Station `gorm:"many2many:workentry_stations;" json:"stations,omitempty"`
}
