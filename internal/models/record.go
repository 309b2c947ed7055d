package models

import "time"

// DetectedColumns maps a canonical financial category (e.g. "revenus") to the
// original header of the column that satisfied it. A category with no matching
// column is absent from the map; one header may serve several categories.
type DetectedColumns map[string]string

// KPIReport holds the five computed financial indicators. All fields are
// always present; an indicator that could not be derived is 0.
type KPIReport struct {
	RevenusTotaux float64 `json:"revenus_totaux" bson:"revenus_totaux"`
	EBITDA        float64 `json:"ebitda" bson:"ebitda"`
	ResultatNet   float64 `json:"resultat_net" bson:"resultat_net"`
	FreeCashFlow  float64 `json:"free_cash_flow" bson:"free_cash_flow"`
	MargeNette    float64 `json:"marge_nette" bson:"marge_nette"`
}

// FinancialRecord is the persisted unit of one analyzed upload: the raw rows
// plus everything derived from them.
type FinancialRecord struct {
	ID              string          `json:"id" bson:"id"`
	Filename        string          `json:"filename" bson:"filename"`
	UploadDate      time.Time       `json:"upload_date" bson:"upload_date"`
	Headers         []string        `json:"headers" bson:"headers"`
	RawData         []Row           `json:"raw_data" bson:"raw_data"`
	DetectedColumns DetectedColumns `json:"detected_columns" bson:"detected_columns"`
	KPIs            KPIReport       `json:"kpis" bson:"kpis"`
}
