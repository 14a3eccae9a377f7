package models

import "github.com/shopspring/decimal"

// HistoryEntry records one generated salary file in the ledger.
type HistoryEntry struct {
	RunID         string          `yaml:"run_id" json:"run_id"`
	FileName      string          `yaml:"file_name" json:"file_name"`
	FilePath      string          `yaml:"file_path" json:"file_path"`
	SalaryMonth   string          `yaml:"salary_month" json:"salary_month"`
	CreationDate  string          `yaml:"creation_date" json:"creation_date"`
	CreationTime  string          `yaml:"creation_time" json:"creation_time"`
	EmployeeCount int             `yaml:"employee_count" json:"employee_count"`
	TotalAmount   decimal.Decimal `yaml:"total_amount" json:"total_amount"`
	Currency      string          `yaml:"currency" json:"currency"`
	EmployerID    string          `yaml:"employer_id" json:"employer_id"`
	InputPath     string          `yaml:"input_path" json:"input_path"`
	GeneratedAt   string          `yaml:"generated_at" json:"generated_at"` // RFC 3339
}
