package gormstore

import "time"

// productRow mirrors the products table of the back-office store
type productRow struct {
	ID           uint   `gorm:"primary_key"`
	ProductCode  string `gorm:"column:product_code;unique_index"`
	ProductName  string `gorm:"column:product_name"`
	CurrentStock int64  `gorm:"column:current_stock"`
	UnitSeconds  int    `gorm:"column:production_time_per_unit"`
	Timing       string `gorm:"column:production_timing"`
	MinBatch     int64  `gorm:"column:minimum_production_quantity"`
}

func (productRow) TableName() string { return "products" }

// salesRow mirrors the sales table: one row per product per sale date
type salesRow struct {
	ID          uint      `gorm:"primary_key"`
	ProductCode string    `gorm:"column:product_code;index"`
	SaleDate    time.Time `gorm:"column:sale_date;index"`
	Quantity    int64     `gorm:"column:quantity"`
}

func (salesRow) TableName() string { return "sales" }

// scheduleRow mirrors the schedules table written once per run
type scheduleRow struct {
	ID          uint      `gorm:"primary_key"`
	WeekStart   time.Time `gorm:"column:week_start;index"`
	WeekEnd     time.Time `gorm:"column:week_end"`
	DayLabel    string    `gorm:"column:day_of_week"`
	Shift       string    `gorm:"column:shift"`
	ProductCode string    `gorm:"column:product_code"`
	ProductName string    `gorm:"column:product"`
	Quantity    int64     `gorm:"column:quantity"`
	Hours       float64   `gorm:"column:production_time"`
	Reason      string    `gorm:"column:reason"`
	Urgency     int       `gorm:"column:urgency"`
}

func (scheduleRow) TableName() string { return "schedules" }
