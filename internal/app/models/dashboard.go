package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalPatients        int64            `json:"total_patients"`
	TotalDoctors         int64            `json:"total_doctors"`
	TotalStaff           int64            `json:"total_staff"`
	TodayAppointments    int64            `json:"today_appointments"`
	AppointmentsByStatus map[string]int64 `json:"appointments_by_status"`
	MonthlyRevenue       decimal.Decimal  `json:"monthly_revenue"`
	MonthlyBillCount     int64            `json:"monthly_bill_count"`
	PendingAmount        decimal.Decimal  `json:"pending_amount"`
	NewPatientsThisWeek  int64            `json:"new_patients_this_week"`
}

type RevenueByMethod struct {
	PaymentMethod string          `json:"payment_method"`
	Count         int64           `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

type DailyRevenue struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type RevenueStats struct {
	Days          int               `json:"days"`
	TotalRevenue  decimal.Decimal   `json:"total_revenue"`
	PaidAmount    decimal.Decimal   `json:"paid_amount"`
	PendingAmount decimal.Decimal   `json:"pending_amount"`
	ByMethod      []RevenueByMethod `json:"by_method"`
	Daily         []DailyRevenue    `json:"daily"`
}

type DoctorPerformance struct {
	DoctorID              int64  `json:"doctor_id"`
	DoctorName            string `json:"doctor_name"`
	SpecializationName    string `json:"specialization_name"`
	TotalAppointments     int64  `json:"total_appointments"`
	CompletedAppointments int64  `json:"completed_appointments"`
}
