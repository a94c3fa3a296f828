package models

// StatsResponse агрегированная статистика для дашборда администратора
type StatsResponse struct {
	TotalAppointments int             `json:"totalAppointments"`
	ByStatus          StatusBreakdown `json:"byStatus"`
	TodayCount        int             `json:"todayCount"`
	MonthRevenue      float64         `json:"monthRevenue"`
	ActiveServices    int             `json:"activeServices"`
}

// StatusBreakdown количество записей по каждому статусу
type StatusBreakdown struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}
