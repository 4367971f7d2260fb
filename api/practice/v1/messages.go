// Package practicev1 is the wire contract of cabinet.v1.PracticeService.
//
// Messages are JSON-encoded (content-subtype "json"); dates use YYYY-MM-DD.
package practicev1

type Patient struct {
	Id              int32    `json:"id"`
	Name            string   `json:"name"`
	Age             int32    `json:"age"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	LastVisit       string   `json:"lastVisit"`
	NextAppointment string   `json:"nextAppointment,omitempty"`
	Status          string   `json:"status"`
	StatusLabel     string   `json:"statusLabel"`
	Treatments      []string `json:"treatments"`
}

type Session struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Treatment struct {
	Id          int32      `json:"id"`
	Patient     string     `json:"patient"`
	Type        string     `json:"type"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"statusLabel"`
	Progress    int32      `json:"progress"`
	NextSession string     `json:"nextSession,omitempty"`
	Cost        float64    `json:"cost"`
	Notes       string     `json:"notes"`
	Sessions    []*Session `json:"sessions"`
}

type Appointment struct {
	Id       int32  `json:"id"`
	Date     string `json:"date,omitempty"`
	Start    string `json:"start"`
	Duration int32  `json:"duration"`
	Patient  string `json:"patient"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

// Block is an appointment placed on the day grid, in pixels.
type Block struct {
	Appointment *Appointment `json:"appointment"`
	Top         float64      `json:"top"`
	Height      float64      `json:"height"`
}

type DaySummary struct {
	Total     int32 `json:"total"`
	Confirmed int32 `json:"confirmed"`
	Waiting   int32 `json:"waiting"`
	Urgent    int32 `json:"urgent"`
}

type ListPatientsRequest struct {
	Query string `json:"query"`
}

type ListPatientsResponse struct {
	Patients []*Patient `json:"patients"`
	Total    int32      `json:"total"`
	NotFound string     `json:"notFound,omitempty"`
}

type ListTreatmentsRequest struct {
	Query  string `json:"query"`
	Status string `json:"status"` // "", "all" or a status code
}

type ListTreatmentsResponse struct {
	Treatments []*Treatment `json:"treatments"`
	Total      int32        `json:"total"`
	NotFound   string       `json:"notFound,omitempty"`
}

type GetPlanningRequest struct {
	Date string `json:"date"`
	View string `json:"view"` // "day" or "week"
}

type GetPlanningResponse struct {
	Date     string         `json:"date"`
	Label    string         `json:"label"`
	View     string         `json:"view"`
	Previous string         `json:"previous"`
	Next     string         `json:"next"`
	Slots    []string       `json:"slots"`
	Blocks   []*Block       `json:"blocks"`
	Summary  *DaySummary    `json:"summary"`
	Upcoming []*Appointment `json:"upcoming"`
}

type GetDashboardRequest struct {
	Date string `json:"date"`
}

type DashboardStats struct {
	TotalPatients     int32   `json:"totalPatients"`
	TodayAppointments int32   `json:"todayAppointments"`
	Waiting           int32   `json:"waiting"`
	MonthRevenue      float64 `json:"monthRevenue"`
	Occupancy         float64 `json:"occupancy"`
}

type GetDashboardResponse struct {
	Date           string          `json:"date"`
	Stats          *DashboardStats `json:"stats"`
	Appointments   []*Appointment  `json:"appointments"`
	RecentPatients []*Patient      `json:"recentPatients"`
}
