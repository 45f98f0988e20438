package entity

type ChatRequest struct {
	Message  string
	Lang     string
	ClientID string
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ReportRequest struct {
	ChatContext string
	Date        string
	Lang        string
	ClientID    string
}

type ReportResponse struct {
	Report string `json:"report"`
}

type ReminderRequest struct {
	To      string
	Subject string
	Body    string
}

type Clinic struct {
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Website    string   `json:"website"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
