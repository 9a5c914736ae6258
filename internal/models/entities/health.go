package entities

type ServiceStatus struct {
	Status       string `json:"status"`
	Details      string `json:"details"`
	ResponseTime string `json:"response_time"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}
