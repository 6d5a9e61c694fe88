package health

// Response represents the health check response
type Response struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Version      string `json:"version,omitempty"`
	Environment  string `json:"environment"`
	ExposeErrors bool   `json:"expose_errors"`
}

type PingResponse struct {
	Message string `json:"message"`
}
