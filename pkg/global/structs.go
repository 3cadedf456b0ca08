package global

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type APIResponse struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

func ErrorResponse(message string, errors []ValidationError) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// Settings carries store-wide configuration that collaborators receive
// explicitly instead of reading ambient state.
type Settings struct {
	StoreName   string
	AdminEmail  string
	FromAddress string
}

func LoadSettings() Settings {
	return Settings{
		StoreName:   GetEnvOrDefault("STORE_NAME", "Flora & Form"),
		AdminEmail:  GetEnvOrDefault("ADMIN_EMAIL", "orders@floraform.ca"),
		FromAddress: GetEnvOrDefault("EMAIL_FROM", "Flora & Form <onboarding@resend.dev>"),
	}
}
