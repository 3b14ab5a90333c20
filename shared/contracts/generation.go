package contracts

// Form field names posted by the page.
const (
	FormAPIKey          = "api_key"
	FormDatabaseContext = "context"
	FormQuestion        = "question"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	APIKey          string `json:"apiKey"`
	DatabaseContext string `json:"databaseContext"`
	Question        string `json:"question"`
}

type GenerateResponse struct {
	ID          string `json:"id"`
	SQLCode     string `json:"sqlCode"`
	Explanation string `json:"explanation"`
}
