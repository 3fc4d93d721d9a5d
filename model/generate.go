package model

// GeneratePlanResponse is shared by the four generation endpoints. RequestData
// is only echoed by the v2 endpoints.
type GeneratePlanResponse struct {
	Status      bool           `json:"status"`
	Message     string         `json:"message"`
	RequestData map[string]any `json:"requestData,omitempty"`
	Routine     any            `json:"routine"`
}
