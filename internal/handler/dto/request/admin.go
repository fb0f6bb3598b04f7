package request

type DecisionRequest struct {
	Notes string `json:"admin_notes" binding:"max=1000"`
}
