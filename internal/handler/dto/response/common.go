package response

import "github.com/google/uuid"

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
