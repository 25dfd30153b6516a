package responses

import (
	"time"

	"rodacerta/frotagest/internal/models/dtos"
)

type APIResponse[T any] struct {
	Status    string             `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	Error     *dtos.ErrorPayload `json:"error,omitempty"`
	Data      *T                 `json:"data,omitempty"`
}
