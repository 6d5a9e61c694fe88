package probe

import "codeberg.org/algopatterns/apierrors/api/rest/pagination"

// one entry of the kind catalogue
type KindResponse struct {
	Name       string `json:"name"`
	StatusCode int    `json:"status_code"`
	Code       string `json:"code,omitempty"`
	Safe       bool   `json:"safe"`
}

type ListKindsResponse struct {
	Kinds      []KindResponse  `json:"kinds"`
	Pagination pagination.Meta `json:"pagination"`
}

// body accepted by the validation probe
type ValidateRequest struct {
	Name  string `json:"name" binding:"required,min=2"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"gte=0,lte=150"`
}

type ValidateResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID string `json:"id"`
}

type WhoAmIResponse struct {
	UserID string `json:"user_id"`
}
