package models

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ProductPage is the catalog listing envelope: total ignores pagination,
// list is the requested page.
type ProductPage struct {
	Total int       `json:"total"`
	List  []Product `json:"list"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
