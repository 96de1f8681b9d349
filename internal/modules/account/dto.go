package account

type AddAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"` // active|error
}
