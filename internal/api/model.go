package api

type assessRequest struct {
	Password string `json:"password" binding:"required"`
}
