package response

type LoginResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Designation string `json:"designation"`
	PIN         string `json:"pin"`
	Token       string `json:"token"`
}
