package employee

type EmployeeResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
