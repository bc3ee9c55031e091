package storage

type Nurse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	EmployeeNo string `json:"employee_no"`
	Ward       string `json:"ward"`
	Rank       string `json:"rank"`
	IsActive   bool   `json:"is_active"`
}
