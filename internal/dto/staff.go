package dto

type CreateStaffRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type StaffDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
