package dto

type UpdateShiftRequest struct {
	ShiftLocation *string `json:"shiftLocation"`
	ShiftDate     string  `json:"shiftDate"`
}
