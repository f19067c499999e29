package dto

type CompleteChecklistItemRequest struct {
	ChecklistID string `json:"checklistId" binding:"required"`
	ItemID      string `json:"itemId" binding:"required"`
}

// StatsQuery dates are YYYY-MM-DD in server-local time.
type StatsQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
