package booking

type CreateBookingReq struct {
	ItemID    string `json:"item_id" validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected completed cancelled"`
}
