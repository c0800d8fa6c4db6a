package request

type RequestBookRequest struct {
	DeliveryOption string  `json:"deliveryOption" binding:"required"`
	Notes          *string `json:"notes"`
}

type TransitionRequestRequest struct {
	Status string `json:"status" binding:"required"`
}
