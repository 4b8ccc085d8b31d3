package request

type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type CustomerInfoRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Country   *string `json:"country,omitempty"`
}

type PaymentInfoRequest struct {
	CardLast4 *string `json:"cardLast4,omitempty"`
	CardType  *string `json:"cardType,omitempty"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// CreateOrderRequest accepts both guests (GuestID) and logged-in users
// (UserID); both may be absent.
type CreateOrderRequest struct {
	Items        []OrderItemRequest  `json:"items" validate:"required,min=1,dive"`
	Total        float64             `json:"total" validate:"required,gt=0"`
	CustomerInfo CustomerInfoRequest `json:"customerInfo" validate:"required"`
	PaymentInfo  PaymentInfoRequest  `json:"paymentInfo" validate:"required"`
	GuestID      *string             `json:"guestId,omitempty"`
	UserID       *string             `json:"userId,omitempty"`
}
