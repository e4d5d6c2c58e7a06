package pricingcntrl

type predictPriceRequest struct {
	Year     *float64 `json:"year" validate:"required"`
	Mileage  *float64 `json:"mileage" validate:"required"`
	MaxPower *float64 `json:"max_power" validate:"required"`
}

type predictPriceResponse struct {
	Result    string   `json:"result"`
	Price     *float64 `json:"price,omitempty"`
	ErrorKind string   `json:"error_kind,omitempty"`
}

// pricePage is bound to the index view. Field values are echoed back as typed.
type pricePage struct {
	Year     string
	Mileage  string
	MaxPower string
	Result   string
}
