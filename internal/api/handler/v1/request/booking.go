package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEmptyBooking = errors.New("a booking must include at least one guest")

type CreateBookingRequest struct {
	Couples int `json:"couples"`
	Ladies  int `json:"ladies"`
	Stags   int `json:"stags"`
}

func (req *CreateBookingRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Couples, validation.Min(0)),
		validation.Field(&req.Ladies, validation.Min(0)),
		validation.Field(&req.Stags, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	if req.Couples+req.Ladies+req.Stags == 0 {
		return errEmptyBooking
	}

	return nil
}
