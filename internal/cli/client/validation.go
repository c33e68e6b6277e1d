package client

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the backend's date format.
const DateLayout = "2006-01-02"

// MaxImageSize is the largest upload the backend accepts.
const MaxImageSize = 5 * 1024 * 1024

// MaxGalleryImages is how many images a hotel or room gallery holds.
const MaxGalleryImages = 10

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateStayDates, CreateBookingRequest{})
	return v
}

func validateStayDates(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateBookingRequest)
	checkIn, errIn := time.Parse(DateLayout, req.CheckIn)
	checkOut, errOut := time.Parse(DateLayout, req.CheckOut)
	if errIn != nil || errOut != nil {
		return // field tags report the format problem
	}
	if !checkOut.After(checkIn) {
		sl.ReportError(req.CheckOut, "CheckOut", "check_out", "after_check_in", "")
	}
}

func (c *Client) check(what string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("invalid %s: %w", what, err)
	}
	return nil
}
