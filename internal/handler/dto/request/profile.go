package request

import (
	"time"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrInvalidDateOfBirth = errs.Validation("dob must be formatted as YYYY-MM-DD")

type SaveDetailsRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	PhoneNumber *string `json:"phoneNumber"`
	Dob         *string `json:"dob"`
}

func (r *SaveDetailsRequest) ToDomain() (user.DetailsInput, error) {
	in := user.DetailsInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		PhoneNumber: r.PhoneNumber,
	}
	if r.Dob != nil && *r.Dob != "" {
		dob, err := time.Parse(DateLayout, *r.Dob)
		if err != nil {
			return user.DetailsInput{}, errs.Wrap(ErrInvalidDateOfBirth, err.Error())
		}
		in.DateOfBirth = &dob
	}
	return in, nil
}
