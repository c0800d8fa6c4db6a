package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is what the auth boundary hands to the core: who is calling and whether they may administer.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) IsAdmin() bool { return i.Role.IsAdmin() }

// Details is the optional profile attached to a user.
// Absent fields are nil and persist as NULL; a blank string never reaches storage.
type Details struct {
	userID      uuid.UUID
	firstName   *string
	lastName    *string
	address     *string
	city        *string
	country     *string
	phoneNumber *string
	dateOfBirth *time.Time
	updatedAt   time.Time
}

type DetailsInput struct {
	FirstName   *string
	LastName    *string
	Address     *string
	City        *string
	Country     *string
	PhoneNumber *string
	DateOfBirth *time.Time
}

func NewDetails(userID uuid.UUID, in DetailsInput, now time.Time) (*Details, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUserID
	}
	return &Details{
		userID:      userID,
		firstName:   normalize(in.FirstName),
		lastName:    normalize(in.LastName),
		address:     normalize(in.Address),
		city:        normalize(in.City),
		country:     normalize(in.Country),
		phoneNumber: normalize(in.PhoneNumber),
		dateOfBirth: dateOnly(in.DateOfBirth),
		updatedAt:   now,
	}, nil
}

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func (d *Details) UserID() uuid.UUID       { return d.userID }
func (d *Details) FirstName() *string      { return d.firstName }
func (d *Details) LastName() *string       { return d.lastName }
func (d *Details) Address() *string        { return d.address }
func (d *Details) City() *string           { return d.city }
func (d *Details) Country() *string        { return d.country }
func (d *Details) PhoneNumber() *string    { return d.phoneNumber }
func (d *Details) DateOfBirth() *time.Time { return d.dateOfBirth }
func (d *Details) UpdatedAt() time.Time    { return d.updatedAt }
