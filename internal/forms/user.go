package forms

import "bizdesk/internal/models"

// User form fields.
const (
	FieldID          = "id"
	FieldCreatedAt   = "createdAt"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)

// UserValues fills a form from u. id and createdAt travel as hidden fields.
func UserValues(u models.User) Values {
	v := Values{}
	v.Set(FieldID, formatID(u.ID))
	v.Set(FieldCreatedAt, formatTime(u.CreatedAt))
	v.Set(FieldFirstName, u.FirstName)
	v.Set(FieldLastName, u.LastName)
	v.Set(FieldEmail, u.Email)
	v.Set(FieldPhoneNumber, u.PhoneNumber)
	return v
}

// UserFromValues reads a user back from a form.
func UserFromValues(v Values) (models.User, error) {
	p := &parser{v: v}
	u := models.User{
		Base: models.Base{
			ID:        p.int64(FieldID),
			CreatedAt: p.time(FieldCreatedAt),
		},
		FirstName:   v.Get(FieldFirstName),
		LastName:    v.Get(FieldLastName),
		Email:       v.Get(FieldEmail),
		PhoneNumber: v.Get(FieldPhoneNumber),
	}
	return u, p.err()
}

// UserDraftFromValues reads the create/update body from a form.
func UserDraftFromValues(v Values) (models.UserDraft, error) {
	u, err := UserFromValues(v)
	if err != nil {
		return models.UserDraft{}, err
	}
	return u.Draft(), nil
}
