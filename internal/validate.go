package internal

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegistrationInput is the public form payload. Consent flags travel as the
// strings "true"/"false", matching the registration form.
type RegistrationInput struct {
	FirstName          string  `json:"firstName" validate:"required,min=2"`
	LastName           string  `json:"lastName" validate:"required,min=2"`
	Email              string  `json:"email" validate:"required,email"`
	Distance           string  `json:"distance" validate:"required,oneof=5km 10km"`
	Country            string  `json:"country"`
	City               string  `json:"city" validate:"required"`
	Address            string  `json:"address" validate:"required,min=5"`
	Phone              string  `json:"phone" validate:"required,min=10"`
	EmergencyPhone     *string `json:"emergencyPhone"`
	Club               *string `json:"club"`
	IsNotInClub        string  `json:"isNotInClub" validate:"omitempty,oneof=true false"`
	Profession         *string `json:"profession"`
	MedicalCertificate string  `json:"medicalCertificate" validate:"required,eq=true"`
	TermsAgreement     string  `json:"termsAgreement" validate:"required,eq=true"`
}

// RegistrationUpdate is a partial admin edit: nil (or empty) fields are left
// unchanged, supplied fields are checked against the same rules as creation.
type RegistrationUpdate struct {
	FirstName          *string `json:"firstName" validate:"omitempty,min=2"`
	LastName           *string `json:"lastName" validate:"omitempty,min=2"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Distance           *string `json:"distance" validate:"omitempty,oneof=5km 10km"`
	Country            *string `json:"country"`
	City               *string `json:"city"`
	Address            *string `json:"address" validate:"omitempty,min=5"`
	Phone              *string `json:"phone" validate:"omitempty,min=10"`
	EmergencyPhone     *string `json:"emergencyPhone"`
	Club               *string `json:"club"`
	IsNotInClub        *string `json:"isNotInClub" validate:"omitempty,oneof=true false"`
	Profession         *string `json:"profession"`
	MedicalCertificate *string `json:"medicalCertificate" validate:"omitempty,eq=true"`
	TermsAgreement     *string `json:"termsAgreement" validate:"omitempty,eq=true"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"firstName":          "Имя должно содержать минимум 2 символа",
	"lastName":           "Фамилия должна содержать минимум 2 символа",
	"email":              "Введите корректный email адрес",
	"distance":           "Выберите дистанцию",
	"country":            "Укажите страну",
	"city":               "Укажите город",
	"address":            "Укажите полный адрес",
	"phone":              "Укажите корректный номер телефона",
	"isNotInClub":        "Некорректное значение",
	"medicalCertificate": "Подтвердите наличие медицинской справки",
	"termsAgreement":     "Необходимо согласие с условиями участия",
}

func toFieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "Некорректные данные"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fieldMessages[fe.Field()]
		if msg == "" {
			msg = "Некорректное значение"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// ValidateRegistration is a pure check: it either yields a normalized record
// (without id/createdAt) or the full list of violated fields.
func ValidateRegistration(in RegistrationInput) (Registration, []FieldError) {
	if err := validate.Struct(in); err != nil {
		return Registration{}, toFieldErrors(err)
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = "Россия"
	}
	notInClub := in.IsNotInClub
	if notInClub == "" {
		notInClub = "false"
	}

	return Registration{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Distance:           in.Distance,
		Country:            country,
		City:               in.City,
		Address:            in.Address,
		Phone:              in.Phone,
		EmergencyPhone:     in.EmergencyPhone,
		Club:               in.Club,
		IsNotInClub:        notInClub,
		Profession:         in.Profession,
		MedicalCertificate: in.MedicalCertificate,
		TermsAgreement:     in.TermsAgreement,
	}, nil
}

// Validate checks only the supplied fields of a partial update.
func (u RegistrationUpdate) Validate() []FieldError {
	if err := validate.Struct(u); err != nil {
		return toFieldErrors(err)
	}
	return nil
}

func setStr(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// Apply merges the supplied fields into an existing record. Required fields
// ignore empty strings; optional fields take any supplied value.
func (u RegistrationUpdate) Apply(r *Registration) {
	setStr(&r.FirstName, u.FirstName)
	setStr(&r.LastName, u.LastName)
	setStr(&r.Email, u.Email)
	setStr(&r.Distance, u.Distance)
	setStr(&r.Country, u.Country)
	setStr(&r.City, u.City)
	setStr(&r.Address, u.Address)
	setStr(&r.Phone, u.Phone)
	if u.EmergencyPhone != nil {
		r.EmergencyPhone = u.EmergencyPhone
	}
	if u.Club != nil {
		r.Club = u.Club
	}
	setStr(&r.IsNotInClub, u.IsNotInClub)
	if u.Profession != nil {
		r.Profession = u.Profession
	}
	setStr(&r.MedicalCertificate, u.MedicalCertificate)
	setStr(&r.TermsAgreement, u.TermsAgreement)
}
