package internal

import "testing"

func validInput() RegistrationInput {
	return RegistrationInput{
		FirstName:          "Анна",
		LastName:           "Иванова",
		Email:              "anna@example.com",
		Distance:           "5km",
		Country:            "Россия",
		City:               "Москва",
		Address:            "ул. Ленина, д. 1",
		Phone:              "+79161234567",
		MedicalCertificate: "true",
		TermsAgreement:     "true",
	}
}

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateRegistrationOK(t *testing.T) {
	rec, errs := ValidateRegistration(validInput())
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.FirstName != "Анна" || rec.Distance != "5km" {
		t.Fatalf("fields not carried over: %+v", rec)
	}
	if rec.IsNotInClub != "false" {
		t.Fatalf("isNotInClub not defaulted: %q", rec.IsNotInClub)
	}
}

func TestValidateRegistrationRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*RegistrationInput)
	}{
		{"firstName", func(in *RegistrationInput) { in.FirstName = "" }},
		{"firstName", func(in *RegistrationInput) { in.FirstName = "А" }},
		{"lastName", func(in *RegistrationInput) { in.LastName = "" }},
		{"email", func(in *RegistrationInput) { in.Email = "" }},
		{"email", func(in *RegistrationInput) { in.Email = "not-an-email" }},
		{"distance", func(in *RegistrationInput) { in.Distance = "" }},
		{"city", func(in *RegistrationInput) { in.City = "" }},
		{"address", func(in *RegistrationInput) { in.Address = "абв" }},
		{"phone", func(in *RegistrationInput) { in.Phone = "12345" }},
		{"medicalCertificate", func(in *RegistrationInput) { in.MedicalCertificate = "" }},
		{"medicalCertificate", func(in *RegistrationInput) { in.MedicalCertificate = "false" }},
		{"termsAgreement", func(in *RegistrationInput) { in.TermsAgreement = "" }},
		{"termsAgreement", func(in *RegistrationInput) { in.TermsAgreement = "false" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, errs := ValidateRegistration(in)
		if !hasFieldError(errs, tc.field) {
			t.Errorf("expected error for %s, got %v", tc.field, errs)
		}
	}
}

func TestValidateRegistrationDistanceEnum(t *testing.T) {
	for _, d := range []string{"5km", "10km"} {
		in := validInput()
		in.Distance = d
		if _, errs := ValidateRegistration(in); errs != nil {
			t.Errorf("distance %q rejected: %v", d, errs)
		}
	}
	for _, d := range []string{"3km", "42km", "marathon"} {
		in := validInput()
		in.Distance = d
		if _, errs := ValidateRegistration(in); !hasFieldError(errs, "distance") {
			t.Errorf("distance %q accepted", d)
		}
	}
}

func TestValidateRegistrationReportsAllFields(t *testing.T) {
	in := validInput()
	in.FirstName = ""
	in.Email = "bad"
	in.TermsAgreement = "false"
	_, errs := ValidateRegistration(in)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	for _, f := range []string{"firstName", "email", "termsAgreement"} {
		if !hasFieldError(errs, f) {
			t.Errorf("missing error for %s", f)
		}
	}
}

func TestValidateRegistrationCountryDefault(t *testing.T) {
	in := validInput()
	in.Country = ""
	rec, errs := ValidateRegistration(in)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.Country != "Россия" {
		t.Fatalf("country = %q, want Россия", rec.Country)
	}
}

func TestRegistrationUpdatePartial(t *testing.T) {
	rec, _ := ValidateRegistration(validInput())

	newCity := "Казань"
	upd := RegistrationUpdate{City: &newCity}
	if errs := upd.Validate(); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	upd.Apply(&rec)
	if rec.City != "Казань" {
		t.Fatalf("city not applied: %q", rec.City)
	}
	if rec.FirstName != "Анна" || rec.Phone != "+79161234567" {
		t.Fatalf("untouched fields changed: %+v", rec)
	}
}

func TestRegistrationUpdateRules(t *testing.T) {
	bad := "x"
	upd := RegistrationUpdate{FirstName: &bad}
	if errs := upd.Validate(); !hasFieldError(errs, "firstName") {
		t.Fatalf("short firstName accepted in update")
	}

	badDist := "7km"
	upd = RegistrationUpdate{Distance: &badDist}
	if errs := upd.Validate(); !hasFieldError(errs, "distance") {
		t.Fatalf("bad distance accepted in update")
	}
}
