package utils

import (
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	digitRegex       = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	bookingTimeRegex = regexp.MustCompile(constvars.RegexBookingTime)
	phoneRegex       = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("booking_date", validateBookingDate)
	validate.RegisterValidation("booking_time", validateBookingTime)
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("blood_group", validateBloodGroup)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := specialCharRegex.MatchString(password)
	hasUppercase := uppercaseRegex.MatchString(password)
	hasDigit := digitRegex.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase && hasDigit
}

func validateBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateBookingTime(fl validator.FieldLevel) bool {
	return bookingTimeRegex.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateGender(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	}
	return false
}

func validateBloodGroup(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, group := range models.BloodGroups {
		if group == value {
			return true
		}
	}
	return false
}
