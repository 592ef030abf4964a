package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexContainAtLeastOneDigit       = `.*\d.*`
	RegexBookingTime                  = `^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`
	RegexPhoneNumberGeneral           = `^\+?[0-9]{8,15}$`
)
