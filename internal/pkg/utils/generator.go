package utils

import (
	"crypto/rand"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"math/big"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func randomDigits(n int) string {
	max := big.NewInt(10)
	digits := make([]byte, n)
	for i := range digits {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits)
}

// GeneratePatientNumber returns PAT followed by the last six digits of the current unix
// millisecond timestamp and three random digits.
func GeneratePatientNumber(now time.Time) string {
	millis := fmt.Sprintf("%06d", now.UnixMilli()%1000000)
	return constvars.PatientNumberPrefix + millis + randomDigits(3)
}

// GenerateInvoiceNumber returns INV followed by the unix millisecond timestamp and three random
// digits.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("%s%d%s", constvars.InvoiceNumberPrefix, now.UnixMilli(), randomDigits(3))
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateObjectName builds a collision free object key under prefix. The sanitized original
// file name is kept after the uuid so listings can show it again.
func GenerateObjectName(prefix, fileName string) string {
	base := strings.ToLower(filepath.Base(fileName))
	base = objectNameReplacer.Replace(base)
	return prefix + uuid.NewString() + "_" + base
}

// OriginalFileName reverses GenerateObjectName.
func OriginalFileName(objectName string) string {
	base := path.Base(objectName)
	if len(base) > uuidLength+1 && base[uuidLength] == '_' {
		if _, err := uuid.Parse(base[:uuidLength]); err == nil {
			return base[uuidLength+1:]
		}
	}
	return base
}

const uuidLength = 36

var objectNameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "?", "", "#", "", "%", "")
