package syncid

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
)

// Sync ID — короткий непрозрачный идентификатор, адресующий удаленную
// копию workspace. Любой обладатель ID имеет полный доступ на чтение и
// запись; аутентификации нет по контракту системы.

const (
	// GeneratedLen длина генерируемых Sync ID
	GeneratedLen = 8
	// MinLen минимальная длина нормализованного Sync ID
	MinLen = 6
	// MaxLen максимальная длина нормализованного Sync ID
	MaxLen = 20
)

// alphabet допустимые символы генерируемых Sync ID
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ErrInvalidFormat означает, что после нормализации идентификатор не
// укладывается в границы длины
var ErrInvalidFormat = errors.New("invalid sync id format: use 6-20 alphanumeric characters")

// stripPattern удаляет все символы вне [a-z0-9]
var stripPattern = regexp.MustCompile(`[^a-z0-9]`)

// Generate возвращает новый случайный Sync ID: 8 строчных
// буквенно-цифровых символов. Уникальность локально не проверяется;
// защита от коллизий — рекомендательная проверка существования на
// сервере в точке вызова.
func Generate() string {
	buf := make([]byte, GeneratedLen)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand на поддерживаемых платформах не падает;
			// падение здесь означает сломанное окружение
			panic("syncid: crypto/rand unavailable: " + err.Error())
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}

// Normalize приводит ввод к каноническому виду: нижний регистр, все
// символы вне [a-z0-9] отбрасываются, длина результата должна быть в
// пределах [6, 20]. Возвращает ErrInvalidFormat при нарушении границ.
// Нормализация идемпотентна: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) (string, error) {
	cleaned := stripPattern.ReplaceAllString(toLower(raw), "")
	if len(cleaned) < MinLen || len(cleaned) > MaxLen {
		return "", ErrInvalidFormat
	}
	return cleaned, nil
}

// toLower понижает регистр только ASCII букв: другие символы все равно
// будут отброшены stripPattern
func toLower(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return string(buf)
}
