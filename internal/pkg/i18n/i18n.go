// Package i18n resolves user-facing message keys to localized strings.
// Locale tables are embedded at build time and immutable afterwards;
// lookups always produce a string, degrading through the default language
// down to a literal sentinel.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used for any unrecognized or absent language tag.
const DefaultLanguage = "en"

// UnknownMessage is returned when a key is missing from every table.
const UnknownMessage = "Unknown message"

// Key identifies one translatable message.
type Key string

const (
	KeyNoTokenProvided            Key = "noTokenProvided"
	KeyInvalidToken               Key = "invalidToken"
	KeyAccessDenied               Key = "accessDenied"
	KeyAccessDeniedRole           Key = "accessDeniedRole"
	KeyValidationFailed           Key = "validationFailed"
	KeyInternalServerError        Key = "internalServerError"
	KeyUnexpectedError            Key = "unexpectedError"
	KeyRegistrationSuccess        Key = "registrationSuccess"
	KeyEmailAlreadyRegistered     Key = "emailAlreadyRegistered"
	KeyLoginSuccess               Key = "loginSuccess"
	KeyInvalidCredentials         Key = "invalidCredentials"
	KeyProgramList                Key = "programList"
	KeyProgramCreated             Key = "programCreated"
	KeyProgramUpdated             Key = "programUpdated"
	KeyProgramDeleted             Key = "programDeleted"
	KeyProgramNotFound            Key = "programNotFound"
	KeyExerciseList               Key = "exerciseList"
	KeyExerciseCreated            Key = "exerciseCreated"
	KeyExerciseUpdated            Key = "exerciseUpdated"
	KeyExerciseDeleted            Key = "exerciseDeleted"
	KeyExerciseNotFound           Key = "exerciseNotFound"
	KeyExerciseAddedToProgram     Key = "exerciseAddedToProgram"
	KeyExerciseAlreadyInProgram   Key = "exerciseAlreadyInProgram"
	KeyExerciseRemovedFromProgram Key = "exerciseRemovedFromProgram"
	KeyPageNotFound               Key = "pageNotFound"
	KeyUserList                   Key = "userList"
	KeyUserDetails                Key = "userDetails"
	KeyUserUpdated                Key = "userUpdated"
	KeyUserNotFound               Key = "userNotFound"
	KeyUserDetailWithExercises    Key = "userDetailWithExercises"
	KeyExerciseTracked            Key = "exerciseTracked"
	KeyCompletedExerciseList      Key = "completedExerciseList"
	KeyCompletedExerciseDeleted   Key = "completedExerciseDeleted"
	KeyCompletedExerciseNotFound  Key = "completedExerciseNotFound"
)

// Bundle holds the loaded locale tables. Construct once at startup and
// inject; it is safe for concurrent use.
type Bundle struct {
	tables map[string]map[Key]string
}

// NewBundle parses the embedded locale files. It fails only on a broken
// build (missing or malformed embedded JSON).
func NewBundle() (*Bundle, error) {
	b := &Bundle{tables: make(map[string]map[Key]string)}
	for _, lang := range []string{"en", "sk"} {
		raw, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("i18n: read locale %s: %w", lang, err)
		}
		table := make(map[Key]string)
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("i18n: parse locale %s: %w", lang, err)
		}
		b.tables[lang] = table
	}
	return b, nil
}

// Message resolves key in the requested language. Unknown languages fall
// back to the default table; unknown keys fall back to the default table
// and finally to UnknownMessage. It never fails.
func (b *Bundle) Message(lang string, key Key) string {
	table, ok := b.tables[lang]
	if !ok {
		table = b.tables[DefaultLanguage]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	if msg, ok := b.tables[DefaultLanguage][key]; ok {
		return msg
	}
	return UnknownMessage
}

// Messagef resolves key like Message and applies fmt arguments to it.
func (b *Bundle) Messagef(lang string, key Key, args ...any) string {
	return fmt.Sprintf(b.Message(lang, key), args...)
}
