package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenderLetter(t *testing.T) {
	assert.Equal(t, "M", GenderLetter("Masculino"))
	assert.Equal(t, "M", GenderLetter("masculino"))
	assert.Equal(t, "F", GenderLetter("Femenino"))
	assert.Equal(t, "N", GenderLetter("No binario"))
	assert.Equal(t, "N", GenderLetter("Prefiero no decirlo"))
	assert.Equal(t, "N", GenderLetter(""))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("Ana Lopez"))
	assert.Equal(t, "AG", Initials("Ana María López García"))
	// Diacritics are stripped before taking the letter.
	assert.Equal(t, "AU", Initials("Álvaro Úbeda"))
	// A single token serves as both first and last word.
	assert.Equal(t, "AA", Initials("Ana"))
	assert.Equal(t, "XX", Initials(""))
	assert.Equal(t, "XX", Initials("   "))
}

func TestBuildIDDeterministic(t *testing.T) {
	a := BuildID("Ana Lopez", "Femenino", "1990-01-01")
	b := BuildID("Ana Lopez", "Femenino", "1990-01-01")
	assert.Equal(t, "PFAL01011990", a)
	assert.Equal(t, a, b)
}

func TestBuildIDUnparseableBirthDate(t *testing.T) {
	assert.Equal(t, "PMJS00000000", BuildID("Juan Soto", "Masculino", "algún día"))
}

func TestUniqueID(t *testing.T) {
	existing := map[string]bool{}
	exists := func(id string) bool { return existing[id] }

	assert.Equal(t, "PMJS01011990", UniqueID("PMJS01011990", exists))

	existing["PMJS01011990"] = true
	assert.Equal(t, "PMJS01011990-2", UniqueID("PMJS01011990", exists))

	existing["PMJS01011990-2"] = true
	assert.Equal(t, "PMJS01011990-3", UniqueID("PMJS01011990", exists))
}
