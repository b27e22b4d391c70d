package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "-7.50", FormatMinorUnits(-750))
	assert.Equal(t, "150.00", FormatMinorUnits(15000))
	assert.Equal(t, "0.05", FormatMinorUnits(5))
	assert.Equal(t, "2.50 €", FormatWithSymbol(250, "€"))
	assert.Equal(t, "2.50", FormatWithSymbol(250, ""))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Club Mate", SanitizeText("  Club Mate\n"))
	assert.Equal(t, "Bob", SanitizeText("B\x00o\x1bb"))
	assert.Equal(t, "", SanitizeText(" \r\n "))
}

func TestSanitizeOptional(t *testing.T) {
	blank := "  \n"
	name := " mail@example.org "

	assert.Nil(t, SanitizeOptional(nil))
	assert.Nil(t, SanitizeOptional(&blank))
	assert.Equal(t, "mail@example.org", *SanitizeOptional(&name))
}
