package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("asha@iitb.ac.in"))
	assert.True(t, IsValidEmail("Asha.Rao+tag@IITB.ac.in"))
	assert.False(t, IsValidEmail("iitb.ac.in"))
	assert.False(t, IsValidEmail("asha@"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDomain(t *testing.T) {
	assert.True(t, IsValidDomain("iitb.ac.in"))
	assert.True(t, IsValidDomain("demo.collegehub.app"))
	// An email address is not a bare domain
	assert.False(t, IsValidDomain("asha@iitb.ac.in"))
	assert.False(t, IsValidDomain("localhost"))
	assert.False(t, IsValidDomain(""))
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "iitb.ac.in", EmailDomain("asha@iitb.ac.in"))
	assert.Equal(t, "iitb.ac.in", EmailDomain("Asha@IITB.ac.in"))
	assert.Equal(t, "", EmailDomain("iitb.ac.in"))
	assert.Equal(t, "", EmailDomain("asha@"))
	assert.Equal(t, "", EmailDomain(""))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("12345678"))
	assert.False(t, ValidatePassword("1234567"))
	assert.False(t, ValidatePassword(""))
}
