package claim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAddress() Address {
	return Address{
		Line1:   "12 Main",
		City:    "NYC",
		State:   "NY",
		Zip:     "10001",
		Country: "USA",
	}
}

func TestValidateAddress(t *testing.T) {
	t.Run("valid address passes", func(t *testing.T) {
		assert.Empty(t, ValidateAddress(validAddress()))
	})

	t.Run("missing city reported alone", func(t *testing.T) {
		addr := validAddress()
		addr.City = ""

		assert.Equal(t, []string{"City is required"}, ValidateAddress(addr))
	})

	t.Run("whitespace-only values are blank", func(t *testing.T) {
		addr := validAddress()
		addr.Zip = "  \t"

		assert.Equal(t, []string{"Zip is required"}, ValidateAddress(addr))
	})

	t.Run("all blanks reported in form order", func(t *testing.T) {
		violations := ValidateAddress(Address{})
		assert.Equal(t, []string{
			"Address line 1 is required",
			"City is required",
			"State is required",
			"Zip is required",
			"Country is required",
		}, violations)
	})

	t.Run("line2 never required", func(t *testing.T) {
		addr := validAddress()
		addr.Line2 = ""
		assert.Empty(t, ValidateAddress(addr))
	})
}
