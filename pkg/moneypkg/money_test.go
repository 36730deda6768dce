package moneypkg

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("10.25")
	require.NoError(t, err)
	require.Equal(t, "10.25", got.String())

	got, err = Parse("-3")
	require.NoError(t, err)
	require.True(t, got.IsNegative())

	_, err = Parse("ten")
	require.ErrorIs(t, err, ErrMalformedAmount)

	got, err = Parse("999999999999999999.99")
	require.NoError(t, err)
	require.Equal(t, "999999999999999999.99", got.String())

	for _, s := range []string{"1e2000000", "1e-100000", "0.001", "1000000000000000000", "-1e19"} {
		_, err = Parse(s)
		require.ErrorIs(t, err, ErrAmountOutOfRange, s)
	}
}

func TestValidAmount(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("amount", ValidAmount))

	type request struct {
		Amount json.Number `validate:"required,amount"`
	}

	testCases := []struct {
		name   string
		amount json.Number
		valid  bool
	}{
		{name: "Integer", amount: "100", valid: true},
		{name: "Fraction", amount: "0.5", valid: true},
		{name: "Zero", amount: "0", valid: true},
		{name: "Negative", amount: "-1", valid: false},
		{name: "Malformed", amount: "1e", valid: false},
		{name: "Empty", amount: "", valid: false},
		{name: "HugeExponent", amount: "1e2000000", valid: false},
		{name: "TinyExponent", amount: "1e-100000", valid: false},
		{name: "ThreeDecimalPlaces", amount: "1.005", valid: false},
		{name: "NineteenDigits", amount: "1234567890123456789", valid: false},
		{name: "EighteenDigits", amount: "123456789012345678", valid: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(request{Amount: tc.amount})
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
