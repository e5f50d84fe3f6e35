package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fiender/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Client").
		InvalidField("BaseURL", "missing scheme").
		InvalidField("BaseURL", "host is required")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"validation failed: Client: is required; BaseURL: is invalid: missing scheme, is invalid: host is required",
		errors.GetMessage(err))

	validationErrors := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
	s.Assert().Len(validationErrors["BaseURL"], 2)
}

// Fields are reported in the order they were added, every time.
func (s *ValidationTestSuite) TestValidationBuilderStableOrder() {
	build := func() string {
		vb := errors.NewValidationBuilder()
		for _, field := range []string{"z", "a", "m", "b"} {
			vb.RequiredField(field)
		}
		return errors.GetMessage(vb.Build())
	}

	first := build()
	s.Assert().Equal("validation failed: z: is required; a: is required; m: is required; b: is required", first)
	for i := 0; i < 10; i++ {
		s.Assert().Equal(first, build())
	}
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedKinds := []string{"creature", "spell"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", "item", allowedKinds, vb)
	errors.ValidateEnum("fallback_kind", "creature", allowedKinds, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta[errors.MetaValidationErrors].(map[string][]string)
	s.Assert().Contains(validationErrors["kind"][0], "must be one of: creature, spell")
	s.Assert().NotContains(validationErrors, "fallback_kind")
}

func (s *ValidationTestSuite) TestLookupInputValidation() {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", "  ", vb)
	errors.ValidateEnum("kind", "item", []string{"creature", "spell"}, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta[errors.MetaValidationErrors].(map[string][]string)
	s.Assert().Equal([]string{"is required"}, validationErrors["name"])
	s.Assert().Equal([]string{"must be one of: creature, spell"}, validationErrors["kind"])
}
