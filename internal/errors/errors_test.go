package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fiender/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "schema mismatch",
			code:     errors.CodeSchemaMismatch,
			message:  "actions: unexpected number",
			expected: "SCHEMA_MISMATCH: actions: unexpected number",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "name is required",
			expected: "INVALID_ARGUMENT: name is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.SchemaMismatch("bad field").
		WithMeta(errors.MetaField, "reactions").
		WithMeta(errors.MetaShape, "object")

	s.Assert().Equal("reactions", err.Meta[errors.MetaField])
	s.Assert().Equal("object", err.Meta[errors.MetaShape])

	err2 := errors.Internal("boom").
		WithMetaMap(map[string]any{
			"page": 3,
			"url":  "https://api.open5e.com/monsters/?page=3",
		})

	s.Assert().Equal(3, err2.Meta["page"])
	s.Assert().Equal("https://api.open5e.com/monsters/?page=3", err2.Meta["url"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("unexpected EOF")
	wrapped := errors.Wrap(baseErr, "failed to read body")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to read body", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.Remote(404, "https://api.open5e.com/monsters/nope/")
	wrapped := errors.Wrap(baseErr, "failed to get creature nope")

	s.Assert().Equal(errors.CodeRemote, wrapped.Code)
	s.Assert().Equal("failed to get creature nope", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal(404, errors.Status(wrapped))

	// the wrapper owns a copy of the metadata
	wrapped.WithMeta("extra", true)
	s.Assert().NotContains(baseErr.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("invalid character 'x'")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeSchemaMismatch, "failed to decode spell")

	s.Assert().Equal(errors.CodeSchemaMismatch, wrapped.Code)
	s.Assert().Equal("failed to decode spell", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
	s.Assert().Nil(errors.Transport(nil, "https://example.com"))
}

func (s *ErrorsTestSuite) TestTransport() {
	cause := fmt.Errorf("dial tcp: lookup api.open5e.com: no such host")
	err := errors.Transport(cause, "https://api.open5e.com/spells/fireball/")

	s.Assert().True(errors.IsTransport(err))
	s.Assert().Equal("https://api.open5e.com/spells/fireball/", err.Meta[errors.MetaURL])
	s.Assert().ErrorIs(err, cause)
}

func (s *ErrorsTestSuite) TestRemote() {
	err := errors.Remote(503, "https://api.open5e.com/monsters/")

	s.Assert().True(errors.IsRemote(err))
	s.Assert().Equal(503, errors.Status(err))
	s.Assert().Equal("https://api.open5e.com/monsters/", err.Meta[errors.MetaURL])
	s.Assert().Equal("REMOTE: https://api.open5e.com/monsters/ returned status 503", err.Error())
}

func (s *ErrorsTestSuite) TestStatusWithoutRemote() {
	s.Assert().Equal(0, errors.Status(nil))
	s.Assert().Equal(0, errors.Status(fmt.Errorf("plain")))
	s.Assert().Equal(0, errors.Status(errors.SchemaMismatch("x")))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"SchemaMismatch", func() *errors.Error { return errors.SchemaMismatch("test") }, errors.CodeSchemaMismatch},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("action %s not found", "Bite")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("action Bite not found", err.Message)

	err2 := errors.SchemaMismatchf("%s: unexpected %s", "actions", "boolean")
	s.Assert().Equal(errors.CodeSchemaMismatch, err2.Code)
	s.Assert().Equal("actions: unexpected boolean", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.SchemaMismatch("a")
	err2 := errors.SchemaMismatch("b")
	err3 := errors.Remote(404, "u")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	remoteErr := errors.Remote(404, "u")
	schemaErr := errors.SchemaMismatch("test")
	wrappedErr := errors.Wrap(remoteErr, "wrapped")

	s.Assert().True(errors.IsRemote(remoteErr))
	s.Assert().True(errors.IsRemote(wrappedErr))
	s.Assert().False(errors.IsRemote(schemaErr))

	s.Assert().True(errors.IsSchemaMismatch(schemaErr))
	s.Assert().False(errors.IsSchemaMismatch(remoteErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.SchemaMismatch("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeSchemaMismatch, errors.GetCode(err))
	s.Assert().Equal(errors.CodeSchemaMismatch, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestKind() {
	testCases := []struct {
		code     errors.Code
		expected string
	}{
		{errors.CodeTransport, "transport error"},
		{errors.CodeRemote, "remote error"},
		{errors.CodeSchemaMismatch, "schema mismatch"},
		{errors.CodeInvalidArgument, "invalid argument"},
		{errors.CodeInternal, "internal error"},
		{errors.Code("SOMETHING_ELSE"), "internal error"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.Kind())
		})
	}
}

func (s *ErrorsTestSuite) TestMessageChain() {
	url := "https://api.open5e.com/monsters/nobody/"

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "plain error", err: fmt.Errorf("unknown flag: --bogus"), expected: "unknown flag: --bogus"},
		{name: "single layer", err: errors.Remote(404, url), expected: url + " returned status 404"},
		{
			name:     "wrapped remote",
			err:      errors.Wrapf(errors.Remote(404, url), "failed to get creature %q", "Nobody"),
			expected: `failed to get creature "Nobody": ` + url + " returned status 404",
		},
		{
			name:     "ends at a foreign cause",
			err:      errors.Wrap(errors.Transport(fmt.Errorf("dial tcp: no such host"), url), "failed to get creature"),
			expected: "failed to get creature: request to " + url + " failed: dial tcp: no such host",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := errors.MessageChain(tc.err)
			s.Assert().Equal(tc.expected, got)
			s.Assert().NotContains(got, string(errors.CodeRemote))
		})
	}
}
