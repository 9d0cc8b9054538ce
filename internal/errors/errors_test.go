package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
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
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "no active character",
			expected: "FAILED_PRECONDITION: no active character",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("dice roller exhausted")
	wrapped := errors.Wrap(baseErr, "failed to draw character")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to draw character", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Contains(wrapped.Error(), "dice roller exhausted")
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.FailedPrecondition("no movement item").WithReason("no_movement_item")
	wrapped := errors.Wrap(baseErr, "build generation aborted")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal("no_movement_item", errors.GetReason(wrapped))

	// meta on the wrapper must not leak back into the cause
	wrapped.WithMeta("profile_id", "p1")
	s.Nil(baseErr.Meta["profile_id"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "selection store unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
	s.True(errors.IsUnavailable(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestReasons() {
	s.False(errors.HasReason(nil, "anything"))
	s.False(errors.HasReason(fmt.Errorf("plain"), "anything"))
	s.Equal("", errors.GetReason(errors.Internal("no reason")))

	err := errors.FailedPrecondition("nothing selected").WithReason("no_active_character")
	s.True(errors.HasReason(err, "no_active_character"))
	s.False(errors.HasReason(err, "no_movement_item"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")

	s.Equal(errors.CodeNotFound, errors.GetCode(errors.Wrap(err, "wrapped")))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")

	s.Equal("user friendly message", errors.GetMessage(err))
	s.Equal("wrapped message", errors.GetMessage(errors.Wrap(err, "wrapped message")))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeFailedPrecondition, 4},
		{errors.CodeUnavailable, 5},
		{errors.CodeInternal, 1},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
