package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	first := " Alice "
	req := RegisterRequest{
		Email:     "  alice@example.com  ",
		Password:  "  secret-pass  ",
		FirstName: &first,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "alice@example.com", req.Email)
	assert.Equal(t, "secret-pass", req.Password)
	assert.Equal(t, "Alice", *req.FirstName)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	note := "lunch <script>alert('x')</script> money"
	req := CreateTransferRequest{
		AmountMinor: 5000,
		Currency:    "VND",
		Note:        &note,
	}
	SanitizeStruct(&req)

	assert.Contains(t, *req.Note, "&lt;script&gt;")
	assert.NotContains(t, *req.Note, "<script>")
}

func TestSanitizeStruct_NestedStruct(t *testing.T) {
	email := "  Bob@Example.com  "
	req := CreateTransferRequest{
		Recipient:   RecipientIdentifierDTO{Email: &email},
		AmountMinor: 5000,
		Currency:    " VND ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Bob@Example.com", *req.Recipient.Email)
	assert.Equal(t, "VND", req.Currency)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := CreateTransferRequest{
		AmountMinor: 5000,
		Currency:    "VND",
		Note:        nil,
	}
	SanitizeStruct(&req)
	assert.Nil(t, req.Note)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"txn-001",
		"TXN_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"txn 001",     // space
		"txn<001>",    // angle brackets
		"txn;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"txn\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
