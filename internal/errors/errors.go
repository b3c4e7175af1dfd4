package errors

import "errors"

// Usage errors indicate the command line could not be understood.
var (
	// ErrUsage indicates the arguments were missing, out of order, or malformed.
	ErrUsage = errors.New("invalid arguments")

	// ErrHelpRequested indicates the user asked for help with -h.
	// The original program treats help as a failure exit, so this is an error too.
	ErrHelpRequested = errors.New("help requested")

	// ErrEmptyMessage indicates the positional message argument was empty.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrInvalidMode indicates the -m value did not start with a digit.
	ErrInvalidMode = errors.New("mode must be a digit")
)

// Key errors indicate the supplied keyword cannot drive the cipher.
var (
	// ErrEmptyKey indicates the -k value was empty. Rejected before any
	// keystream is generated.
	ErrEmptyKey = errors.New("key must not be empty")
)

// Invariant errors indicate programming mistakes, not user mistakes.
var (
	// ErrKeystreamMismatch indicates a keystream whose length differs from
	// the message it is applied to. Cannot happen when the keystream was
	// generated from the same message.
	ErrKeystreamMismatch = errors.New("keystream length does not match message length")
)
