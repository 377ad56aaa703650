package errors

type ErrorCode string

const (
	ErrNotFound        ErrorCode = "NotFound"
	ErrInternal        ErrorCode = "Internal"
	ErrInvalidArgument ErrorCode = "InvalidArgument"
	// ErrIncompleteInformationContent is returned when an information content
	// table has no entry for a queried synset or its lowest common subsumer.
	ErrIncompleteInformationContent ErrorCode = "IncompleteInformationContent"
)
