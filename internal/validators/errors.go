package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecordID    = errors.New("invalid record ID")
	ErrInvalidOwnerID     = errors.New("invalid owner ID")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyEnvelope      = errors.New("encrypted envelope is required")
	ErrInvalidItemType    = errors.New("invalid vault item type")
	ErrInvalidDocType     = errors.New("invalid document type")
	ErrMissingCustomLabel = errors.New("custom document type requires a label")
	ErrEmptyFileName      = errors.New("file name is required")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password is too short")
)
