package domain

import "errors"

var (
	// ErrUnknownKind indicates a domain name outside personnel/bikes/office.
	ErrUnknownKind = errors.New("unknown domain")

	// ErrUnknownCategory indicates a counter key outside the domain's catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownRoom indicates an office room outside the catalog.
	ErrUnknownRoom = errors.New("unknown office room")

	// ErrItemHidden indicates an office item that the room does not expose.
	ErrItemHidden = errors.New("item not available in room")

	// ErrValueOutOfRange indicates an office value outside the item's declared range.
	ErrValueOutOfRange = errors.New("value outside item range")

	// ErrIndexOutOfRange indicates an attachment index that does not exist.
	ErrIndexOutOfRange = errors.New("attachment index out of range")

	// ErrNoRoomData indicates an office submit for a room with no values.
	ErrNoRoomData = errors.New("no data for this room")
)
