package services

import "errors"

var (
	// ErrInvalidRange is returned when a date range ends on or before its start.
	ErrInvalidRange = errors.New("end date must be after start date")

	// ErrInvalidWindow is returned when a room availability window starts after it ends.
	ErrInvalidWindow = errors.New("availability window start cannot be after end")

	// ErrHotelNotFound is returned when the referenced hotel id does not exist.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrRoomNotFound is returned when the referenced room id does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrOutsideAvailability is returned when the requested dates fall outside
	// the room's configured availability window.
	ErrOutsideAvailability = errors.New("requested dates are outside the room availability window")

	// ErrRoomAlreadyBooked is returned when the requested range overlaps an
	// existing booking on the same room.
	ErrRoomAlreadyBooked = errors.New("room is already booked for the selected date range")

	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole is returned when admin user creation names an unknown role.
	ErrInvalidRole = errors.New("invalid role")
)
