package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrSessionConflict is returned when a session write lost a race with another writer.
	ErrSessionConflict = errors.New("session was modified concurrently")
	// ErrCorruptSession is returned when a stored session record cannot be decoded.
	ErrCorruptSession = errors.New("session record is corrupt")
	// ErrVoiceCodeExhausted is returned when no free voice code could be generated.
	ErrVoiceCodeExhausted = errors.New("no free voice code available")
	// ErrAlreadyExists is returned when a unique attribute such as the email is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrVoiceCodeTaken is returned when a voice code is assigned to another user.
	ErrVoiceCodeTaken = errors.New("voice code is taken")
	// ErrInvalidFactorIndex is returned for factor positions outside 0..MaxFactors-1.
	ErrInvalidFactorIndex = errors.New("invalid factor index")
)
