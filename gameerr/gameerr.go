// Package gameerr provides structured error handling for the card engine.
// Every failure the command surface produces carries a closed error Code so
// callers can branch on "why" without parsing message strings.
package gameerr

import (
	"errors"
	"fmt"
)

// Code categorizes why a command or effect could not proceed.
type Code string

// Error codes, grouped by failure class.
const (
	// Turn/Ownership
	CodeNotYourTurn   Code = "not_your_turn"
	CodeNotYourMinion Code = "not_your_minion"

	// Resource
	CodeNotEnoughMana Code = "not_enough_mana"
	CodeBoardFull     Code = "board_full"
	CodeHandFull      Code = "hand_full"
	CodeNoWeapon      Code = "no_weapon"

	// Targeting
	CodeMissingTarget     Code = "missing_target"
	CodeWrongSide         Code = "wrong_side"
	CodeWrongTribe        Code = "wrong_tribe"
	CodeRequiresDamaged   Code = "requires_damaged_target"
	CodeRequiresMinion    Code = "requires_minion_target"
	CodeRequiresFace      Code = "requires_face_target"

	// Legality
	CodeCannotAttack    Code = "cannot_attack"
	CodeMustAttackTaunt Code = "must_attack_taunt"
	CodeDuplicateSecret Code = "duplicate_secret"

	// Protocol
	CodeNoPendingBattlecry  Code = "no_pending_battlecry"
	CodeBattlecryPending    Code = "battlecry_pending"
	CodeNotYourBattlecry    Code = "not_your_pending_battlecry"
	CodeIndexOutOfRange     Code = "index_out_of_range"
	CodeUnknownCard         Code = "unknown_card"
	CodeInvalidCatalog      Code = "invalid_catalog"
	CodeInternal            Code = "internal"
)

// Error is the engine's single tagged error kind.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "gameerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithMeta attaches a key/value pair of game-state context to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New creates an Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	e := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a new message to an existing error, preserving its code if
// it is already a *Error.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("gameerr.Wrap called with nil: %s", message))
	}
	var existing *Error
	code := CodeInternal
	if errors.As(err, &existing) {
		code = existing.Code
	}
	wrapped := &Error{Code: code, Message: message, Cause: err}
	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

// GetCode extracts the Code from any error, returning CodeInternal if the
// error is not one of ours.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err is a *Error carrying the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}
