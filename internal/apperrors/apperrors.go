// Package apperrors defines the error taxonomy shared by the booking engine.
// Every rejected operation carries a Kind, which the HTTP layer maps to a
// status code, and a stable Code the clients can branch on.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindUnauthorized  Kind = "unauthorized"
	KindNotApplicable Kind = "not_applicable"
	KindInternal      Kind = "internal"
)

type Code string

const (
	CodeNoActivePackage         Code = "no_active_package"
	CodePackageExpired          Code = "package_expired"
	CodeWrongWeek               Code = "wrong_week"
	CodeNonBusinessDay          Code = "non_business_day"
	CodeWeeklyLimitExceeded     Code = "weekly_limit_exceeded"
	CodeDailyLimitExceeded      Code = "daily_limit_exceeded"
	CodeAlreadyReserved         Code = "already_reserved"
	CodeClassFull               Code = "class_full"
	CodeInvalidWeekStart        Code = "invalid_week_start"
	CodePastWeek                Code = "past_week"
	CodeDuplicateWeek           Code = "duplicate_week"
	CodeTooManyAdvancePurchases Code = "too_many_advance_purchases"
	CodeAlreadyCancelled        Code = "already_cancelled"
	CodeAlreadyProcessed        Code = "already_processed"
	CodeNotUnlimitedWeek        Code = "not_unlimited_week"
	CodeUnknownPackageType      Code = "unknown_package_type"
	CodeInvalidClassTime        Code = "invalid_class_time"
	CodeEmailExists             Code = "email_exists"
	CodeInvalidCredentials      Code = "invalid_credentials"
	CodeNotFound                Code = "not_found"
	CodeInternal                Code = "internal"
)

type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so sentinel errors below work with errors.Is even when
// an operation attaches context via Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func New(kind Kind, code Code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap attaches an underlying cause while keeping the sentinel's kind and code.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Message: sentinel.Message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal error", Err: err}
}

// KindOf reports the kind of err, or KindInternal for errors outside the
// taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

var (
	ErrNoActivePackage         = New(KindValidation, CodeNoActivePackage, "no active package for this user")
	ErrPackageExpired          = New(KindValidation, CodePackageExpired, "package has expired")
	ErrWrongWeek               = New(KindValidation, CodeWrongWeek, "class is outside the purchased week")
	ErrNonBusinessDay          = New(KindValidation, CodeNonBusinessDay, "classes can only be booked Monday through Friday")
	ErrWeeklyLimitExceeded     = New(KindValidation, CodeWeeklyLimitExceeded, "weekly class limit reached")
	ErrDailyLimitExceeded      = New(KindValidation, CodeDailyLimitExceeded, "daily class limit reached")
	ErrAlreadyReserved         = New(KindValidation, CodeAlreadyReserved, "user already has a reservation for this class")
	ErrClassFull               = New(KindValidation, CodeClassFull, "class has no available spots")
	ErrInvalidWeekStart        = New(KindValidation, CodeInvalidWeekStart, "week start must be a Monday")
	ErrPastWeek                = New(KindValidation, CodePastWeek, "cannot purchase a week in the past")
	ErrDuplicateWeek           = New(KindConflict, CodeDuplicateWeek, "week already purchased")
	ErrTooManyAdvancePurchases = New(KindConflict, CodeTooManyAdvancePurchases, "maximum advance week purchases reached")
	ErrAlreadyCancelled        = New(KindConflict, CodeAlreadyCancelled, "reservation is already cancelled")
	ErrAlreadyProcessed        = New(KindConflict, CodeAlreadyProcessed, "reservation has already been processed")
	ErrNotUnlimitedWeek        = New(KindNotApplicable, CodeNotUnlimitedWeek, "reservation is not under an unlimited week package")
	ErrEmailExists             = New(KindConflict, CodeEmailExists, "email already registered")
	ErrInvalidCredentials      = New(KindUnauthorized, CodeInvalidCredentials, "invalid email or password")
	ErrNotFound                = New(KindNotFound, CodeNotFound, "not found")
)
