package apperrors

import "net/http"

// =========================================================================
// Shared domain errors. Services return these values directly so handlers
// can match them with Is.
// =========================================================================

// --- Routing ---

var ErrRouteNotFound = New(
	CodeNotFound,
	"router",
	"Not found",
	http.StatusNotFound,
)

// --- Auth & users ---

// ErrNotAuthorized covers every Auth Gate failure.
var ErrNotAuthorized = New(
	CodeUnauthorized,
	"auth",
	"Not authorized",
	http.StatusUnauthorized,
)

// ErrInvalidCredentials is deliberately shared by "unknown email" and "wrong password".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Email or password is wrong",
	http.StatusUnauthorized,
)

var ErrUserNotVerified = New(
	CodeNotVerified,
	"auth",
	"Email is not verified",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email in use",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrAlreadyVerified = New(
	CodeInvalidOperation,
	"user",
	"Verification has already been passed",
	http.StatusBadRequest,
)

// --- Contacts ---

var ErrContactNotFound = New(
	CodeNotFound,
	"contact",
	"Not found",
	http.StatusNotFound,
)

var ErrMissingContactFields = New(
	CodeValidationFailed,
	"validation",
	"Missing fields",
	http.StatusBadRequest,
)

var ErrMissingFavorite = New(
	CodeValidationFailed,
	"validation",
	"missing field favorite",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file is not a supported image",
	http.StatusBadRequest,
)

var ErrMissingAvatar = New(
	CodeValidationFailed,
	"validation",
	"missing required file avatar",
	http.StatusBadRequest,
)
