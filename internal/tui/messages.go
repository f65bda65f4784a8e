package tui

import (
	"errors"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/imgur"
	"github.com/blackwell-systems/comiccards/internal/marvel"
)

// User-facing outcome strings.
const (
	MsgLoading        = "Getting comics ..."
	MsgRequestFailed  = "Something went wrong! Try again later."
	MsgUnreadable     = "Got a response, but it could not be read. Try again later."
	MsgCardReady      = "Your card is ready!"
	MsgDeleted        = "Deleted successfully!"
	MsgDeleteFailed   = "Failed deleting card! Try again later."
	MsgNoCredentials  = "Missing API credentials. Run 'comiccards init' or set the env vars."
	MsgUploadDisabled = "Uploads are disabled: no image host client id configured."
)

// ErrorMessage maps an error to what the user sees, keeping "request
// failed" apart from "request succeeded but response was unreadable".
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case endpoint.IsDecode(err):
		return MsgUnreadable
	case errors.Is(err, marvel.ErrMissingKeys), errors.Is(err, imgur.ErrMissingClientID):
		return MsgNoCredentials
	default:
		return MsgRequestFailed
	}
}

// comicsLoadedMsg delivers the catalog fetch result.
type comicsLoadedMsg struct {
	comics []marvel.Comic
	err    error
}

// uploadProgressMsg carries the fraction of the upload body sent.
type uploadProgressMsg float64

// uploadDoneMsg delivers the upload result.
type uploadDoneMsg struct {
	result *imgur.UploadResult
	err    error
}

// deleteDoneMsg delivers the delete result.
type deleteDoneMsg struct {
	err error
}
