package validation

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"gridboard/internal/model"
)

// Error is a request validation failure. Handlers translate it into a
// 400 response with the bad-parameter code; the message goes to the client
// verbatim, so keep messages stable.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

func failf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// BoardPayload checks a decoded JSON body for the board write endpoints and
// returns the typed fields. Checks run in a fixed order and the first
// violated rule wins, so clients always see a deterministic message.
func BoardPayload(body map[string]any) (state, name, userName string, err error) {
	state, ok := body["board"].(string)
	if !ok {
		return "", "", "", failf("Missing or error type of [board]")
	}
	name, ok = body["boardName"].(string)
	if !ok {
		return "", "", "", failf("Missing or error type of [boardName]")
	}
	userName, ok = body["userName"].(string)
	if !ok {
		return "", "", "", failf("Missing or error type of [userName]")
	}

	// Name lengths count characters, not bytes; a multi-byte name within
	// the 50-character bound is legal.
	if n := utf8.RuneCountInString(name); n == 0 || n > model.MaxNameLength {
		return "", "", "", failf("Bad length of [boardName]")
	}
	if n := utf8.RuneCountInString(userName); n == 0 || n > model.MaxNameLength {
		return "", "", "", failf("Bad length of [userName]")
	}
	if len(state) != model.StateLength {
		return "", "", "", failf("Bad length of [board]")
	}
	for i := 0; i < len(state); i++ {
		if state[i] != '0' && state[i] != '1' {
			return "", "", "", failf("Invalid char in [board]")
		}
	}
	return state, name, userName, nil
}

// UserName checks a user name path parameter. Like the payload checks, the
// bound is in characters.
func UserName(raw string) (string, error) {
	if n := utf8.RuneCountInString(raw); n == 0 || n > model.MaxNameLength {
		return "", failf("Bad param [userName]")
	}
	return raw, nil
}

// ID parses a numeric id path parameter.
func ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failf("Bad param [id]")
	}
	return id, nil
}
