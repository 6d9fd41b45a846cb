package state

import (
	"fmt"
	"io"
	"strconv"
)

// UserState is either Unauthorized or Authorized.
type UserState interface {
	isUserState()
}

// Unauthorized means nobody is logged in.
type Unauthorized struct{}

func (Unauthorized) isUserState() {}

// Authorized holds the logged-in user and their session token.
type Authorized struct {
	Username string
	Token    string
}

func (Authorized) isUserState() {}

// UserManager switches between user states.
type UserManager struct {
	state UserState
}

// NewUserManager starts unauthorized.
func NewUserManager() *UserManager {
	return &UserManager{state: Unauthorized{}}
}

// LogIn authorizes username with a token derived from it.
func (m *UserManager) LogIn(username string) {
	m.state = Authorized{Username: username, Token: tokenFor(username)}
}

// LogOut drops back to unauthorized.
func (m *UserManager) LogOut() {
	m.state = Unauthorized{}
}

// State returns the current state.
func (m *UserManager) State() UserState {
	return m.state
}

// Token returns the session token, or "" when unauthorized.
func (m *UserManager) Token() string {
	if s, ok := m.state.(Authorized); ok {
		return s.Token
	}
	return ""
}

// tokenFor hashes s with the 31-polynomial over UTF-16 units in 32-bit
// arithmetic, so tokens match across runs.
func tokenFor(s string) string {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			h = 31*h + int32(0xD800+(r>>10))
			h = 31*h + int32(0xDC00+(r&0x3FF))
			continue
		}
		h = 31*h + int32(r)
	}
	return strconv.FormatInt(int64(h), 10)
}

// Demo logs a user in, prints the token and logs out.
func Demo(w io.Writer) error {
	manager := NewUserManager()
	manager.LogIn("loremIpsum")
	if _, err := fmt.Fprintln(w, manager.Token()); err != nil {
		return err
	}
	manager.LogOut()
	_, err := fmt.Fprintf(w, "token after logout: %q\n", manager.Token())
	return err
}
