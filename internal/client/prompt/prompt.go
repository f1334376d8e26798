// Package prompt reads and validates login credentials from a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/atinyakov/StorePortal/internal/models"
)

// MinPasswordLength is the shortest password the form accepts.
const MinPasswordLength = 6

var (
	// ErrInvalidEmail is returned for a missing or malformed email.
	ErrInvalidEmail = errors.New("please enter a valid email address")
	// ErrShortPassword is returned for a password under MinPasswordLength.
	ErrShortPassword = errors.New("password is too short")
)

// Validate performs the form-level checks done before any API call.
func Validate(c models.Credentials) error {
	if c.Email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	if len(c.Password) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters", ErrShortPassword, MinPasswordLength)
	}
	return nil
}

// Credentials asks for any field not already provided. email may be
// prefilled from a flag.
func Credentials(in io.Reader, out io.Writer, email string) (models.Credentials, error) {
	scanner := bufio.NewScanner(in)

	if email == "" {
		fmt.Fprint(out, "Email: ")
		if !scanner.Scan() {
			return models.Credentials{}, readErr(scanner)
		}
		email = scanner.Text()
	}

	fmt.Fprint(out, "Password: ")
	if !scanner.Scan() {
		return models.Credentials{}, readErr(scanner)
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(email),
		Password: scanner.Text(),
	}
	return creds, Validate(creds)
}

func readErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
