// Command lockpad-passhash reads a passphrase and prints the Argon2id encoded
// hash to put into AUTH_PASSPHRASE_HASH.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-lockpad/internal/crypto"
)

var errMismatch = errors.New("passphrases do not match")

func main() {
	read := lineReader(os.Stdin)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		read = func(prompt string) (string, error) {
			fmt.Fprint(os.Stderr, prompt)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			return string(b), err
		}
	}

	if err := run(read, os.Stdout, crypto.NewPassphraseHasher()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(read func(prompt string) (string, error), out io.Writer, hasher crypto.PassphraseHasher) error {
	first, err := read("Passphrase: ")
	if err != nil {
		return fmt.Errorf("read passphrase: %w", err)
	}
	if first == "" {
		return errors.New("passphrase must not be empty")
	}
	second, err := read("Repeat passphrase: ")
	if err != nil {
		return fmt.Errorf("read passphrase: %w", err)
	}
	if first != second {
		return errMismatch
	}

	encoded, err := hasher.Hash(first)
	if err != nil {
		return fmt.Errorf("hash passphrase: %w", err)
	}
	_, err = fmt.Fprintln(out, encoded)
	return err
}

// lineReader reads one passphrase per line, for piped input.
func lineReader(r io.Reader) func(string) (string, error) {
	scanner := bufio.NewScanner(r)
	return func(string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
}
