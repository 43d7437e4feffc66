// Command chacha20poly1305 encrypts a hex-encoded plaintext under ChaCha20
// with an explicit block counter, printing hex ciphertext to standard
// output. Argument format mirrors the reference C tool byte-for-byte: four
// positional hex arguments, key (64 chars), nonce (24 chars), counter
// (8 chars), plaintext (even length).
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/dromara/chacha20poly1305/crypto/chacha20"
	"github.com/dromara/chacha20poly1305/utils"
)

func usage(prog string) string {
	return fmt.Sprintf("Usage: %s <key-hex> <nonce-hex> <counter-hex> <plaintext-hex>\n", prog) +
		"  key:       64 hex characters (32 bytes)\n" +
		"  nonce:     24 hex characters (12 bytes)\n" +
		"  counter:   8 hex characters  (4 bytes)\n" +
		"  plaintext: hex-encoded plaintext\n"
}

func decodeArg(name, s string, wantLen int) ([]byte, error) {
	if wantLen > 0 && len(s) != wantLen {
		return nil, fmt.Errorf("%s: expected %d hex characters, got %d", name, wantLen, len(s))
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%s: hex string length must be even", name)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// run implements the program body against explicit args and writers so it
// can be exercised without touching the real process argv/exit.
func run(args []string, stdout, stderr io.Writer) int {
	prog := "chacha20poly1305"
	if len(args) > 0 {
		prog = args[0]
	}
	if len(args) != 5 || args[1] == "-h" || args[1] == "--help" {
		fmt.Fprint(stdout, usage(prog))
		return 0
	}

	key, err := decodeArg("key", args[1], 64)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	nonce, err := decodeArg("nonce", args[2], 24)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	counterBytes, err := decodeArg("counter", args[3], 8)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	plaintext, err := decodeArg("plaintext", args[4], 0)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	counter := uint32(counterBytes[0]) | uint32(counterBytes[1])<<8 |
		uint32(counterBytes[2])<<16 | uint32(counterBytes[3])<<24

	ciphertext, err := chacha20.Apply(key, nonce, counter, plaintext)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out := make([]byte, hex.EncodedLen(len(ciphertext)))
	hex.Encode(out, ciphertext)
	fmt.Fprintln(stdout, utils.Bytes2String(out))
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
