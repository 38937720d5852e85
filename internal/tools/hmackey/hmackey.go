// Package hmackey generates session signing keys in the env format the
// console consumes.
package hmackey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
)

// Config holds configuration for HMAC key generation.
type Config struct {
	Bytes int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: 32}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes (default: 32)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates the key and writes it to out. Session tokens require at
// least 32 key bytes, so shorter requests are refused here rather than at
// first use.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes < 32 {
		return errors.New("bytes must be at least 32")
	}
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	_, err := fmt.Fprintf(out, "WAYNE_SESSION_HMAC_KEY=%s\n", hex.EncodeToString(buf))
	return err
}
