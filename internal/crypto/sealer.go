// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// sealedPrefix marks values produced by [aeadSealer.Seal].
const sealedPrefix = "v1:"

// Key derivation constants. Changing any of them makes previously sealed
// sessions unreadable.
const (
	kdfSalt = "hotel-desk/session-store"
	kdfInfo = "hotel-desk/session-tokens/xchacha20poly1305"
)

var (
	ErrNotSealed  = errors.New("value is not sealed")
	ErrOpenFailed = errors.New("failed to open sealed value")
	ErrEmptyKey   = errors.New("empty storage key")
)

// aeadSealer seals values with XChaCha20-Poly1305 under a key derived from a
// passphrase.
type aeadSealer struct {
	aead cipher.AEAD
}

// argonParams are the Argon2id tuning parameters used to stretch the
// passphrase.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// defaultArgonParams follow the OWASP recommendation for Argon2id.
var defaultArgonParams = argonParams{time: 1, memory: 64 * 1024, threads: 4}

// NewSealer derives a sealing key from passphrase. The passphrase is
// stretched with Argon2id and the AEAD key is expanded from the result with
// HKDF-SHA256.
func NewSealer(passphrase string) (Sealer, error) {
	s, err := newSealer(passphrase, defaultArgonParams)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newSealer(passphrase string, params argonParams) (*aeadSealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyKey
	}

	master := argon2.IDKey([]byte(passphrase), []byte(kdfSalt), params.time, params.memory, params.threads, 32)

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(kdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	return &aeadSealer{aead: aead}, nil
}

// Seal implements [Sealer]. The output is "v1:" followed by the standard
// base64 encoding of nonce (24 bytes) ‖ ciphertext.
func (s *aeadSealer) Seal(label, plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(label))
	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *aeadSealer) Open(label, sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", ErrNotSealed
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrOpenFailed, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize+s.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(label))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return string(plaintext), nil
}

// nopSealer stores values unchanged.
type nopSealer struct{}

// NewNopSealer returns a [Sealer] that stores values as-is. It is used when
// no storage key is configured.
func NewNopSealer() Sealer {
	return nopSealer{}
}

func (nopSealer) Seal(_, plaintext string) (string, error) {
	return plaintext, nil
}

func (nopSealer) Open(_, sealed string) (string, error) {
	return sealed, nil
}
