package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1, err := svc.DeriveKey(passphrase, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := svc.DeriveKey(passphrase, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same passphrase+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService()

	passphrase := "same passphrase"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1, err := svc.DeriveKey(passphrase, salt1)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := svc.DeriveKey(passphrase, salt2)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_InvalidInputs(t *testing.T) {
	svc := NewKeyChainService()

	if _, err := svc.DeriveKey("", bytes.Repeat([]byte{0x01}, 16)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty passphrase: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.DeriveKey("passphrase", []byte("short-salt")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("wrong salt length: got %v, want ErrInvalidInput", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)

	plaintexts := [][]byte{
		nil,
		[]byte("x"),
		[]byte("hello vault"),
		bytes.Repeat([]byte("binary payload "), 4096),
	}

	for _, plaintext := range plaintexts {
		ciphertext, nonce, err := svc.Encrypt(plaintext, key)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if len(nonce) != 12 {
			t.Fatalf("nonce length = %d, want 12", len(nonce))
		}

		got, err := svc.Decrypt(ciphertext, key, nonce)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(plaintext))
		}
	}
}

func TestEncrypt_NonceUniqueAcrossCalls(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)
	plaintext := []byte("same plaintext every time")

	seen := make(map[string]struct{}, 10_000)
	for i := 0; i < 10_000; i++ {
		_, nonce, err := svc.Encrypt(plaintext, key)
		if err != nil {
			t.Fatalf("Encrypt error on call %d: %v", i, err)
		}

		if _, dup := seen[string(nonce)]; dup {
			t.Fatalf("nonce repeated after %d calls", i)
		}
		seen[string(nonce)] = struct{}{}
	}
}

func TestDecrypt_WrongKeyFailsAuthentication(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)
	otherKey := bytes.Repeat([]byte{0x43}, 32)

	ciphertext, nonce, err := svc.Encrypt([]byte("secret"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := svc.Decrypt(ciphertext, otherKey, nonce); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("got %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_InvalidLengths(t *testing.T) {
	svc := NewKeyChainService()
	key := bytes.Repeat([]byte{0x42}, 32)

	ciphertext, nonce, err := svc.Encrypt([]byte("secret"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := svc.Decrypt(ciphertext, key[:31], nonce); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short key: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Decrypt(ciphertext, key, nonce[:11]); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short nonce: got %v, want ErrInvalidInput", err)
	}
}
