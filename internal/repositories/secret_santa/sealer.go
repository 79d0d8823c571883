package secret_santa

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealKeySize   = 32
	sealNonceSize = 24
)

// sealer protects stored recipients at rest. Each value is bound to its
// Secret Santa and giver so it cannot be replayed under another field.
type sealer struct {
	key *[sealKeySize]byte
}

func newSealer(key []byte) (*sealer, error) {
	if len(key) == 0 {
		return &sealer{}, nil
	}

	if len(key) != sealKeySize {
		return nil, fmt.Errorf("seal key must be %d bytes, got %d", sealKeySize, len(key))
	}

	var k [sealKeySize]byte
	copy(k[:], key)
	return &sealer{key: &k}, nil
}

func (s *sealer) seal(secretSantaID, giverID, recipientID string) (string, error) {
	if s.key == nil {
		return recipientID, nil
	}

	var nonce [sealNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], []byte(binding(secretSantaID, giverID)+recipientID), &nonce, s.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (s *sealer) open(secretSantaID, giverID, value string) (string, error) {
	if s.key == nil {
		return value, nil
	}

	box, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("failed to decode sealed recipient: %w", err)
	}

	if len(box) < sealNonceSize+secretbox.Overhead {
		return "", errors.New("sealed recipient is too short")
	}

	var nonce [sealNonceSize]byte
	copy(nonce[:], box[:sealNonceSize])

	plain, ok := secretbox.Open(nil, box[sealNonceSize:], &nonce, s.key)
	if !ok {
		return "", errors.New("failed to open sealed recipient")
	}

	prefix := binding(secretSantaID, giverID)
	recipient, bound := strings.CutPrefix(string(plain), prefix)
	if !bound {
		return "", errors.New("sealed recipient belongs to another giver")
	}

	return recipient, nil
}

func binding(secretSantaID, giverID string) string {
	return secretSantaID + "\x00" + giverID + "\x00"
}
