package rsa

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// encoding decodes base64 text strictly: unused trailing bits must be zero,
// so every envelope has exactly one accepted spelling.
var encoding = base64.StdEncoding.Strict()

// Envelope is the decoded form of a sealed message.
type Envelope struct {
	// Value is the base64 text of the RSA-OAEP ciphertext.
	Value string `json:"value"`
	// Sgn is the base64 text of the signature over Value.
	Sgn string `json:"sgn"`
}

// Marshal returns the wire form of e: the base64 text of its JSON object.
//
// Forward slashes are escaped as "\/" so the output matches PHP's
// json_encode byte for byte.
func (e *Envelope) Marshal() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	data = bytes.ReplaceAll(data, []byte("/"), []byte(`\/`))
	return base64.StdEncoding.EncodeToString(data), nil
}

// ParseEnvelope decodes the wire form of an envelope. It only checks the
// structure; the signature is not verified. The keys "value" and "sgn" are
// matched exactly and must hold non-empty strings.
func ParseEnvelope(text string) (*Envelope, error) {
	data, err := encoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("envelope is not base64: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("envelope is not a JSON object: %w", err)
	}

	var e Envelope
	if e.Value, err = stringField(fields, "value"); err != nil {
		return nil, err
	}
	if e.Sgn, err = stringField(fields, "sgn"); err != nil {
		return nil, err
	}
	return &e, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("envelope lacks %s", key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("envelope %s is not a string: %w", key, err)
	}
	if v == "" {
		return "", fmt.Errorf("envelope %s is empty", key)
	}
	return v, nil
}
