package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"id":"evt_1","type":"checkout.completed"}`)

	sig := Sign(secret, body)

	assert.True(t, VerifySignature(secret, body, sig))
	assert.False(t, VerifySignature(secret, body, ""), "missing header never verifies")
	assert.False(t, VerifySignature(secret, []byte(`{"id":"evt_2"}`), sig), "tampered body")
	assert.False(t, VerifySignature("whsec_other", body, sig), "wrong secret")
	assert.False(t, VerifySignature(secret, body, sig+"00"), "truncated or padded digest")
}
