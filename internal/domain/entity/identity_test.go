package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIdentity_Normalizes(t *testing.T) {
	identity := NewIdentity(" uid-1 ", "  Alice@Example.COM ")

	assert.Equal(t, "uid-1", identity.UID())
	assert.Equal(t, "alice@example.com", identity.Email())
	assert.False(t, identity.IsAnonymous())
	assert.Equal(t, "alice@example.com", identity.String())
}

func TestIdentity_Anonymous(t *testing.T) {
	assert.True(t, Anonymous().IsAnonymous())
	assert.True(t, Identity{}.IsAnonymous())
	assert.True(t, NewIdentity("uid", "   ").IsAnonymous())
	assert.Equal(t, "anonymous", Anonymous().String())
}

func TestAddress_Visibility(t *testing.T) {
	alice := NewIdentity("1", "alice@x.com")
	bob := NewIdentity("2", "bob@x.com")

	legacy := &Address{User: "Alice@X.com", IsPublic: false}
	public := &Address{User: "bob@x.com", IsPublic: true}

	assert.True(t, legacy.OwnedBy(alice))
	assert.True(t, legacy.VisibleTo(alice))
	assert.False(t, legacy.VisibleTo(bob))
	assert.False(t, legacy.OwnedBy(Anonymous()))

	assert.True(t, public.VisibleTo(alice))
	assert.False(t, public.OwnedBy(alice))
}
