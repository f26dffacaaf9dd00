// Package identity maps the logical identity of a snippet onto the key it is
// stored under.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"exusiai.dev/snippets/internal/constant"
	"exusiai.dev/snippets/internal/model"
)

const (
	SchemeHashed    = "hashed"
	SchemeComposite = "composite"
)

// Identity is the (platform, owner, name) triple designating a snippet.
type Identity struct {
	Platform model.Platform
	Owner    string
	Name     string
}

// New builds an Identity, substituting constant.DefaultOwner for an empty owner.
func New(platform, owner, name string) Identity {
	if owner == "" {
		owner = constant.DefaultOwner
	}
	return Identity{
		Platform: model.Platform(platform),
		Owner:    owner,
		Name:     name,
	}
}

// Validate rejects identities whose fields would run into each other once
// joined into a key: the platform may not contain ":" or "/", the owner may
// not contain "/".
func (i Identity) Validate() error {
	switch {
	case i.Platform == "":
		return errors.New("identity: platform is missing")
	case strings.ContainsAny(i.Platform.String(), ":/"):
		return fmt.Errorf("identity: platform %q contains a reserved character", i.Platform)
	case strings.Contains(i.Owner, "/"):
		return fmt.Errorf("identity: owner %q contains a reserved character", i.Owner)
	case i.Name == "":
		return errors.New("identity: name is missing")
	}
	return nil
}

func (i Identity) String() string {
	return i.Platform.String() + ":" + i.Owner + "/" + i.Name
}

// Resolver derives storage keys. Implementations are pure.
type Resolver interface {
	Resolve(id Identity) string

	// Scheme names the key derivation in use.
	Scheme() string

	// Exposed reports whether resolved keys may be published to callers.
	Exposed() bool
}

// Hashed keys a snippet by the hex SHA-256 of "{platform}:{owner}/{name}".
type Hashed struct{}

func (Hashed) Resolve(id Identity) string {
	sum := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(sum[:])
}

func (Hashed) Scheme() string { return SchemeHashed }

func (Hashed) Exposed() bool { return true }

// Composite keys a snippet by "{owner}/{name}". The platform is not part of
// the key, so readers have to compare the stored platform themselves.
type Composite struct{}

func (Composite) Resolve(id Identity) string {
	return id.Owner + "/" + id.Name
}

func (Composite) Scheme() string { return SchemeComposite }

func (Composite) Exposed() bool { return false }

// NewResolver returns the resolver for the named scheme.
func NewResolver(scheme string) (Resolver, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeHashed:
		return Hashed{}, nil
	case SchemeComposite:
		return Composite{}, nil
	default:
		return nil, fmt.Errorf("identity: unknown scheme %q (expected %q or %q)", scheme, SchemeHashed, SchemeComposite)
	}
}
