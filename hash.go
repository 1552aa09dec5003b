package uuidgen

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
	"strings"
)

// Well known namespaces from RFC 4122 Appendix C.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

var namespaces = map[string]UUID{
	"dns":  NamespaceDNS,
	"url":  NamespaceURL,
	"oid":  NamespaceOID,
	"x500": NamespaceX500,
}

// LookupNamespace resolves a namespace given either as one of the well known
// names (dns, url, oid, x500, optionally prefixed with '@') or as a UUID in
// any form accepted by Parse.
func LookupNamespace(s string) (UUID, error) {
	if ns, ok := namespaces[strings.ToLower(strings.TrimPrefix(s, "@"))]; ok {
		return ns, nil
	}
	ns, err := Parse(s)
	if err != nil {
		return Nil, &InvalidNamespaceError{Namespace: s, Err: err}
	}
	return ns, nil
}

// NewV3 returns the name-based UUID of name within namespace using MD5.
// The result depends only on its inputs.
func NewV3(namespace UUID, name []byte) UUID {
	return newHashed(md5.New(), namespace, name, VersionNameBasedMD5)
}

// NewV5 returns the name-based UUID of name within namespace using SHA-1.
func NewV5(namespace UUID, name []byte) UUID {
	return newHashed(sha1.New(), namespace, name, VersionNameBasedSHA1)
}

func newHashed(h hash.Hash, namespace UUID, name []byte, v Version) UUID {
	var uuid UUID
	h.Write(namespace[:])
	h.Write(name)
	copy(uuid[:], h.Sum(nil))
	setVersion(&uuid, v)
	return uuid
}
