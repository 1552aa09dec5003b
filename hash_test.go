package uuidgen

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNameBasedVectors(t *testing.T) {
	ns := MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name string
		got  UUID
		want string
	}{
		{"v3 dns example.com", NewV3(ns, []byte("example.com")), "9073926b-929f-31c2-abc9-fad77ae3e8eb"},
		{"v5 dns example.com", NewV5(ns, []byte("example.com")), "cfbff0d1-9375-5685-968c-48ce8b15ae17"},
		{"v3 url", NewV3(NamespaceURL, []byte("https://example.com")), "68794df6-5e20-385f-ab08-bb73f8a433cb"},
		{"v5 url", NewV5(NamespaceURL, []byte("https://example.com")), "4fd35a71-71ef-5a55-a9d9-aa75c889a6d0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNameBased_Deterministic(t *testing.T) {
	names := []string{"", "a", "example.com", "日本語", "a much longer name than any hash block would hold in a single pass"}

	for _, name := range names {
		for _, ns := range []UUID{NamespaceDNS, NamespaceURL, NamespaceOID, NamespaceX500} {
			v3a, v3b := NewV3(ns, []byte(name)), NewV3(ns, []byte(name))
			v5a, v5b := NewV5(ns, []byte(name)), NewV5(ns, []byte(name))
			if v3a != v3b || v5a != v5b {
				t.Errorf("name %q: repeated calls differ", name)
			}
			if v3a == v5a {
				t.Errorf("name %q: v3 and v5 collide", name)
			}
			checkMarkers(t, v3a, VersionNameBasedMD5)
			checkMarkers(t, v5a, VersionNameBasedSHA1)
		}
	}
}

func TestNameBased_MatchGoogleUUID(t *testing.T) {
	names := []string{"example.com", "python.org", "", "urn:isbn:0451450523"}

	for _, name := range names {
		for _, ns := range []UUID{NamespaceDNS, NamespaceURL, NamespaceOID, NamespaceX500} {
			gns := uuid.UUID(ns)
			if got, want := NewV3(ns, []byte(name)), uuid.NewMD5(gns, []byte(name)); got != UUID(want) {
				t.Errorf("v3(%v, %q) = %v, google = %v", ns, name, got, want)
			}
			if got, want := NewV5(ns, []byte(name)), uuid.NewSHA1(gns, []byte(name)); got != UUID(want) {
				t.Errorf("v5(%v, %q) = %v, google = %v", ns, name, got, want)
			}
		}
	}
}

func TestWellKnownNamespaces(t *testing.T) {
	pairs := map[UUID]uuid.UUID{
		NamespaceDNS:  uuid.NameSpaceDNS,
		NamespaceURL:  uuid.NameSpaceURL,
		NamespaceOID:  uuid.NameSpaceOID,
		NamespaceX500: uuid.NameSpaceX500,
	}
	for ours, theirs := range pairs {
		if ours != UUID(theirs) {
			t.Errorf("namespace %v, google %v", ours, theirs)
		}
	}
}

func TestLookupNamespace(t *testing.T) {
	tests := []struct {
		input   string
		want    UUID
		wantErr bool
	}{
		{input: "dns", want: NamespaceDNS},
		{input: "DNS", want: NamespaceDNS},
		{input: "@url", want: NamespaceURL},
		{input: "oid", want: NamespaceOID},
		{input: "x500", want: NamespaceX500},
		{input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", want: NamespaceDNS},
		{input: "{6ba7b811-9dad-11d1-80b4-00c04fd430c8}", want: NamespaceURL},
		{input: "f47ac10b58cc4372a5670e02b2c3d479", want: MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")},
		{input: "not-a-uuid", wantErr: true},
		{input: "", wantErr: true},
		{input: "6ba7b810-9dad-11d1-80b4-00c04fd430c", wantErr: true},
		{input: "{6ba7b810-9dad-11d1-80b4-00c04fd430c8", wantErr: true},
		{input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8}", wantErr: true},
		{input: "urn:uuid:{6ba7b810-9dad-11d1-80b4-00c04fd430c8}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := LookupNamespace(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNamespace) {
					t.Fatalf("LookupNamespace(%q) error = %v, want %v", tt.input, err, ErrInvalidNamespace)
				}
				var nsErr *InvalidNamespaceError
				if !errors.As(err, &nsErr) || nsErr.Namespace != tt.input {
					t.Errorf("LookupNamespace(%q) error = %#v", tt.input, err)
				}
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("LookupNamespace(%q) error does not wrap %v", tt.input, ErrInvalidFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupNamespace(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("LookupNamespace(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
