package uuidgen

import (
	"errors"
	"fmt"

	validation "github.com/jellydator/validation"
)

// Request bundles everything needed to produce a run of UUIDs. Optional
// inputs are pointers so that an absent value is distinguishable from an
// empty one.
type Request struct {
	Version   Version `json:"type"`
	Namespace *string `json:"namespace"`
	Name      *string `json:"name"`
	Data      *string `json:"data"`
	Count     int     `json:"count"`
	Uppercase bool    `json:"uppercase"`
}

// argumentOrder is the order in which missing inputs are reported.
var argumentOrder = []string{"namespace", "name", "data"}

// Validate checks that exactly the inputs the selected version needs are
// present and that a name-based namespace resolves. It runs before any UUID
// is produced.
func (r *Request) Validate() error {
	_, err := r.resolve()
	return err
}

// resolve validates r and returns the namespace of a name-based request, or
// Nil for every other version.
func (r *Request) resolve() (UUID, error) {
	if !r.Version.Generatable() {
		return Nil, fmt.Errorf("%w: %s", ErrInvalidVersion, r.Version)
	}

	err := validation.ValidateStruct(r,
		validation.Field(&r.Namespace, validation.When(r.Version.IsNameBased(), validation.NotNil)),
		validation.Field(&r.Name, validation.When(r.Version.IsNameBased(), validation.NotNil)),
		validation.Field(&r.Data, validation.When(r.Version == VersionCustom, validation.NotNil)),
		validation.Field(&r.Count, validation.Min(0)),
	)
	if err != nil {
		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			return Nil, err
		}
		var missing []string
		for _, field := range argumentOrder {
			if _, ok := fieldErrs[field]; ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return Nil, &MissingArgumentError{Version: r.Version, Fields: missing}
		}
		if countErr, ok := fieldErrs["count"]; ok {
			return Nil, fmt.Errorf("%w: %v", ErrInvalidCount, countErr)
		}
		return Nil, err
	}

	if !r.Version.IsNameBased() {
		return Nil, nil
	}
	return LookupNamespace(*r.Namespace)
}
