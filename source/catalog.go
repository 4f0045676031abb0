// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package source // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/source"

import (
	"errors"
	"fmt"
)

// Descriptor describes one log source: a category backed by a single
// append-only text file. The catalog of descriptors is static, ordered
// configuration.
type Descriptor struct {
	// Name is the short source name used in entry ids and the source field.
	Name string `mapstructure:"name" yaml:"name"`

	// Path is the file backing this source.
	Path string `mapstructure:"path" yaml:"path"`

	// Type is the category tag stamped onto entries from this source.
	Type string `mapstructure:"type" yaml:"type"`

	// Priority breaks ties between entries with identical timestamps; lower
	// sorts first.
	Priority int `mapstructure:"priority" yaml:"priority"`

	// Window is the number of most recent non-empty lines read from the
	// file. Zero means the catalog-wide default.
	Window int `mapstructure:"window" yaml:"window,omitempty"`

	// Encoding is the text encoding of the file. Empty means utf-8.
	Encoding string `mapstructure:"encoding" yaml:"encoding,omitempty"`
}

// Validate checks required fields and that the encoding is known.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return errors.New("missing required field 'name'")
	}
	if d.Path == "" {
		return fmt.Errorf("source %s: missing required field 'path'", d.Name)
	}
	if d.Window < 0 {
		return fmt.Errorf("source %s: window must not be negative", d.Name)
	}
	if _, err := LookupEncoding(d.Encoding); err != nil {
		return fmt.Errorf("source %s: %w", d.Name, err)
	}
	return nil
}
