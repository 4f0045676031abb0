// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package source // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/source"

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var encodingOverrides = map[string]encoding.Encoding{
	"":           unicode.UTF8,
	"utf-8":      unicode.UTF8,
	"utf8":       unicode.UTF8,
	"ascii":      unicode.UTF8,
	"us-ascii":   unicode.UTF8,
	"latin1":     charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
	"utf-16le":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// LookupEncoding resolves a configured encoding name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if enc, ok := encodingOverrides[strings.ToLower(name)]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported encoding '%s'", name)
}
