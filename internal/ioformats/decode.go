
package ioformats

import (
	"errors"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"

	apperr "brightedge-report-api/internal/errors"
	"brightedge-report-api/internal/models"
)

// DecodeUpload turns uploaded bytes into UTF-8 text. A charset declared in
// contentType is honoured; without one the payload must already be UTF-8.
// A leading byte order mark is dropped.
func DecodeUpload(upload string, data []byte, contentType string) (string, error) {
	if label := declaredCharset(contentType); label != "" {
		enc, name := charset.Lookup(label)
		if enc == nil {
			return "", apperr.Decode(upload, fmt.Errorf("unsupported charset %q", label))
		}
		if name != "utf-8" {
			out, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				return "", apperr.Decode(upload, err)
			}
			// some decoders, utf-16 among them, pass the BOM through as U+FEFF
			return strings.TrimPrefix(string(out), "\ufeff"), nil
		}
	}

	if !utf8.Valid(data) {
		return "", apperr.Decode(upload, errors.New("invalid byte sequence"))
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", apperr.Decode(upload, err)
	}
	return string(out), nil
}

func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["charset"])
}

// ReadUpload decodes data and reads it as a table in one step.
func ReadUpload(upload string, data []byte, contentType string) (*models.Table, error) {
	text, err := DecodeUpload(upload, data, contentType)
	if err != nil {
		return nil, err
	}
	return ReadTable(upload, strings.NewReader(text))
}
