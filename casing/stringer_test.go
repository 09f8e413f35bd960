package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fieldKind int

const (
	kindPrimaryKey fieldKind = iota
	kindForeignKey
	kindHTTPHeader
)

func (k fieldKind) String() string {
	switch k {
	case kindPrimaryKey:
		return "PrimaryKey"
	case kindForeignKey:
		return "foreign_key"
	case kindHTTPHeader:
		return "http-Header"
	}
	return ""
}

func TestStringerOverloads(t *testing.T) {
	tests := []struct {
		kind       fieldKind
		camel      string
		pascal     string
		snakeLower string
		snakeUpper string
	}{
		{kindPrimaryKey, "primaryKey", "PrimaryKey", "primary_key", "PRIMARY_KEY"},
		{kindForeignKey, "foreignKey", "ForeignKey", "foreign_key", "FOREIGN_KEY"},
		{kindHTTPHeader, "httpHeader", "HttpHeader", "http_header", "HTTP_HEADER"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.camel, CamelCaseOf(tt.kind))
			assert.Equal(t, tt.pascal, PascalCaseOf(tt.kind))
			assert.Equal(t, tt.snakeLower, SnakeCaseLowerOf(tt.kind))
			assert.Equal(t, tt.snakeUpper, SnakeCaseUpperOf(tt.kind))
		})
	}
}

func TestConvertStringer_Nil(t *testing.T) {
	assert.Equal(t, "", ConvertStringer(nil, Pascal))
	assert.Equal(t, "", CamelCaseOf(nil))
}

func TestConvertStringer_MatchesConvert(t *testing.T) {
	for _, s := range Styles() {
		assert.Equal(t, Convert(kindHTTPHeader.String(), s), ConvertStringer(kindHTTPHeader, s))
	}
}
