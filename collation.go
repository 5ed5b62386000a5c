// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// collationBinary is the collation id of the binary pseudo charset.
const collationBinary = 63

// collationEncoding maps a server collation id to the character encoding
// used to decode text payloads. A nil result means the payload needs no
// transcoding (UTF-8 family, binary, or an unknown collation which is
// assumed to be UTF-8).
func collationEncoding(id uint64) encoding.Encoding {
	switch id {
	case 5, 8, 15, 31, 47, 48, 49, 94:
		// latin1 family is cp1252 on the wire
		return charmap.Windows1252
	case 3, 69:
		return charmap.Windows1250 // dec8/cp1250 approximations
	case 36, 68:
		return charmap.CodePage866
	case 7, 51:
		return charmap.KOI8R
	case 35, 90, 159:
		// ucs2 is UTF-16BE without surrogates
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case 54, 55, 101, 123:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case 56, 62:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case 60, 61, 160:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case collationBinary:
		return nil
	default:
		return nil
	}
}
