// Package asset turns external resources into payloads a stylesheet can
// carry by value: base64 data URIs and @font-face entries extracted from
// font kit archives.
package asset

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"csskit/css"
)

// ErrUnknownType is returned when content sniffing cannot produce a usable
// MIME type for a data URI.
var ErrUnknownType = errors.New("unable to detect content type")

// DataURI encodes data as a base64 data URI. The MIME type is sniffed from
// magic bytes, falling back to net/http content detection.
func DataURI(data []byte) (css.URL, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("unable to match content type: %w", err)
	}

	var mime string
	if kind != filetype.Unknown {
		mime = kind.MIME.Value
	} else {
		mime = http.DetectContentType(data)
		if m, _, found := strings.Cut(mime, ";"); found {
			mime = strings.TrimSpace(m)
		}
	}
	if mime == "" || mime == "application/octet-stream" {
		return "", ErrUnknownType
	}
	return encodeDataURI(mime, data), nil
}

// FileURI reads a file relative to base and encodes it as a data URI.
// os.DirFS roots the lookup at base and refuses absolute paths or paths
// containing ".." that would escape the root. This prevents path-traversal
// attacks (e.g. url('../../etc/passwd')).
func FileURI(base, name string) (css.URL, error) {
	data, err := fs.ReadFile(os.DirFS(base), filepath.ToSlash(name))
	if err != nil {
		return "", fmt.Errorf("unable to read resource %q: %w", name, err)
	}

	// Prefer extension-based detection for fonts - magic bytes alone do
	// not tell all sfnt flavors apart.
	if mime := MIMEByExt(filepath.Ext(name)); mime != "" {
		if IsFontMIME(mime) && !validFontData(mime, data) {
			return "", fmt.Errorf("resource %q does not look like %s", name, mime)
		}
		return encodeDataURI(mime, data), nil
	}
	return DataURI(data)
}

func encodeDataURI(mime string, data []byte) css.URL {
	return css.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}

// MIMEByExt returns the MIME type for common font and image file
// extensions, or "" when the extension is not recognized.
func MIMEByExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	case ".eot":
		return "application/vnd.ms-fontobject"
	case ".svg":
		return "image/svg+xml"
	default:
		return ""
	}
}

// ExtByMIME returns the canonical file extension for common MIME types,
// or "" when the type is not recognized.
func ExtByMIME(mime string) string {
	switch mime {
	case "font/woff", "application/font-woff":
		return ".woff"
	case "font/woff2", "application/font-woff2":
		return ".woff2"
	case "font/ttf", "application/x-font-ttf", "application/font-sfnt":
		return ".ttf"
	case "font/otf", "application/x-font-otf":
		return ".otf"
	case "application/vnd.ms-fontobject":
		return ".eot"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}

// IsFontMIME reports whether the MIME type names a font resource.
func IsFontMIME(mime string) bool {
	return strings.HasPrefix(mime, "font/") ||
		strings.HasPrefix(mime, "application/font-") ||
		strings.HasPrefix(mime, "application/x-font-") ||
		mime == "application/vnd.ms-fontobject"
}

// validFontData sanity checks that a font payload matches its claimed type.
func validFontData(mime string, data []byte) bool {
	switch mime {
	case "font/woff":
		return filetype.Is(data, "woff")
	case "font/woff2":
		return filetype.Is(data, "woff2")
	case "font/ttf":
		return filetype.Is(data, "ttf")
	case "font/otf":
		return filetype.Is(data, "otf")
	}
	return true
}
