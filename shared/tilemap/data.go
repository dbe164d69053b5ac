package tilemap

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Layer data encodings as written by Tiled.
const (
	EncodingNone   = ""
	EncodingCSV    = "csv"
	EncodingBase64 = "base64"
)

// Layer data compressions as written by Tiled. Only valid with base64.
const (
	CompressionNone = ""
	CompressionZlib = "zlib"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// DecodeData turns a layer's "data" value into raw cell values. raw may be
// a JSON array of ids, or a JSON string holding CSV, a JSON array literal
// or base64 depending on encoding.
func DecodeData(raw json.RawMessage, encoding, compression string) ([]uint32, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		if encoding != EncodingNone && encoding != EncodingCSV {
			return nil, fmt.Errorf("%w: array data with encoding %q", ErrEncoding, encoding)
		}
		var ids []uint32
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, fmt.Errorf("decode data array: %w", err)
		}
		return ids, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode data string: %w", err)
	}

	switch encoding {
	case EncodingBase64:
		return DecodeBase64(s, compression)
	case EncodingNone, EncodingCSV:
		if compression != CompressionNone {
			return nil, fmt.Errorf("%w: %q without base64", ErrCompression, compression)
		}
		return DecodeCSV(s)
	}
	return nil, fmt.Errorf("%w: %q", ErrEncoding, encoding)
}

// DecodeCSV parses comma separated ids. Surrounding brackets are accepted
// so that a stringified JSON array decodes too.
func DecodeCSV(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	ids := make([]uint32, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			// Tiled's TMX csv ends rows with a comma before the newline.
			if i == len(fields)-1 {
				continue
			}
			return nil, fmt.Errorf("%w: empty csv cell %d", ErrEncoding, i)
		}
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: csv cell %d: %v", ErrEncoding, i, err)
		}
		ids = append(ids, uint32(v))
	}
	return ids, nil
}

// DecodeBase64 decodes base64 data, decompresses it and reads little-endian
// uint32 ids.
func DecodeBase64(s, compression string) ([]uint32, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrEncoding, err)
	}
	b, err = decompress(b, compression)
	if err != nil {
		return nil, err
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of ids", ErrEncoding, len(b))
	}

	ids := make([]uint32, len(b)/4)
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return ids, nil
}

func decompress(b []byte, compression string) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return b, nil
	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case CompressionZstd:
		d, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer d.Close()
		out, err := d.DecodeAll(b, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrCompression, compression)
}

// EncodeBase64 is the inverse of DecodeBase64. It is used by tools and tests
// that need to produce Tiled-compatible layer data.
func EncodeBase64(ids []uint32, compression string) (string, error) {
	raw := make([]byte, len(ids)*4)
	for i, id := range ids {
		binary.LittleEndian.PutUint32(raw[i*4:], id)
	}

	var buf bytes.Buffer
	switch compression {
	case CompressionNone:
		buf.Write(raw)
	case CompressionZlib:
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
	case CompressionGzip:
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
	case CompressionZstd:
		e, err := zstd.NewWriter(nil)
		if err != nil {
			return "", err
		}
		buf.Write(e.EncodeAll(raw, nil))
		if err := e.Close(); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrCompression, compression)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
