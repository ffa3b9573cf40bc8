package x12

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how an interchange stream is wrapped on disk or on
// the wire.
type Compression uint16

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
	// CompAuto detects ZIP, Zstandard and LZ4 by magic bytes. Read only.
	CompAuto Compression = 0xF
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZIP:
		return "zip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "br"
	case CompAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// zipEntryName is the archive member written by zipCompress.
const zipEntryName = "interchange.edi"

var (
	magicZIP  = []byte("PK\x03\x04")
	magicZSTD = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Function variables for testing injection.
var (
	newZstdWriter = func() (*zstd.Encoder, error) { return zstd.NewWriter(nil) }
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	zipCreate     = func(zw *zip.Writer, name string) (io.Writer, error) { return zw.Create(name) }
	zipClose      = func(zw *zip.Writer) error { return zw.Close() }
	zipOpen       = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll       = io.ReadAll
	lz4Close      = func(w *lz4.Writer) error { return w.Close() }
	brotliClose   = func(w *brotli.Writer) error { return w.Close() }
	brotliWrite   = func(w *brotli.Writer, p []byte) (int, error) { return w.Write(p) }
)

// detectCompression guesses the wrapping of payload from its magic bytes.
func detectCompression(payload []byte) Compression {
	switch {
	case bytes.HasPrefix(payload, magicZIP):
		return CompZIP
	case bytes.HasPrefix(payload, magicZSTD):
		return CompZSTD
	case bytes.HasPrefix(payload, magicLZ4):
		return CompLZ4
	default:
		return CompNone
	}
}

// compressPayload wraps an encoded interchange using comp.
func compressPayload(comp Compression, in []byte) ([]byte, error) {
	switch comp {
	case CompNone:
		return in, nil
	case CompZIP:
		return zipCompress(in)
	case CompZSTD:
		return zstdCompress(in)
	case CompLZ4:
		return lz4Compress(in)
	case CompBR:
		return brotliCompress(in)
	default:
		return nil, fmt.Errorf("%w: cannot write compression %s", ErrInvalidPayload, comp)
	}
}

// decompressPayload unwraps payload. maxSize bounds the decompressed output
// to guard against decompression bombs.
func decompressPayload(comp Compression, payload []byte, maxSize int64) ([]byte, error) {
	if comp == CompAuto {
		comp = detectCompression(payload)
	}
	var out []byte
	var err error
	switch comp {
	case CompNone:
		out = payload
	case CompZIP:
		out, err = zipDecompress(payload, maxSize)
	case CompZSTD:
		out, err = zstdDecompress(payload, maxSize)
	case CompLZ4:
		out, err = lz4Decompress(payload, maxSize)
	case CompBR:
		out, err = brotliDecompress(payload, maxSize)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("%w: input larger than %d bytes", ErrLimitExceeded, maxSize)
	}
	return out, nil
}

// zipCompress creates a ZIP archive containing in as a single entry.
func zipCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := zipCompressNamed(&buf, zipEntryName, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// zipCompressNamed creates a ZIP archive with a single entry.
func zipCompressNamed(w io.Writer, name string, in []byte) error {
	zw := zip.NewWriter(w)
	entry, err := zipCreate(zw, name)
	if err != nil {
		_ = zipClose(zw)
		return err
	}
	if _, err := entry.Write(in); err != nil {
		_ = zipClose(zw)
		return err
	}
	return zipClose(zw)
}

// zipDecompress extracts the only file of a ZIP archive. Trading partners
// name the member freely, so any name is accepted.
func zipDecompress(zipBytes []byte, maxSize int64) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, err
	}
	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: zip must contain exactly one entry", ErrInvalidPayload)
	}
	zf := zr.File[0]
	if zf.FileInfo().IsDir() {
		return nil, fmt.Errorf("%w: zip entry must be a file", ErrInvalidPayload)
	}
	if zf.UncompressedSize64 > uint64(maxSize) {
		return nil, fmt.Errorf("%w: zip entry of %d bytes", ErrLimitExceeded, zf.UncompressedSize64)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readLimited(rc, maxSize, "zip")
}

// readLimited reads r to the end, failing once more than maxSize bytes
// have been produced.
func readLimited(r io.Reader, maxSize int64, name string) ([]byte, error) {
	b, err := readAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > maxSize {
		return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", ErrLimitExceeded, name, maxSize)
	}
	return b, nil
}

// zstdCompress compresses in using the Zstandard algorithm.
func zstdCompress(in []byte) ([]byte, error) {
	enc, err := newZstdWriter()
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// zstdDecompress streams Zstandard-compressed data up to maxSize bytes.
func zstdDecompress(in []byte, maxSize int64) ([]byte, error) {
	dec, err := newZstdReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return readLimited(dec, maxSize, "zstd")
}

// lz4Compress compresses in using the LZ4 frame format.
func lz4Compress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := lz4CompressTo(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lz4CompressTo writes LZ4-compressed data to w.
func lz4CompressTo(w io.Writer, in []byte) error {
	zw := lz4.NewWriter(w)
	if _, err := zw.Write(in); err != nil {
		_ = lz4Close(zw)
		return err
	}
	return lz4Close(zw)
}

func lz4Decompress(in []byte, maxSize int64) ([]byte, error) {
	return readLimited(lz4.NewReader(bytes.NewReader(in)), maxSize, "lz4")
}

// brotliCompress compresses in using the Brotli algorithm.
func brotliCompress(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := brotliCompressTo(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// brotliCompressTo writes Brotli-compressed data to w.
func brotliCompressTo(w io.Writer, in []byte) error {
	bw := brotli.NewWriter(w)
	if _, err := brotliWrite(bw, in); err != nil {
		_ = brotliClose(bw)
		return err
	}
	return brotliClose(bw)
}

func brotliDecompress(in []byte, maxSize int64) ([]byte, error) {
	return readLimited(brotli.NewReader(bytes.NewReader(in)), maxSize, "brotli")
}
