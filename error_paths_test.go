package x12

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestCompressHelpers_ErrorPaths(t *testing.T) {
	// zip Create error via injection
	origCreate := zipCreate
	zipCreate = func(_ *zip.Writer, _ string) (io.Writer, error) { return nil, io.ErrClosedPipe }
	if err := zipCompressNamed(io.Discard, zipEntryName, []byte("x")); err == nil {
		zipCreate = origCreate
		t.Fatal("expected error")
	}
	zipCreate = origCreate

	// zip entry.Write error branch: Create succeeds but returns a writer that errors on Write.
	origCreate = zipCreate
	zipCreate = func(_ *zip.Writer, _ string) (io.Writer, error) { return errWriter{}, nil }
	if err := zipCompressNamed(io.Discard, zipEntryName, []byte("x")); err == nil {
		zipCreate = origCreate
		t.Fatal("expected error")
	}
	zipCreate = origCreate

	// zip Close error via injection
	origClose := zipClose
	zipClose = func(_ *zip.Writer) error { return io.ErrClosedPipe }
	if err := zipCompressNamed(io.Discard, zipEntryName, []byte("x")); err == nil {
		zipClose = origClose
		t.Fatal("expected error")
	}
	zipClose = origClose

	// zip write error
	if err := zipCompressNamed(errWriter{}, zipEntryName, []byte("x")); err == nil {
		t.Fatal("expected error")
	}
	// lz4 write error
	if err := lz4CompressTo(errWriter{}, []byte("x")); err == nil {
		t.Fatal("expected error")
	}
	// lz4 Close error via injection
	origLZ4Close := lz4Close
	lz4Close = func(_ *lz4.Writer) error { return io.ErrClosedPipe }
	if err := lz4CompressTo(io.Discard, []byte("x")); err == nil {
		lz4Close = origLZ4Close
		t.Fatal("expected error")
	}
	lz4Close = origLZ4Close

	// brotli write error
	origBrotliWrite := brotliWrite
	brotliWrite = func(_ *brotli.Writer, _ []byte) (int, error) { return 0, io.ErrClosedPipe }
	if err := brotliCompressTo(io.Discard, []byte("x")); err == nil {
		brotliWrite = origBrotliWrite
		t.Fatal("expected error")
	}
	brotliWrite = origBrotliWrite
	// brotli Close error via injection
	origBrotliClose := brotliClose
	brotliClose = func(_ *brotli.Writer) error { return io.ErrClosedPipe }
	if err := brotliCompressTo(io.Discard, []byte("x")); err == nil {
		brotliClose = origBrotliClose
		t.Fatal("expected error")
	}
	brotliClose = origBrotliClose
}

func TestBrotliDecompress_ReadAllError(t *testing.T) {
	orig := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrClosedPipe }
	defer func() { readAll = orig }()
	if _, err := brotliDecompress([]byte("anything"), 10); err == nil {
		t.Fatal("expected error")
	}
}

func TestZstdConstructorInjection(t *testing.T) {
	origW := newZstdWriter
	origR := newZstdReader
	defer func() {
		newZstdWriter = origW
		newZstdReader = origR
	}()

	newZstdWriter = func() (*zstd.Encoder, error) { return nil, io.ErrClosedPipe }
	if _, err := zstdCompress([]byte("x")); err == nil {
		t.Fatal("expected error")
	}

	newZstdWriter = origW
	newZstdReader = func(io.Reader) (*zstd.Decoder, error) { return nil, io.ErrClosedPipe }
	if _, err := zstdDecompress([]byte("x"), 10); err == nil {
		t.Fatal("expected error")
	}
}

func TestZIPDecompress_InjectionErrorPaths(t *testing.T) {
	z, err := zipCompress([]byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	origOpen := zipOpen
	zipOpen = func(_ *zip.File) (io.ReadCloser, error) { return nil, io.ErrClosedPipe }
	if _, err := zipDecompress(z, 3); err == nil {
		zipOpen = origOpen
		t.Fatal("expected error")
	}
	zipOpen = origOpen

	origReadAll := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrClosedPipe }
	if _, err := zipDecompress(z, 3); err == nil {
		readAll = origReadAll
		t.Fatal("expected error")
	}
	readAll = origReadAll
}

func TestCompressPayload_Errors(t *testing.T) {
	origW := newZstdWriter
	defer func() { newZstdWriter = origW }()
	newZstdWriter = func() (*zstd.Encoder, error) { return nil, io.ErrClosedPipe }
	if _, err := compressPayload(CompZSTD, []byte("x")); err == nil {
		t.Fatal("expected error")
	}
	if _, err := compressPayload(CompAuto, []byte("x")); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestDecompressPayload_Errors(t *testing.T) {
	if _, err := decompressPayload(CompZIP, []byte("notzip"), 100); err == nil {
		t.Fatal("expected error")
	}
	_, err := decompressPayload(Compression(99), []byte("x"), 100)
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestDecode_ReaderErrors(t *testing.T) {
	if _, err := Decode(errReader{}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected read error, got %v", err)
	}
	in := wire(DefaultDelimiters, exampleBody)
	_, err := Decode(strings.NewReader(in), WithSchemas(testSchemas), WithReadLimits(Limits{MaxInputSize: 64}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if _, err := Decode(strings.NewReader("short")); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func TestEncode_WriterError(t *testing.T) {
	ic := mustDecode(t, wire(DefaultDelimiters, exampleBody))
	if err := Encode(errWriter{}, ic); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected write error, got %v", err)
	}
	if err := Encode(io.Discard, ic, WithWriteCompression(Compression(99))); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
	if err := Encode(io.Discard, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEncode_BadDelimiters(t *testing.T) {
	ic := mustDecode(t, wire(DefaultDelimiters, exampleBody))
	bad := []Delimiters{
		{Element: "*", Component: "*", Terminator: "~"},
		{Element: "**", Component: ">", Terminator: "~"},
		{Element: "*", Component: ">", Terminator: "~", Suffix: " "},
	}
	for _, d := range bad {
		var buf bytes.Buffer
		if err := Encode(&buf, ic, WithDelimiters(d)); !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("%+v: expected ErrInvalidHeader, got %v", d, err)
		}
	}
}

func TestZipDecompress_BadArchive(t *testing.T) {
	_, err := zipDecompress([]byte("not a zip"), 1)
	if err == nil {
		t.Fatal("expected error")
	}
}
