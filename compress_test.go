package x12

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/pierrec/lz4/v4"
)

func TestZIPDecompressErrors(t *testing.T) {
	// Multi-entry
	{
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, _ = zw.Create("a.edi")
		_, _ = zw.Create("b.edi")
		_ = zw.Close()
		_, err := zipDecompress(buf.Bytes(), 10)
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	}
	// Oversized entry
	{
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, _ := zw.Create("orders.x12")
		_, _ = w.Write([]byte("abcd"))
		_ = zw.Close()
		_, err := zipDecompress(buf.Bytes(), 3)
		if !errors.Is(err, ErrLimitExceeded) {
			t.Fatalf("expected ErrLimitExceeded, got %v", err)
		}
	}
	// Entry is a directory
	{
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		h := &zip.FileHeader{Name: "inbound/"}
		h.SetMode(fs.ModeDir | 0o755)
		_, _ = zw.CreateHeader(h)
		_ = zw.Close()
		_, err := zipDecompress(buf.Bytes(), 10)
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	}
}

func TestZIPDecompress_AnyEntryName(t *testing.T) {
	var buf bytes.Buffer
	if err := zipCompressNamed(&buf, "PARTNER_20231017.txt", []byte("abc")); err != nil {
		t.Fatal(err)
	}
	out, err := zipDecompress(buf.Bytes(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "abc" {
		t.Fatalf("got %q", out)
	}
}

func TestDecompressionExpansionGuards(t *testing.T) {
	in := []byte("hello world")

	zst, err := zstdCompress(in)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zstdDecompress(zst, 1); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("zstd: expected ErrLimitExceeded, got %v", err)
	}

	lz, err := lz4Compress(in)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lz4Decompress(lz, 1); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("lz4: expected ErrLimitExceeded, got %v", err)
	}

	br, err := brotliCompress(in)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := brotliDecompress(br, 1); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("brotli: expected ErrLimitExceeded, got %v", err)
	}

	if _, err := decompressPayload(CompNone, in, 4); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("none: expected ErrLimitExceeded, got %v", err)
	}
}

func TestCompressionWrappers_ReturnErrors(t *testing.T) {
	// zipCompress wrapper error
	origCreate := zipCreate
	zipCreate = func(_ *zip.Writer, _ string) (io.Writer, error) { return nil, io.ErrClosedPipe }
	if _, err := zipCompress([]byte("x")); err == nil {
		zipCreate = origCreate
		t.Fatal("expected error")
	}
	zipCreate = origCreate

	// lz4Compress wrapper error
	origLZ4Close := lz4Close
	lz4Close = func(_ *lz4.Writer) error { return io.ErrClosedPipe }
	if _, err := lz4Compress([]byte("x")); err == nil {
		lz4Close = origLZ4Close
		t.Fatal("expected error")
	}
	lz4Close = origLZ4Close

	// brotliCompress wrapper error
	origBrotliClose := brotliClose
	brotliClose = func(_ *brotli.Writer) error { return io.ErrClosedPipe }
	if _, err := brotliCompress([]byte("x")); err == nil {
		brotliClose = origBrotliClose
		t.Fatal("expected error")
	}
	brotliClose = origBrotliClose
}

func TestDecompressionCorruptStreams(t *testing.T) {
	if _, err := zstdDecompress([]byte("notzstd"), 100); err == nil {
		t.Fatal("expected error")
	}
	if _, err := lz4Decompress([]byte("notlz4"), 100); err == nil {
		t.Fatal("expected error")
	}
	if _, err := brotliDecompress([]byte("notbr"), 100); err == nil {
		t.Fatal("expected error")
	}
}

func TestDetectCompression(t *testing.T) {
	text := []byte(header(DefaultDelimiters))
	cases := []struct {
		comp Compression
		want Compression
	}{
		{CompNone, CompNone},
		{CompZIP, CompZIP},
		{CompZSTD, CompZSTD},
		{CompLZ4, CompLZ4},
		// Brotli streams carry no magic bytes.
		{CompBR, CompNone},
	}
	for _, tc := range cases {
		t.Run(tc.comp.String(), func(t *testing.T) {
			payload, err := compressPayload(tc.comp, text)
			if err != nil {
				t.Fatal(err)
			}
			if got := detectCompression(payload); got != tc.want {
				t.Fatalf("detected %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEncodeDecode_AllCompressions(t *testing.T) {
	in := wire(DefaultDelimiters, orderBody)
	ic := mustDecode(t, in)
	for _, comp := range []Compression{CompNone, CompZIP, CompZSTD, CompLZ4, CompBR} {
		t.Run(comp.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, ic, WithWriteCompression(comp)); err != nil {
				t.Fatal(err)
			}
			read := CompAuto
			if comp == CompBR {
				read = CompBR
			}
			out, err := Decode(bytes.NewReader(buf.Bytes()), WithSchemas(testSchemas), WithReadCompression(read))
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != 1 {
				t.Fatalf("expected 1 interchange, got %d", len(out))
			}
			if got := mustEncode(t, out[0]); got != in {
				t.Fatalf("round trip mismatch\n got: %q\nwant: %q", got, in)
			}
		})
	}
}

func TestCompression_String(t *testing.T) {
	if CompBR.String() != "br" || CompAuto.String() != "auto" || Compression(99).String() != "unknown" {
		t.Fatal("unexpected compression names")
	}
}
