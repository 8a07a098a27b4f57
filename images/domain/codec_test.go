package domain

import (
	"bytes"
	"errors"
	"testing"
)

func TestContentRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty", content: []byte{}},
		{name: "single byte", content: []byte{0x00}},
		{name: "needs padding", content: []byte("ab")},
		{name: "png header", content: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}},
		{name: "all byte values", content: allBytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeContent(EncodeContent(tt.content))
			if err != nil {
				t.Fatalf("DecodeContent() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.content) {
				t.Errorf("round trip = %v, want %v", decoded, tt.content)
			}
		})
	}
}

func TestEncodeContent(t *testing.T) {
	if got := EncodeContent([]byte("hello")); got != "aGVsbG8=" {
		t.Errorf("EncodeContent() = %q, want %q", got, "aGVsbG8=")
	}
}

func TestDecodeContent_Malformed(t *testing.T) {
	for _, input := range []string{"not base64!", "aGVsbG8", "===="} {
		_, err := DecodeContent(input)
		if !errors.Is(err, ErrMalformedEncoding) {
			t.Errorf("DecodeContent(%q) error = %v, want ErrMalformedEncoding", input, err)
		}
	}
}

func TestImage_File(t *testing.T) {
	f := &File{Name: "cat.png", ContentType: "image/png", Content: []byte("meow")}

	img := NewImage(f)
	if img.Filename != "cat.png" || img.ContentType != "image/png" {
		t.Errorf("NewImage() = %+v", img)
	}
	if img.ImageBase64 != "bWVvdw==" {
		t.Errorf("ImageBase64 = %q, want %q", img.ImageBase64, "bWVvdw==")
	}

	got, err := img.File()
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if got.Name != f.Name || got.ContentType != f.ContentType || !bytes.Equal(got.Content, f.Content) {
		t.Errorf("File() = %+v, want %+v", got, f)
	}
}

func TestImage_File_Malformed(t *testing.T) {
	img := &Image{Filename: "x", ImageBase64: "%%%"}
	if _, err := img.File(); !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("File() error = %v, want ErrMalformedEncoding", err)
	}
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
