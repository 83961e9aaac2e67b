package httpclient

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"
)

func readParts(t *testing.T, m *MultipartBody) (map[string]string, map[string]string) {
	t.Helper()

	reader, contentType, err := m.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q", mediaType)
	}

	fields := map[string]string{}
	files := map[string]string{}
	mr := multipart.NewReader(reader, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			files[part.FormName()] = string(data)
		} else {
			fields[part.FormName()] = string(data)
		}
	}
	return fields, files
}

func TestMultipartBody_FieldsAndFile(t *testing.T) {
	m := &MultipartBody{
		Files: []FileField{{
			FieldName:   "file",
			FileName:    "audio.wav",
			ContentType: "audio/wav",
			Data:        []byte("pcm-bytes"),
		}},
	}
	m.AddField("model", "whisper-1")
	m.AddField("language", "ru")
	m.AddField("temperature", "0")

	fields, files := readParts(t, m)

	if fields["model"] != "whisper-1" || fields["language"] != "ru" || fields["temperature"] != "0" {
		t.Errorf("fields = %v", fields)
	}
	if files["file"] != "pcm-bytes" {
		t.Errorf("files = %v", files)
	}
}

func TestMultipartBody_PreservesFieldOrder(t *testing.T) {
	m := &MultipartBody{}
	m.AddField("first", "1")
	m.AddField("second", "2")

	if m.Fields[0].Name != "first" || m.Fields[1].Name != "second" {
		t.Errorf("field order not preserved: %v", m.Fields)
	}
}

func TestMultipartBody_DefaultContentType(t *testing.T) {
	m := &MultipartBody{
		Files: []FileField{{FieldName: "file", FileName: "blob.bin", Data: []byte{1, 2, 3}}},
	}
	_, files := readParts(t, m)
	if _, ok := files["file"]; !ok {
		t.Error("file part missing")
	}
}

func TestEscapeQuotes(t *testing.T) {
	if got := escapeQuotes(`a"b\c`); got != `a\"b\\c` {
		t.Errorf("escapeQuotes = %q", got)
	}
}
