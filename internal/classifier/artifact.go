package classifier

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// readArtifact decodes a JSON artifact file into dest. Files ending in .gz are
// gunzipped first; exported char vocabularies are large. When digest is non-nil
// every raw byte of the file is written to it.
func readArtifact(path string, dest any, digest io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if digest != nil {
		r = io.TeeReader(f, digest)
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if digest != nil {
		// the decoder stops at the end of the value; the digest covers the whole file
		if _, err := io.Copy(io.Discard, r); err != nil {
			return fmt.Errorf("read trailer: %w", err)
		}
	}
	return nil
}
