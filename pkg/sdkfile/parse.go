// SPDX-License-Identifier: MPL-2.0

package sdkfile

import (
	_ "embed"

	"strand-sdk/pkg/cueutil"
)

//go:embed sdkfile_schema.cue
var sdkfileSchema string

// MetadataFileName is the conventional name of the library metadata file.
const MetadataFileName = "libraries.cue"

// ParseBytes parses library metadata content from bytes. Uses
// cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema, compile user data, validate and decode.
func ParseBytes(data []byte, path string) (*Sdkfile, error) {
	result, err := cueutil.ParseAndDecodeString[Sdkfile](
		sdkfileSchema,
		data,
		"#Libraries",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	file := result.Value
	file.FilePath = path

	if err := file.validate(); err != nil {
		return nil, err
	}

	return file, nil
}
