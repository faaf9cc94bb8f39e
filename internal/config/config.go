// Package config loads the optional TOML configuration of the grammar
// generator. The configuration only overrides grammar header metadata; any key
// that is left out keeps its default value.
//
// A complete file looks like this:
//
//	[grammar]
//	name = "hp41mcode"
//	file_extensions = ["src"]
//	description = "HP-41 MCODE Syntax Highlighter"
//	textmate_uuid = "ec78fc6d-d744-485c-b450-ad86e83e4405"
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/mcodegen/internal/grammar"
	"github.com/dekarrin/mcodegen/internal/mcerrors"
	"github.com/google/uuid"
)

// EnvConfig is the environment variable consulted for a config file path
// when none is given on the command line.
const EnvConfig = "MCODEGEN_CONFIG"

type topLevel struct {
	Grammar grammarSection `toml:"grammar"`
}

type grammarSection struct {
	Name           *string  `toml:"name"`
	FileExtensions []string `toml:"file_extensions"`
	Description    *string  `toml:"description"`
	TextMateUUID   *string  `toml:"textmate_uuid"`
}

// Load reads the TOML file at path and returns the grammar header it
// describes. If path is empty, the default header is returned.
func Load(path string) (grammar.Header, error) {
	if path == "" {
		return grammar.DefaultHeader(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.Header{}, mcerrors.WrapUserf(err, mcerrors.ErrInvalidConfig, "could not read config file %q", path)
	}

	hdr, err := Parse(data)
	if err != nil {
		return hdr, fmt.Errorf("%s: %w", path, err)
	}
	return hdr, nil
}

// Parse decodes TOML config data and applies it over the default header. The
// result is validated with Validate. Keys that are not part of the config
// format are an error.
func Parse(data []byte) (grammar.Header, error) {
	var top topLevel
	md, err := toml.Decode(string(data), &top)
	if err != nil {
		return grammar.Header{}, mcerrors.WrapUser(err, mcerrors.ErrInvalidConfig, "config is not valid TOML: "+err.Error(), "decode config: "+err.Error())
	}

	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i := range undec {
			keys[i] = undec[i].String()
		}
		return grammar.Header{}, mcerrors.Userf(mcerrors.ErrInvalidConfig, "unknown config key(s): %s", strings.Join(keys, ", "))
	}

	hdr := grammar.DefaultHeader()
	sec := top.Grammar
	if sec.Name != nil {
		hdr.Name = *sec.Name
	}
	if md.IsDefined("grammar", "file_extensions") {
		hdr.FileExtensions = sec.FileExtensions
	}
	if sec.Description != nil {
		hdr.Description = *sec.Description
	}
	if sec.TextMateUUID != nil {
		hdr.TextMateUUID = *sec.TextMateUUID
	}

	id, err := validate(hdr)
	if err != nil {
		return grammar.Header{}, err
	}
	hdr.TextMateUUID = id.String()

	return hdr, nil
}

// Validate checks that hdr can be written to a grammar. All problems found are
// reported together in an error that matches mcerrors.ErrInvalidConfig.
func Validate(hdr grammar.Header) error {
	_, err := validate(hdr)
	return err
}

// validate checks hdr the same way as Validate and also returns the parsed
// TextMate UUID.
func validate(hdr grammar.Header) (uuid.UUID, error) {
	var problems []string

	if hdr.Name == "" {
		problems = append(problems, "name must not be empty")
	} else if strings.IndexFunc(hdr.Name, unicode.IsSpace) >= 0 {
		problems = append(problems, fmt.Sprintf("name %q must not contain whitespace", hdr.Name))
	} else if strings.ContainsAny(hdr.Name, `'"\`) {
		problems = append(problems, fmt.Sprintf("name %q must not contain quotes or backslashes", hdr.Name))
	}

	if len(hdr.FileExtensions) < 1 {
		problems = append(problems, "file_extensions must list at least one extension")
	}
	for _, ext := range hdr.FileExtensions {
		if ext == "" {
			problems = append(problems, "file extension must not be empty")
		} else if strings.HasPrefix(ext, ".") {
			problems = append(problems, fmt.Sprintf("file extension %q must not start with a dot", ext))
		} else if strings.ContainsAny(ext, `'";, `+"\\\t\n") {
			problems = append(problems, fmt.Sprintf("file extension %q contains a separator, quote or space", ext))
		}
	}

	if strings.ContainsAny(hdr.Description, "\"\\\r\n") {
		problems = append(problems, "description must be a single line without double quotes or backslashes")
	}

	id, err := uuid.Parse(hdr.TextMateUUID)
	if err != nil {
		problems = append(problems, fmt.Sprintf("textmate_uuid %q is not a UUID", hdr.TextMateUUID))
	}

	if len(problems) > 0 {
		return uuid.Nil, mcerrors.Userf(mcerrors.ErrInvalidConfig, "%s", strings.Join(problems, "; "))
	}
	return id, nil
}
