// Package export saves rule transcripts as INI files
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/spf13/afero"
)

// DefaultFileName is the name the web form used for downloads
const DefaultFileName = "OBody_PDA_rules.ini"

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// WriteTranscript writes text to path, creating parent directories. The
// file always ends with a newline. An existing file is only replaced when
// overwrite is set.
func WriteTranscript(fs afero.Fs, path, text string, overwrite bool) error {
	logger := logging.GetLogger("export")

	if strings.TrimSpace(text) == "" {
		return errors.New(errors.ErrEmptyFile, "nothing to export, generate a rule first")
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot check %s", path).WithDetail("path", path)
	}
	if exists && !overwrite {
		return errors.Newf(errors.ErrFileExists, "%s already exists", path).WithDetail("path", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, dirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", dir).WithDetail("path", path)
		}
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := afero.WriteFile(fs, path, []byte(text), filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
	}

	logger.Info().Str("path", path).Int("bytes", len(text)).Bool("overwrite", exists).Msg("Transcript exported")
	return nil
}

// ReadTranscript reads a rules file back, without its final newline
func ReadTranscript(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).WithDetail("path", path)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimSuffix(text, "\n"), nil
}
