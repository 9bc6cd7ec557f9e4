package btl

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

//SaveCode writes the generated source under the profile's file extension and
//places every auxiliary artifact next to it, each under its dialect's fixed
//name.
func SaveCode(code string, artifacts []Artifact, filename string, profile *Profile) error {
	if !strings.HasSuffix(filename, profile.FileExtension) {
		filename += profile.FileExtension
	}

	if err := writeTextFile(filename, code); err != nil {
		return err
	}

	directory := path.Dir(filename)
	for _, artifact := range artifacts {
		if err := writeTextFile(path.Join(directory, artifact.FileName), artifact.Content); err != nil {
			return err
		}
	}
	return nil
}

func writeTextFile(filename, content string) (err error) {
	dest, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "can't open file %s to write", filename)
	}
	defer func() {
		if closeErr := dest.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = dest.WriteString(content)
	return err
}
