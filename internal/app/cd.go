package app

import (
	"errors"
	"fmt"
	"os"

	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// changeDir implements the cd builtin. On success PWD follows the new
// working directory.
func changeDir(args []string) error {
	if len(args) == 0 {
		return domain.ErrCdMissingArgument
	}

	path := args[0]
	if err := os.Chdir(path); err != nil {
		return zerr.Wrap(cdError(err), fmt.Sprintf("error running builtin \"cd %s\"", path))
	}

	wd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve working directory")
	}
	if err := os.Setenv("PWD", wd); err != nil {
		return zerr.Wrap(err, "failed to update PWD")
	}
	return nil
}

// cdError maps a chdir failure onto the cd error messages.
func cdError(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT):
		return domain.ErrNoSuchDirectory
	case errors.Is(err, unix.EACCES):
		return domain.ErrPermissionDenied
	case errors.Is(err, unix.ENOTDIR):
		return domain.ErrNotADirectory
	default:
		return domain.ErrCdUnhandled
	}
}
